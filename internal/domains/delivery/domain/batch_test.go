package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewBatch_Validation(t *testing.T) {
	now := time.Now()
	_, err := NewBatch("b", "", []Shirt{{StyleName: "style1"}}, now)
	require.ErrorIs(t, err, ErrEmptyOrderNum)

	_, err = NewBatch("b", "o-1", nil, now)
	require.ErrorIs(t, err, ErrEmptyBatch)

	batch, err := NewBatch("b", "\t", []Shirt{{StyleName: "style1"}}, now)
	require.NoError(t, err)
	require.Equal(t, "\t", batch.OrderNum)
}

func TestNewBatch_CopiesShirts(t *testing.T) {
	shirts := []Shirt{{StyleName: "style1", ImageRef: "style1Image"}}
	batch, err := NewBatch("b", "o-1", shirts, time.Now())
	require.NoError(t, err)

	shirts[0].StyleName = "mutated"
	require.Equal(t, "style1", batch.Shirts[0].StyleName)
}

func TestNewRecord(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	batch := Batch{ID: "b-1", OrderNum: "o-1", Shirts: []Shirt{
		{StyleName: "style1"}, {StyleName: "style2"}, {StyleName: "style1"},
	}}

	record := NewRecord(batch, "log", at)
	require.Equal(t, Record{
		BatchID:     "b-1",
		OrderNum:    "o-1",
		ShirtCount:  3,
		Styles:      []string{"style1", "style2"},
		Courier:     "log",
		DeliveredAt: at,
	}, record)
}
