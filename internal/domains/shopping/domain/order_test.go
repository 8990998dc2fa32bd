package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderValidate(t *testing.T) {
	require.NoError(t, Order{StyleName: "style1", Quantity: 0}.Validate())
	require.NoError(t, Order{StyleName: " style1 ", Quantity: 2}.Validate())
	require.ErrorIs(t, Order{Quantity: 1}.Validate(), ErrMissingStyle)
	require.ErrorIs(t, Order{StyleName: "style1", Quantity: -2}.Validate(), ErrNegativeQuantity)
}
