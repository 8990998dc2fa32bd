package couriers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
)

func TestLogCourier_LogsEveryShirt(t *testing.T) {
	var buf bytes.Buffer
	courier := NewLogCourier(slog.New(slog.NewJSONHandler(&buf, nil)))

	batch := domain.Batch{ID: "b-1", OrderNum: "o-1", Shirts: []domain.Shirt{
		{StyleName: "style1", ImageRef: "style1Image"},
		{StyleName: "style2", ImageRef: "style2Image"},
	}}
	require.NoError(t, courier.Deliver(context.Background(), batch))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "Delivering shirt", first["msg"])
	require.Equal(t, "style1", first["style"])

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &summary))
	require.Equal(t, "shirts delivered", summary["msg"])
	require.EqualValues(t, 2, summary["count"])
}

func TestHandoffWorkflowID(t *testing.T) {
	require.Equal(t, "courier-handoff-b-9", handoffWorkflowID(domain.Batch{ID: "b-9"}))
}
