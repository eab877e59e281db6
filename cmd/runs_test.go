package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ingrediq/docintel-cli/internal/model"
)

func TestFormatRunsList(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "abcdef12-3456-7890-abcd-ef1234567890",
			Documents: []model.Document{{ID: "d1"}, {ID: "d2"}},
			Status:    model.RunStatusComplete,
			Result: &model.RunResult{
				Summary: model.RunSummary{TotalRecords: 82, TotalAnswered: 40},
			},
			CreatedAt: created,
			UpdatedAt: created.Add(90 * time.Second),
		},
		{
			ID:        "short",
			Documents: []model.Document{{ID: "d3"}},
			Status:    model.RunStatusQueued,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)
	out := buf.String()

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef12-3456")
	assert.Contains(t, out, "40/82")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "queued")
	assert.Contains(t, out, "2026-03-01 10:00")
	assert.Contains(t, out, "1m30s")
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "abcdef12", truncateID("abcdef12-3456"))
	assert.Equal(t, "short", truncateID("short"))
}
