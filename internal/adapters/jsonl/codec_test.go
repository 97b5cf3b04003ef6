package jsonl_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes/internal/adapters/jsonl"
	"notes/internal/domain"
	"notes/internal/testutil"
)

func TestEncode_Format(t *testing.T) {
	task := testutil.MakeTask("id-1", "Buy milk", 0)

	line, err := jsonl.Encode(task)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "id-1",
		"title": "Buy milk",
		"status": "open",
		"created_at": "2025-01-01T12:00:00Z",
		"updated_at": "2025-01-01T12:00:00Z"
	}`, string(line))
	assert.NotContains(t, string(line), "\n")
	assert.NotContains(t, string(line), "description", "empty description is omitted")
}

func TestDecode_ReproducesEncodedTask(t *testing.T) {
	task := testutil.MakeTask("id-1", "Zażółć <gęślą> \"jaźń\"", 1234*time.Nanosecond)
	task.Description = "tab\there"
	task = task.MarkDone(task.CreatedAt.Add(90 * time.Minute))

	line, err := jsonl.Encode(task)
	require.NoError(t, err)
	got, err := jsonl.Decode(line)
	require.NoError(t, err)

	assert.Equal(t, task, got)
	assert.Equal(t, domain.Done, got.Status)
}

func TestEncode_RejectsInvalidUTF8(t *testing.T) {
	task := testutil.MakeTask("id-1", "bad \xff title", 0)

	_, err := jsonl.Encode(task)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}
