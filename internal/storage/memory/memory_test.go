package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zide/internal/storage/memory"
)

func TestWriter(t *testing.T) {
	writer, err := memory.NewWriter(memory.WriterConfig{})
	require.NoError(t, err)

	require.NoError(t, writer.WriteDocument(context.TODO(), "a/tasks.json", []byte("tasks")))
	require.NoError(t, writer.WriteDocument(context.TODO(), "a/launch.json", []byte("launch")))
	require.NoError(t, writer.WriteDocument(context.TODO(), "a/tasks.json", []byte("tasks-2")))

	t.Run("Documents should be retrievable by path", func(t *testing.T) {
		content, ok := writer.Document("a/launch.json")
		assert.True(t, ok)
		assert.Equal(t, []byte("launch"), content)
	})

	t.Run("Rewrites should replace the content and keep the original order", func(t *testing.T) {
		content, ok := writer.Document("a/tasks.json")
		assert.True(t, ok)
		assert.Equal(t, []byte("tasks-2"), content)
		assert.Equal(t, []string{"a/tasks.json", "a/launch.json"}, writer.Paths())
	})

	t.Run("Unknown paths should not be found", func(t *testing.T) {
		_, ok := writer.Document("missing.json")
		assert.False(t, ok)
	})
}
