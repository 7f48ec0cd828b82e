package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zide/internal/model"
	storagefs "github.com/slok/zide/internal/storage/fs"
)

func TestWriterWriteDocument(t *testing.T) {
	t.Run("Writing into a missing directory should create it", func(t *testing.T) {
		writer, err := storagefs.NewWriter(storagefs.WriterConfig{})
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), ".vscode", "tasks.json")
		err = writer.WriteDocument(context.TODO(), path, []byte("{}\n"))

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(content))
	})

	t.Run("A pre-existing directory should not be an error", func(t *testing.T) {
		writer, err := storagefs.NewWriter(storagefs.WriterConfig{})
		require.NoError(t, err)

		dir := t.TempDir()
		err = writer.WriteDocument(context.TODO(), filepath.Join(dir, "settings.json"), []byte("{}\n"))

		assert.NoError(t, err)
	})

	t.Run("Overwriting an existing document should succeed", func(t *testing.T) {
		writer, err := storagefs.NewWriter(storagefs.WriterConfig{})
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "launch.json")
		require.NoError(t, writer.WriteDocument(context.TODO(), path, []byte("old\n")))
		require.NoError(t, writer.WriteDocument(context.TODO(), path, []byte("new\n")))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(content))
	})

	t.Run("A failed write should carry the target path and the write sentinel", func(t *testing.T) {
		writer, err := storagefs.NewWriter(storagefs.WriterConfig{})
		require.NoError(t, err)

		// A regular file in the directory position makes MkdirAll fail.
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

		path := filepath.Join(blocker, "extensions.json")
		err = writer.WriteDocument(context.TODO(), path, []byte("{}\n"))

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrWriteFailed)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("A cancelled context should abort before touching the disk", func(t *testing.T) {
		writer, err := storagefs.NewWriter(storagefs.WriterConfig{})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "tasks.json")
		err = writer.WriteDocument(ctx, path, []byte("{}\n"))

		require.Error(t, err)
		assert.NoFileExists(t, path)
	})
}
