package fileio_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malywonsz/mpu/pkg/fileio"
)

func TestMeta(t *testing.T) {
	path := writeFile(t, "data.json", `{"a": 1}`)

	meta, err := fileio.Meta(path)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(meta.Path))
	assert.Equal(t, int64(8), meta.Size)
	assert.False(t, meta.ModTime.IsZero())
	assert.False(t, meta.AccessTime.IsZero())
	assert.Contains(t, meta.MIMEType, "json")
}

func TestMetaMissingFile(t *testing.T) {
	_, err := fileio.Meta(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
