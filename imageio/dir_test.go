package imageio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDirectoryOrdersByIndex(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"frame-10.png", "frame-2.png", "frame-1.png"} {
		require.NoError(t, Save(filepath.Join(dir, name), testGray8(4, 4)))
	}
	// Non-image files are skipped.
	require.NoError(t, Save(filepath.Join(dir, "cover.tif"), testGray8(4, 4)))

	files, err := OpenDirectory(dir)
	require.NoError(t, err)
	require.Len(t, files, 4)

	assert.Equal(t, 1, files[0].Index)
	assert.Equal(t, 2, files[1].Index)
	assert.Equal(t, 10, files[2].Index)
	assert.Equal(t, -1, files[3].Index)
	assert.Contains(t, files[3].Path, "cover.tif")

	for _, f := range files {
		assert.Equal(t, 4, f.Image.Width())
	}
}

func TestNameIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"frame-0012.png", 12},
		{"7.tif", 7},
		{"shot7b.png", -1},
		{"cover.png", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nameIndex(tt.name), tt.name)
	}
}

func TestOpenDirectoryMissing(t *testing.T) {
	_, err := OpenDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
