package imageio

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// File is one decoded image from a directory scan.
type File struct {
	// Path is the path the image was read from.
	Path string
	// Index is the trailing number in the file name, used for frame
	// ordering, or -1 when the name carries none.
	Index int
	// Image is the decoded buffer.
	Image Dynamic
}

// OpenDirectory decodes every supported image file directly inside dir.
// Files whose names end in a number (frame-0012.png, 7.tif) sort by that
// number, the rest sort by name after them.
func OpenDirectory(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", dir)
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatForPath(e.Name()); err != nil {
			continue
		}
		path := filepath.Join(dir, e.Name())
		img, err := Open(path)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: path, Index: nameIndex(e.Name()), Image: img})
	}

	sort.Slice(files, func(i, j int) bool {
		a, b := files[i], files[j]
		switch {
		case a.Index != b.Index:
			if a.Index < 0 || b.Index < 0 {
				return b.Index < 0
			}
			return a.Index < b.Index
		default:
			return a.Path < b.Path
		}
	})
	return files, nil
}

// nameIndex extracts the trailing digit run of the file name's stem.
func nameIndex(name string) int {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	end := len(stem)
	start := end
	for start > 0 && stem[start-1] >= '0' && stem[start-1] <= '9' {
		start--
	}
	if start == end {
		return -1
	}
	n, err := strconv.Atoi(stem[start:end])
	if err != nil {
		return -1
	}
	return n
}
