package sysinfo

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
)

// LargestFiles walks the tree under root and returns the n largest regular
// files, largest first. Entries that cannot be read (permission denied,
// vanished mid-walk) are skipped; the walk itself aborts only when ctx is
// cancelled.
func (p *SystemProvider) LargestFiles(ctx context.Context, root string, n int) ([]File, error) {
	if n <= 0 {
		return nil, nil
	}

	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, File{Size: info.Size(), Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Size != files[j].Size {
			return files[i].Size > files[j].Size
		}
		return files[i].Path < files[j].Path
	})

	if len(files) > n {
		files = files[:n]
	}
	return files, nil
}
