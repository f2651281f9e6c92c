package file

import (
	"os"
	"path/filepath"
	"sort"
)

type FileEvent struct {
	Filepath    string
	FileCreated bool
}

// SearchDir walks dir recursively and returns the paths accepted by filter,
// sorted.
func SearchDir(dir string, filter func(path string) bool) ([]string, error) {
	var (
		entries []os.DirEntry
		err     error
	)
	result := make([]string, 0, 16)
	if entries, err = os.ReadDir(dir); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			var paths []string
			if paths, err = SearchDir(path, filter); err != nil {
				return nil, err
			}
			result = append(result, paths...)
		} else if filter(path) {
			result = append(result, path)
		}
	}
	sort.Strings(result)
	return result, nil
}
