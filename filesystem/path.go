package filesystem

import "path/filepath"

func parent(path string) string {
	dir := filepath.Dir(path)
	if dir == "." || dir == path {
		return ""
	}
	return dir
}
