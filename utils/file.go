package utils

import "os"

// DeleteFile removes a temporary upload. Missing files are ignored.
func DeleteFile(path string) {
	if path == "" {
		return
	}
	os.Remove(path)
}
