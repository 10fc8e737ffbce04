// Package scanner finds image files on the local file system.
package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// supportedExtensions are the image formats the catalog accepts.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
	".heic": true,
}

// IsImageFile reports whether the path has a supported image extension.
func IsImageFile(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// ScanDirectory walks a directory tree and returns the paths of all image
// files found, in walk order.
func ScanDirectory(root string) ([]string, error) {
	files := make([]string, 0)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsImageFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
