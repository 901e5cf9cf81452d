package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// AssetsDir is an optional extra directory searched after the local assets/.
var AssetsDir string

// ResolveAssetPath finds relPath as given, under ./assets, then under
// AssetsDir. The local assets path is returned when nothing exists so the
// caller's error names a sensible location.
func ResolveAssetPath(relPath string) string {
	if relPath == "" {
		return ""
	}
	if filepath.IsAbs(relPath) {
		return relPath
	}
	if _, err := os.Stat(relPath); err == nil {
		return relPath
	}

	localPath := filepath.Join("assets", relPath)
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	if AssetsDir != "" {
		p := filepath.Join(AssetsDir, relPath)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return localPath
}

// ListFiles returns the regular files in dir whose extension (compared case
// insensitively) is one of exts, sorted by name.
func ListFiles(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range exts {
			if ext == want {
				files = append(files, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
