package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	path := os.Getenv("LEXI_RUNTIME_PATH")
	if path == "" {
		path = ".lexibot"
	}
	return absRuntimePath(path)
}

// absRuntimePath anchors relative runtime paths at the user's home directory
// so every consumer (.env loading, token.json, input history) resolves to the
// same place regardless of cwd.
func absRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
