package utils

import (
	"path/filepath"
	"strings"

	"github.com/funvibe/logicc/internal/config"
)

// TrimSourceExt removes the extension from the last path element, if any.
func TrimSourceExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// OutputPath derives the assembly path for input: its extension is
// replaced with .s (or .s is appended), and the file moves to outputDir
// when one is given.
func OutputPath(input, outputDir string) string {
	out := TrimSourceExt(input) + config.AsmFileExt
	if outputDir != "" {
		out = filepath.Join(outputDir, filepath.Base(out))
	}
	return out
}
