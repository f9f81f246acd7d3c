package utils

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, dir, want string
	}{
		{"prog.logic", "", "prog.s"},
		{filepath.Join("src", "prog.logic"), "", filepath.Join("src", "prog.s")},
		{"prog", "", "prog.s"},
		{"prog.v1.logic", "", "prog.v1.s"},
		{filepath.Join("src", "prog.logic"), "build", filepath.Join("build", "prog.s")},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.input, tt.dir); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.input, tt.dir, got, tt.want)
		}
	}
}

func TestTrimSourceExt(t *testing.T) {
	if got := TrimSourceExt(filepath.Join("a.d", "file")); got != filepath.Join("a.d", "file") {
		t.Errorf("directory dots should be kept, got %q", got)
	}
}
