package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		skillPath string
		expected  string
	}{
		{"nested path", filepath.Join(".github", "skills", "my-skill"), filepath.Join(".github", "skills")},
		{"trailing separator", ".github/skills/my-skill/", filepath.Join(".github", "skills")},
		{"bare name", "my-skill", "."},
		{"absolute path", filepath.Join(string(filepath.Separator), "work", "my-skill"), filepath.Join(string(filepath.Separator), "work")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, defaultOutputDir(tt.skillPath))
		})
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0.00 KB", formatSize(0))
	assert.Equal(t, "1.00 KB", formatSize(1024))
	assert.Equal(t, "1.50 KB", formatSize(1536))
	assert.Equal(t, "2048.00 KB", formatSize(2*1024*1024))
}
