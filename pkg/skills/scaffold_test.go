package skills

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffold(t *testing.T) {
	tmpDir := t.TempDir()

	result, err := Scaffold("code-reviewer", tmpDir)
	require.NoError(t, err)

	skillDir := filepath.Join(tmpDir, "code-reviewer")
	assert.Equal(t, skillDir, result.Dir)
	assert.Equal(t, filepath.Join(skillDir, "SKILL.md"), result.SkillFile)

	for _, path := range []string{
		"SKILL.md",
		"scripts",
		"references",
		"assets",
		filepath.Join("scripts", "example.sh"),
		filepath.Join("scripts", ".gitkeep"),
		filepath.Join("references", "example.md"),
		filepath.Join("assets", "example-template.md"),
	} {
		_, err := os.Stat(filepath.Join(skillDir, path))
		assert.NoError(t, err, "expected %s to exist", path)
	}

	content, err := os.ReadFile(result.SkillFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "---\n"))
	assert.Contains(t, string(content), "name: code-reviewer")
	assert.Contains(t, string(content), "# Code Reviewer")
}

func TestScaffoldExampleScriptExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	tmpDir := t.TempDir()
	result, err := Scaffold("perms-check", tmpDir)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(result.Dir, "scripts", "example.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "example script should be executable")
}

func TestScaffoldRejectsInvalidNames(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"", "has space", "has/slash", "dotted.name", "ünïcode"} {
		t.Run(name, func(t *testing.T) {
			_, err := Scaffold(name, tmpDir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid skill name")
		})
	}
}

func TestScaffoldRefusesExistingDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Scaffold("my-skill", tmpDir)
	require.NoError(t, err)

	_, err = Scaffold("my-skill", tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

// A freshly scaffolded skill must validate cleanly: the seed description
// passes the 20-character floor and contains no placeholder token, so only
// warnings remain (body TODOs, unremoved example files).
func TestScaffoldThenValidate(t *testing.T) {
	tmpDir := t.TempDir()

	result, err := Scaffold("fresh-skill", tmpDir)
	require.NoError(t, err)

	report := Validate(result.Dir)
	assert.True(t, report.OK(), "errors: %v", report.Errors)
	assert.Empty(t, report.Errors)

	joined := strings.Join(report.Warnings, "\n")
	assert.Contains(t, joined, "TODO")
	assert.Contains(t, joined, "example")
}

func TestTitleFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"code-quality-reviewer", "Code Quality Reviewer"},
		{"snake_case_name", "Snake Case Name"},
		{"single", "Single"},
		{"mixed-and_split", "Mixed And Split"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, titleFromName(tt.name))
		})
	}
}
