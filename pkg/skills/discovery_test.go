package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscovery(t *testing.T) {
	t.Run("default root", func(t *testing.T) {
		discovery := NewDiscovery()
		assert.Equal(t, []string{DefaultSkillsDir}, discovery.roots)
	})

	t.Run("custom roots", func(t *testing.T) {
		discovery := NewDiscovery(WithSkillRoots("/tmp/a", "/tmp/b"))
		assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, discovery.roots)
	})
}

func TestDiscoverSkills(t *testing.T) {
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "test-skill", `---
name: test-skill
description: A test skill for unit testing
---

# Test Skill

This is a test skill.
`)
	writeSkill(t, tmpDir, "another-skill", `---
name: another-skill
description: Another test skill
---

# Another Skill

Some content here.
`)

	discovery := NewDiscovery(WithSkillRoots(tmpDir))
	found := discovery.DiscoverSkills()
	require.Len(t, found, 2)

	testSkill, exists := found["test-skill"]
	require.True(t, exists)
	assert.Equal(t, "test-skill", testSkill.Name)
	assert.Equal(t, "A test skill for unit testing", testSkill.Description)
	assert.Equal(t, filepath.Join(tmpDir, "test-skill"), testSkill.Directory)
	assert.Contains(t, testSkill.Body, "# Test Skill")
}

func TestDiscoverSkillsSkipsUnparsable(t *testing.T) {
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "good", `---
name: good
description: A perfectly fine skill
---

Content.
`)
	writeSkill(t, tmpDir, "no-frontmatter", "# Just content\n")
	writeSkill(t, tmpDir, "no-name", `---
description: Missing the name field
---

Content.
`)

	// A plain file alongside the skill directories is ignored
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("readme"), 0o644))

	discovery := NewDiscovery(WithSkillRoots(tmpDir))
	found := discovery.DiscoverSkills()
	require.Len(t, found, 1)
	assert.Contains(t, found, "good")
}

func TestDiscoverSkillsPrecedence(t *testing.T) {
	tmpDir1 := t.TempDir()
	tmpDir2 := t.TempDir()

	writeSkill(t, tmpDir1, "shared-skill", `---
name: shared-skill
description: From first directory
---

First directory content.
`)
	writeSkill(t, tmpDir2, "shared-skill", `---
name: shared-skill
description: From second directory
---

Second directory content.
`)

	discovery := NewDiscovery(WithSkillRoots(tmpDir1, tmpDir2))
	found := discovery.DiscoverSkills()
	require.Len(t, found, 1)
	assert.Equal(t, "From first directory", found["shared-skill"].Description)
}

func TestListSkillNames(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"gamma", "alpha", "beta"} {
		writeSkill(t, tmpDir, name, `---
name: `+name+`
description: Skill `+name+` for listing tests
---

Content for `+name+`.
`)
	}

	discovery := NewDiscovery(WithSkillRoots(tmpDir))
	names := discovery.ListSkillNames()
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)
}

func TestDiscoverSkillsNonExistentRoot(t *testing.T) {
	discovery := NewDiscovery(WithSkillRoots("/non/existent/path"))
	assert.Empty(t, discovery.DiscoverSkills())
}
