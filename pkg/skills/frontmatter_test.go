package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontmatter(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		header, body, err := splitFrontmatter("---\nname: test\ndescription: desc\n---\n\n# Body\n\nText.\n")
		require.NoError(t, err)
		assert.Equal(t, "name: test\ndescription: desc", header)
		assert.Contains(t, body, "# Body")
		assert.Contains(t, body, "Text.")
	})

	t.Run("missing opening marker", func(t *testing.T) {
		_, _, err := splitFrontmatter("# No frontmatter\n\nJust content.\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must start with YAML frontmatter")
	})

	t.Run("missing closing marker", func(t *testing.T) {
		_, _, err := splitFrontmatter("---\nname: test\n# never closed\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "closing ---")
	})

	t.Run("empty body", func(t *testing.T) {
		header, body, err := splitFrontmatter("---\nname: test\n---")
		require.NoError(t, err)
		assert.Equal(t, "name: test", header)
		assert.Empty(t, body)
	})
}

func TestParseFrontmatter(t *testing.T) {
	t.Run("mapping", func(t *testing.T) {
		fields, err := parseFrontmatter("name: test\ndescription: a description")
		require.NoError(t, err)
		assert.Equal(t, "test", fields["name"])
		assert.Equal(t, "a description", fields["description"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := parseFrontmatter("name: [unclosed")
		assert.Error(t, err)
	})

	t.Run("scalar instead of mapping", func(t *testing.T) {
		_, err := parseFrontmatter("just a string")
		assert.Error(t, err)
	})

	t.Run("empty header", func(t *testing.T) {
		_, err := parseFrontmatter("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mapping")
	})
}
