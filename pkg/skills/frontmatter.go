package skills

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const frontmatterMarker = "---"

// splitFrontmatter separates a SKILL.md document into its raw YAML header
// and Markdown body. The document must begin with a marker line and contain
// a second marker line closing the header.
func splitFrontmatter(content string) (header, body string, err error) {
	if !strings.HasPrefix(content, frontmatterMarker) {
		return "", "", errors.New("SKILL.md must start with YAML frontmatter (---)")
	}

	lines := strings.Split(content, "\n")
	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterMarker {
			closing = i
			break
		}
	}
	if closing == -1 {
		return "", "", errors.New("SKILL.md must have closing --- for frontmatter")
	}

	header = strings.Join(lines[1:closing], "\n")
	body = strings.Join(lines[closing+1:], "\n")
	return header, body, nil
}

// parseFrontmatter parses the raw header into a string-keyed mapping. The
// validator needs the full mapping rather than a fixed struct so it can
// flag unexpected fields.
func parseFrontmatter(header string) (map[string]any, error) {
	var fields map[string]any
	if err := yaml.Unmarshal([]byte(header), &fields); err != nil {
		return nil, errors.Wrap(err, "invalid YAML frontmatter")
	}
	if fields == nil {
		return nil, errors.New("frontmatter must be a YAML mapping")
	}
	return fields, nil
}
