package skills

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// DefaultSkillsDir is the conventional location for skills relative to the
// working directory.
const DefaultSkillsDir = ".github/skills"

// Discovery finds skills under configured root directories.
type Discovery struct {
	roots []string
}

// Option is a function that configures a Discovery
type Option func(*Discovery)

// WithSkillRoots sets custom root directories to scan
func WithSkillRoots(roots ...string) Option {
	return func(d *Discovery) {
		d.roots = roots
	}
}

// NewDiscovery creates a new skill discovery instance. Without options it
// scans the conventional skills directory.
func NewDiscovery(opts ...Option) *Discovery {
	d := &Discovery{roots: []string{DefaultSkillsDir}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscoverSkills finds all skills under the configured roots. Directories
// whose SKILL.md is missing or unparsable are skipped. Earlier roots take
// precedence on name collisions.
func (d *Discovery) DiscoverSkills() map[string]*Skill {
	found := make(map[string]*Skill)

	for _, root := range d.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			dir := filepath.Join(root, entry.Name())

			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				continue
			}

			skill, err := loadSkill(filepath.Join(dir, SkillFileName))
			if err != nil {
				continue
			}

			if _, exists := found[skill.Name]; !exists {
				skill.Directory = dir
				found[skill.Name] = skill
			}
		}
	}

	return found
}

// ListSkillNames returns the sorted names of all discovered skills.
func (d *Discovery) ListSkillNames() []string {
	found := d.DiscoverSkills()
	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadSkill parses a SKILL.md file into a Skill using goldmark's metadata
// extension.
func loadSkill(path string) (*Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	if name == "" {
		return nil, errors.New("skill name is required in frontmatter")
	}
	if description == "" {
		return nil, errors.New("skill description is required in frontmatter")
	}

	_, body, err := splitFrontmatter(string(content))
	if err != nil {
		return nil, err
	}

	return &Skill{
		Name:        name,
		Description: description,
		Body:        body,
	}, nil
}
