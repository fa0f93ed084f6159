// Package skills implements the skill authoring toolchain: scaffolding new
// skill directories, validating their structure and content, discovering
// skills under a directory tree, and packaging them into distributable
// .skill archives. A skill is a directory containing a SKILL.md file with
// YAML frontmatter plus optional scripts/, references/, and assets/
// resource subdirectories.
package skills

import "regexp"

const (
	// SkillFileName is the required metadata document at the skill root.
	SkillFileName = "SKILL.md"

	// ArchiveExtension is the extension of packaged skill artifacts.
	ArchiveExtension = ".skill"

	// placeholderToken marks unfinished template content.
	placeholderToken = "TODO"

	// gitkeepName is ignored when deciding whether a resource directory
	// has content.
	gitkeepName = ".gitkeep"
)

// ResourceDirs are the conventional resource subdirectories of a skill.
var ResourceDirs = []string{"scripts", "references", "assets"}

// NamePattern is the allowed character set for skill names at creation time.
var NamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Skill represents a skill loaded from disk
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description of what the skill does
	Directory   string // Full path to the skill directory
	Body        string // Markdown body of SKILL.md (frontmatter stripped)
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
