package skills

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const skillTemplate = `---
name: %NAME%
description: Replace with a comprehensive description of what this skill does and when to use it. The description is the primary triggering mechanism, so cover all use cases.
---

# %TITLE%

## Overview

TODO - Brief overview of what this skill provides

## When to Use This Skill

TODO - Specific scenarios and triggers for this skill (This is critical for skill activation)

## Workflow

TODO - Step-by-step instructions for using this skill

### Step 1: TODO

TODO - Detailed instructions

### Step 2: TODO

TODO - Detailed instructions

## Examples

TODO - Concrete examples of skill usage

## Resources

- **Scripts**: See ` + "`scripts/`" + ` directory for automation tools
- **References**: See ` + "`references/`" + ` directory for detailed documentation
- **Assets**: See ` + "`assets/`" + ` directory for templates and resources

## Common Pitfalls

TODO - Things to watch out for

## Best Practices

TODO - Recommended approaches
`

const exampleScript = `#!/usr/bin/env bash
# Example script - replace with your actual automation
set -euo pipefail

echo "Example script - customize for your skill's needs"
`

const exampleReference = `# Example Reference Documentation

TODO - Replace with detailed reference material for this skill

## Section 1

Detailed information...

## Section 2

More detailed information...
`

const exampleAsset = `# Example Asset

This file represents a template or resource that will be used in the output.
Replace with your actual template/asset content.
`

// ScaffoldResult describes the paths created by Scaffold, for display.
type ScaffoldResult struct {
	Dir       string
	SkillFile string
	Created   []string
}

// Scaffold creates a new skill directory under destDir with a templated
// SKILL.md, the three resource subdirectories, and example content in each.
// It refuses to overwrite an existing directory.
func Scaffold(name, destDir string) (*ScaffoldResult, error) {
	if !NamePattern.MatchString(name) {
		return nil, errors.Errorf("invalid skill name %q: only letters, numbers, hyphens, and underscores are allowed", name)
	}

	skillDir := filepath.Join(destDir, name)
	if _, err := os.Stat(skillDir); err == nil {
		return nil, errors.Errorf("skill directory already exists: %s", skillDir)
	}

	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create skill directory")
	}

	result := &ScaffoldResult{Dir: skillDir}

	skillFile := filepath.Join(skillDir, SkillFileName)
	content := strings.NewReplacer(
		"%NAME%", name,
		"%TITLE%", titleFromName(name),
	).Replace(skillTemplate)
	if err := os.WriteFile(skillFile, []byte(content), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write SKILL.md")
	}
	result.SkillFile = skillFile
	result.Created = append(result.Created, skillFile)

	for _, subdir := range ResourceDirs {
		dir := filepath.Join(skillDir, subdir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s directory", subdir)
		}
		result.Created = append(result.Created, dir)
	}

	examples := []struct {
		path    string
		content string
		mode    os.FileMode
	}{
		{filepath.Join(skillDir, "scripts", "example.sh"), exampleScript, 0o755},
		{filepath.Join(skillDir, "references", "example.md"), exampleReference, 0o644},
		{filepath.Join(skillDir, "assets", "example-template.md"), exampleAsset, 0o644},
	}
	for _, ex := range examples {
		if err := os.WriteFile(ex.path, []byte(ex.content), ex.mode); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", ex.path)
		}
		result.Created = append(result.Created, ex.path)
	}

	// Keep scripts/ present in version control even after the example is removed
	gitkeep := filepath.Join(skillDir, "scripts", gitkeepName)
	if err := os.WriteFile(gitkeep, nil, 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write .gitkeep")
	}

	return result, nil
}

// titleFromName turns "code-quality-reviewer" into "Code Quality Reviewer".
func titleFromName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
