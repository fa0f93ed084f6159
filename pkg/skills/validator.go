package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// Report collects the outcome of a validation run. Errors block packaging;
// warnings are advisory only.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether validation passed. Warnings never affect the outcome.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// Err returns all errors aggregated into a single error, or nil when the
// report is clean.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, e := range r.Errors {
		result = multierror.Append(result, fmt.Errorf("%s", e))
	}
	return result.ErrorOrNil()
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// validator runs the checklist against a single skill directory.
type validator struct {
	skillDir  string
	skillName string
	report    *Report
}

// Validate runs the full validation checklist against skillDir and returns
// the report. Structural failures that make further checks meaningless
// (missing directory, missing SKILL.md, unparsable frontmatter) halt the
// pass with a single error; content checks accumulate independently.
func Validate(skillDir string) *Report {
	v := &validator{
		skillDir:  skillDir,
		skillName: filepath.Base(filepath.Clean(skillDir)),
		report:    &Report{},
	}
	v.run()
	return v.report
}

func (v *validator) run() {
	if err := v.checkDirectory(); err != nil {
		v.report.errorf("%s", err)
		return
	}
	if err := v.checkSkillFile(); err != nil {
		v.report.errorf("%s", err)
		return
	}

	content, err := os.ReadFile(filepath.Join(v.skillDir, SkillFileName))
	if err != nil {
		v.report.errorf("failed to read SKILL.md: %s", err)
		return
	}

	header, body, err := splitFrontmatter(string(content))
	if err != nil {
		v.report.errorf("%s", err)
		return
	}
	fields, err := parseFrontmatter(header)
	if err != nil {
		v.report.errorf("%s", err)
		return
	}

	v.checkFrontmatter(fields)
	v.checkBody(body)
	v.checkResources()
	v.checkNaming()
}

func (v *validator) checkDirectory() error {
	info, err := os.Stat(v.skillDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("skill directory does not exist: %s", v.skillDir)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", v.skillDir)
	}
	return nil
}

func (v *validator) checkSkillFile() error {
	path := filepath.Join(v.skillDir, SkillFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("SKILL.md file is required but not found")
	}
	return nil
}

func (v *validator) checkFrontmatter(fields map[string]any) {
	name, hasName := fields["name"]
	if !hasName {
		v.report.errorf("frontmatter must include 'name' field")
	} else if nameStr := fmt.Sprintf("%v", name); nameStr != v.skillName {
		v.report.warnf("frontmatter name %q doesn't match directory name %q", nameStr, v.skillName)
	}

	desc, hasDesc := fields["description"]
	if !hasDesc {
		v.report.errorf("frontmatter must include 'description' field")
	} else {
		descStr, _ := desc.(string)
		if utf8.RuneCountInString(strings.TrimSpace(descStr)) < 20 {
			v.report.errorf("description is too short (min 20 characters) - be comprehensive about what the skill does and when to use it")
		}
		if strings.Contains(descStr, placeholderToken) {
			v.report.errorf("description contains %s - must be completed", placeholderToken)
		}
	}

	var extra []string
	for key := range fields {
		if key != "name" && key != "description" {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		v.report.warnf("frontmatter contains extra fields (will be ignored): %s", strings.Join(extra, ", "))
	}
}

func (v *validator) checkBody(body string) {
	body = strings.TrimSpace(body)

	if body == "" {
		v.report.errorf("SKILL.md body is empty")
		return
	}

	if strings.Contains(body, placeholderToken) {
		v.report.warnf("SKILL.md contains %s items - consider completing them", placeholderToken)
	}
	length := utf8.RuneCountInString(body)
	if length < 100 {
		v.report.warnf("SKILL.md body is very short - consider adding more guidance")
	}
	if length > 25000 {
		v.report.warnf("SKILL.md body is very long (>5000 words) - consider moving content to references/")
	}
}

func (v *validator) checkResources() {
	hasResources := false

	for _, subdir := range ResourceDirs {
		dir := filepath.Join(v.skillDir, subdir)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || info.Name() == gitkeepName {
				return nil
			}
			hasResources = true
			if strings.Contains(strings.ToLower(info.Name()), "example") {
				rel, relErr := filepath.Rel(v.skillDir, path)
				if relErr != nil {
					rel = path
				}
				v.report.warnf("found example file that should be removed or renamed: %s", filepath.ToSlash(rel))
			}
			return nil
		})
	}

	if !hasResources {
		v.report.warnf("no bundled resources found (scripts, references, or assets) - consider if this skill would benefit from them")
	}
}

func (v *validator) checkNaming() {
	if v.skillName != strings.ToLower(v.skillName) {
		v.report.warnf("skill name %q should be lowercase", v.skillName)
	}
	if strings.Contains(v.skillName, "_") {
		v.report.warnf("skill name %q should use hyphens, not underscores", v.skillName)
	}
	if strings.Contains(v.skillName, " ") {
		v.report.errorf("skill name %q cannot contain spaces", v.skillName)
	}
}
