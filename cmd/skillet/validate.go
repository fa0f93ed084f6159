package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/logger"
	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

var validateCmd = &cobra.Command{
	Use:   "validate <skill-path>",
	Short: "Run the validation checklist against a skill directory",
	Long: `Validate a skill directory against the structural and content rules:
SKILL.md presence, YAML frontmatter with name and description, body
content, bundled resources, and naming conventions.

Warnings are advisory; errors block packaging.

Examples:
  skillet validate .github/skills/code-quality-reviewer`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runValidate(cmd.Context(), args[0])
	},
}

func runValidate(ctx context.Context, skillPath string) {
	logger.G(ctx).WithField("skill_path", skillPath).Debug("Validating skill")

	report := skills.Validate(skillPath)
	printWarnings(report)

	if !report.OK() {
		presenter.Error(report.Err(), "Validation failed")
		os.Exit(1)
	}

	presenter.Success("Validation passed")
}

// printWarnings lists the report's warnings. Errors are rendered separately
// through Report.Err so all failure paths share one format.
func printWarnings(report *skills.Report) {
	if len(report.Warnings) == 0 {
		return
	}

	presenter.Section(fmt.Sprintf("Warnings (%d)", len(report.Warnings)))
	for _, warning := range report.Warnings {
		presenter.Warning(warning)
	}
}
