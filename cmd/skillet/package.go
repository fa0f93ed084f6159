package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/logger"
	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

var packageCmd = &cobra.Command{
	Use:   "package <skill-path> [output-dir]",
	Short: "Validate a skill and package it into a .skill archive",
	Long: `Validate a skill directory and, if validation passes, package every file
under it into a single <skill-name>.skill zip archive.

The output directory defaults to the parent of the skill directory.
Validation errors abort packaging; warnings do not.

Examples:
  skillet package .github/skills/code-quality-reviewer
  skillet package .github/skills/code-quality-reviewer ./dist`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		skillPath := args[0]
		outputDir := defaultOutputDir(skillPath)
		if len(args) > 1 {
			outputDir = args[1]
		}
		runPackage(cmd.Context(), skillPath, outputDir)
	},
}

func runPackage(ctx context.Context, skillPath, outputDir string) {
	presenter.Section(fmt.Sprintf("Validating skill: %s", filepath.Base(filepath.Clean(skillPath))))

	report := skills.Validate(skillPath)
	printWarnings(report)

	if !report.OK() {
		presenter.Error(report.Err(), "Validation failed")
		presenter.Info("Fix the errors and try again.")
		os.Exit(1)
	}
	presenter.Success("Validation passed")

	archivePath, err := skills.Package(skillPath, outputDir)
	if err != nil {
		presenter.Error(err, "Failed to package skill")
		os.Exit(1)
	}

	info, err := os.Stat(archivePath)
	if err != nil {
		presenter.Error(err, "Failed to stat archive")
		os.Exit(1)
	}

	logger.G(ctx).WithField("archive", archivePath).WithField("bytes", info.Size()).Debug("Skill packaged")

	presenter.Success("Skill packaged successfully")
	presenter.Info(fmt.Sprintf("Package location: %s", archivePath))
	presenter.Info(fmt.Sprintf("Package size: %s", formatSize(info.Size())))
}

// defaultOutputDir is where the archive lands when no output directory is
// given: the parent of the skill directory.
func defaultOutputDir(skillPath string) string {
	return filepath.Dir(filepath.Clean(skillPath))
}

// formatSize renders a byte count in KB with two decimals, matching the
// scale of typical skill archives.
func formatSize(bytes int64) string {
	return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
}
