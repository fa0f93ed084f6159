package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillet/pkg/logger"
	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

type InitConfig struct {
	Path string
}

func NewInitConfig() *InitConfig {
	return &InitConfig{
		Path: viper.GetString("skills_path"),
	}
}

var initCmd = &cobra.Command{
	Use:   "init <skill-name>",
	Short: "Create a new skill with the standard structure",
	Long: `Create a new skill directory with a templated SKILL.md and the three
standard resource subdirectories (scripts, references, assets), each
seeded with example content.

Skill names may only contain letters, numbers, hyphens, and underscores.

Examples:
  skillet init code-quality-reviewer
  skillet init pdf-extractor --path ./skills`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getInitConfigFromFlags(cmd)
		runInit(cmd.Context(), args[0], config)
	},
}

func init() {
	initCmd.Flags().StringP("path", "p", "", "Directory the skill is created under (defaults to the skills_path config, .github/skills)")
}

func getInitConfigFromFlags(cmd *cobra.Command) *InitConfig {
	config := NewInitConfig()
	if path, err := cmd.Flags().GetString("path"); err == nil && path != "" {
		config.Path = path
	}
	return config
}

func runInit(ctx context.Context, name string, config *InitConfig) {
	result, err := skills.Scaffold(name, config.Path)
	if err != nil {
		presenter.Error(err, "Failed to create skill")
		os.Exit(1)
	}

	logger.G(ctx).WithField("skill_dir", result.Dir).Debug("Skill scaffolded")

	for _, path := range result.Created {
		presenter.Info(fmt.Sprintf("Created %s", path))
	}

	presenter.Success(fmt.Sprintf("Skill '%s' initialized at %s", name, result.Dir))
	presenter.Separator()
	presenter.Section("Next steps")
	presenter.Info(fmt.Sprintf("1. Edit %s and fill in the TODOs", result.SkillFile))
	presenter.Info(fmt.Sprintf("2. Add your scripts to %s", filepath.Join(result.Dir, "scripts")))
	presenter.Info(fmt.Sprintf("3. Add reference docs to %s", filepath.Join(result.Dir, "references")))
	presenter.Info(fmt.Sprintf("4. Add assets and templates to %s", filepath.Join(result.Dir, "assets")))
	presenter.Info("5. Delete example files you don't need")
	presenter.Info(fmt.Sprintf("6. Run 'skillet package %s' to validate and package the skill", result.Dir))
}
