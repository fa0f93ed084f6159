package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

type ListConfig struct {
	Path string
}

func NewListConfig() *ListConfig {
	return &ListConfig{
		Path: viper.GetString("skills_path"),
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills under the skills directory",
	Long:  `List all skills under the skills directory with their names, descriptions, and directory paths.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getListConfigFromFlags(cmd)
		runList(config)
	},
}

func init() {
	listCmd.Flags().StringP("path", "p", "", "Directory to scan for skills (defaults to the skills_path config, .github/skills)")
}

func getListConfigFromFlags(cmd *cobra.Command) *ListConfig {
	config := NewListConfig()
	if path, err := cmd.Flags().GetString("path"); err == nil && path != "" {
		config.Path = path
	}
	return config
}

func runList(config *ListConfig) {
	discovery := skills.NewDiscovery(skills.WithSkillRoots(config.Path))

	found := discovery.DiscoverSkills()
	if len(found) == 0 {
		presenter.Info(fmt.Sprintf("No skills found under %s", config.Path))
		return
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	for _, name := range names {
		skill := found[name]
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, skill.Directory, description)
	}
	tw.Flush()
}
