package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resumegen/pkg/sections/achievements"
	"github.com/goliatone/go-resumegen/pkg/sections/skills"
	"github.com/goliatone/go-resumegen/pkg/templates"
	"github.com/goliatone/go-resumegen/pkg/variant"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			registry, err := buildTemplates(cfg)
			if err != nil {
				return err
			}
			fallback, _ := registry.Default()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSHELL\tACHIEVEMENTS\tSKILLS\tDESCRIPTION")
			for _, def := range registry.List() {
				id := def.ID
				if id == fallback.ID {
					id += " *"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", id, templates.ShellName(def), orDefault(def.AchievementsVariant), orDefault(def.SkillsVariant), def.Description)
			}
			return tw.Flush()
		},
	}
}

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "variants [section]",
		Short:     "List the layout variants of a section",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{achievements.Section, skills.Section},
		RunE: func(cmd *cobra.Command, args []string) error {
			section := achievements.Section
			if len(args) == 1 {
				section = args[0]
			}
			switch section {
			case achievements.Section:
				return printVariants(cmd, achievements.Registry())
			case skills.Section:
				return printVariants(cmd, skills.Registry())
			default:
				return fmt.Errorf("unknown section %q (want %s or %s)", section, achievements.Section, skills.Section)
			}
		},
	}
}

func printVariants[P any](cmd *cobra.Command, registry *variant.Registry[P]) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tALIASES\tDESCRIPTION")
	for _, entry := range registry.Entries() {
		tag := entry.Tag
		if tag == registry.Default() {
			tag += " *"
		}
		aliases := "-"
		if len(entry.Aliases) > 0 {
			aliases = fmt.Sprint(entry.Aliases)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tag, aliases, entry.Description)
	}
	return tw.Flush()
}

func orDefault(tag string) string {
	if tag == "" {
		return "-"
	}
	return tag
}
