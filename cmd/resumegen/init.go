package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/wizard"
)

// newDriver is swapped in tests.
var newDriver = func(cmd *cobra.Command) wizard.PromptDriver {
	return wizard.SurveyDriver{Out: cmd.OutOrStdout()}
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter resume document interactively",
		RunE:  runInit,
	}
	cmd.Flags().StringP("output", "o", "resume.yaml", "Path of the document to create (.yaml or .json)")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	registry, err := buildTemplates(cfg)
	if err != nil {
		return err
	}
	w, err := wizard.New(newDriver(cmd), registry)
	if err != nil {
		return err
	}
	result, err := w.Run(cmd.Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := resume.Encode(&buf, result.Resume, resume.DetectFormat(path)); err != nil {
		return err
	}
	if err := writeOutput(cmd, path, buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s. Preview it with:\n  resumegen render -i %s -t %s -o resume.html\n", path, path, result.TemplateID)
	return nil
}
