package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resumegen"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

var errOutputRequired = errors.New("an output path is required (--output or RESUMEGEN_OUTPUT)")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check resume documents against the schema and field rules",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		data, err := resumegen.LoadResume(path)
		if err != nil {
			failed++
			var verr *resume.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "%s: invalid\n", path)
				for _, fe := range verr.Errors {
					fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
				}
				continue
			}
			fmt.Fprintf(out, "%s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "%s: ok (%d achievements, %d sections)\n", path, len(data.Achievements), len(data.Sections))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}
