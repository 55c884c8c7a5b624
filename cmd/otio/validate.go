package main

import (
	"fmt"

	"github.com/spf13/cobra"

	opentrackio "github.com/reoring/opentrackio"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate OpenTrackIO samples",
		Long: `Initialises every file and prints its errors and warnings.

Example:
  otio validate sample.json
  otio validate --protocol 0.9 --duplicate-keys warn old/*.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runValidate,
	}
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		s, err := a.load(path)
		if err != nil {
			failed++
			if iss, ok := opentrackio.AsIssues(err); ok {
				for _, it := range iss {
					fmt.Fprintf(out, "%s: error %s: %s\n", path, it.Path, it.Message)
				}
				continue
			}
			fmt.Fprintf(out, "%s: %v\n", path, err)
			continue
		}
		for _, iss := range s.Errors() {
			fmt.Fprintf(out, "%s: error %s: %s\n", path, iss.Path, iss.Message)
		}
		for _, iss := range s.Warnings() {
			fmt.Fprintf(out, "%s: warning %s: %s\n", path, iss.Path, iss.Message)
		}
		if len(s.Errors()) > 0 {
			failed++
			continue
		}
		fmt.Fprintf(out, "%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents invalid", failed, len(args))
	}
	return nil
}
