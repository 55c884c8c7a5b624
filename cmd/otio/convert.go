package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) convertCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode an OpenTrackIO sample",
		Long: `Initialises FILE and writes the regenerated document to stdout.
Fields that failed validation are not carried over.

Example:
  otio convert sample.json --to cbor > sample.cbor
  otio convert sample.cbor --to yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := a.cfg.Output
			if cmd.Flags().Changed("to") {
				target = to
			}
			enc := a.registry.Get(target)
			if enc == nil {
				return fmt.Errorf("unknown output format %q", target)
			}
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			if n := len(s.Errors()); n > 0 {
				a.log.Warn().Str("file", args[0]).Int("errors", n).Msg("converting document with errors")
			}
			data, err := enc.Encode(s.Document())
			if err != nil {
				return fmt.Errorf("encode %s: %w", enc.Name(), err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "json", "Output format: json, cbor or yaml")
	return cmd
}
