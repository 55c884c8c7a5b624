package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	opentrackio "github.com/reoring/opentrackio"
	"github.com/reoring/opentrackio/codec"
)

type app struct {
	configPath string
	flags      settings
	cfg        settings
	registry   *codec.Registry
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{registry: codec.NewRegistry(), log: zerolog.Nop()}
	a.registry.Register(codec.StdJSON())

	root := &cobra.Command{
		Use:   "otio",
		Short: "otio - OpenTrackIO sample validator and converter",
		Long: `otio reads OpenTrackIO samples as JSON, CBOR or YAML, reports every
validation error and warning, and re-encodes the regenerated document.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to a TOML configuration file")
	pf.StringVar(&a.flags.Protocol, "protocol", "", "Protocol version of the input (1.0.0 or 0.9)")
	pf.StringVar(&a.flags.DuplicateKeys, "duplicate-keys", "", "Duplicate key handling: ignore, warn or error")
	pf.IntVar(&a.flags.MaxDepth, "max-depth", 0, "Maximum nesting depth (0 = unlimited)")
	pf.Int64Var(&a.flags.MaxBytes, "max-bytes", 0, "Maximum input size in bytes (0 = unlimited)")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&a.flags.Format, "format", "", "Input format (json, json-std, cbor, yaml); default from file extension")

	root.AddCommand(a.validateCmd(), a.convertCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := defaultSettings()
	if a.configPath != "" {
		var err error
		if cfg, err = loadSettings(a.configPath, cfg); err != nil {
			return err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("protocol") {
		cfg.Protocol = a.flags.Protocol
	}
	if fl.Changed("duplicate-keys") {
		cfg.DuplicateKeys = a.flags.DuplicateKeys
	}
	if fl.Changed("max-depth") {
		cfg.MaxDepth = a.flags.MaxDepth
	}
	if fl.Changed("max-bytes") {
		cfg.MaxBytes = a.flags.MaxBytes
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if fl.Changed("format") {
		cfg.Format = a.flags.Format
	}

	log, err := cfg.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	opentrackio.SetLogger(log)
	return nil
}

// load reads and initialises one document with the configured protocol.
func (a *app) load(path string) (opentrackio.Sampler, error) {
	c, err := a.codecFor(path)
	if err != nil {
		return nil, err
	}
	opt, err := a.cfg.parseOpt()
	if err != nil {
		return nil, err
	}
	s, err := a.cfg.newSample()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.InitialiseWith(c, data, opt); err != nil {
		return nil, err
	}
	a.log.Info().
		Str("file", path).
		Str("codec", c.Name()).
		Str("protocol", s.ProtocolVersion().String()).
		Int("errors", len(s.Errors())).
		Int("warnings", len(s.Warnings())).
		Msg("document loaded")
	return s, nil
}

func (a *app) codecFor(path string) (codec.Codec, error) {
	if a.cfg.Format != "" {
		if c := a.registry.Get(a.cfg.Format); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("unknown format %q", a.cfg.Format)
	}
	if c := a.registry.ForPath(path); c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("%s: cannot tell the format from the extension; use --format", path)
}
