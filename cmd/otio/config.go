package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	opentrackio "github.com/reoring/opentrackio"
	"github.com/reoring/opentrackio/legacy"
	v1 "github.com/reoring/opentrackio/v1"
)

// settings is the effective configuration after the config file and flags
// have been applied.
type settings struct {
	Protocol      string
	DuplicateKeys string
	MaxDepth      int
	MaxBytes      int64
	LogLevel      string
	Format        string
	Output        string
}

func defaultSettings() settings {
	return settings{
		Protocol:      "1.0.0",
		DuplicateKeys: "ignore",
		LogLevel:      "warn",
		Output:        "json",
	}
}

type fileConfig struct {
	Protocol      string `toml:"protocol"`
	DuplicateKeys string `toml:"duplicate_keys"`
	MaxDepth      int    `toml:"max_depth"`
	MaxBytes      int64  `toml:"max_bytes"`
	LogLevel      string `toml:"log_level"`
	Format        string `toml:"format"`
	Output        string `toml:"output"`
}

func loadSettings(path string, cfg settings) (settings, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return settings{}, fmt.Errorf("load otio config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return settings{}, fmt.Errorf("load otio config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("protocol") {
		cfg.Protocol = strings.TrimSpace(raw.Protocol)
	}
	if meta.IsDefined("duplicate_keys") {
		cfg.DuplicateKeys = strings.TrimSpace(raw.DuplicateKeys)
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("max_bytes") {
		cfg.MaxBytes = raw.MaxBytes
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	return cfg, nil
}

func (s settings) parseOpt() (opentrackio.ParseOpt, error) {
	opt := opentrackio.ParseOpt{MaxDepth: s.MaxDepth, MaxBytes: s.MaxBytes}
	switch strings.ToLower(s.DuplicateKeys) {
	case "", "ignore":
		opt.Strictness.OnDuplicateKey = opentrackio.Ignore
	case "warn":
		opt.Strictness.OnDuplicateKey = opentrackio.Warn
	case "error":
		opt.Strictness.OnDuplicateKey = opentrackio.Error
	default:
		return opentrackio.ParseOpt{}, fmt.Errorf("duplicate_keys: want ignore, warn or error, got %q", s.DuplicateKeys)
	}
	return opt, nil
}

// newSample picks the sample layout from the configured protocol version.
func (s settings) newSample() (opentrackio.Sampler, error) {
	v, err := opentrackio.ParseVersion(s.Protocol)
	if err != nil {
		return nil, err
	}
	switch {
	case v.Major == v1.Version().Major:
		return &v1.Sample{}, nil
	case v.Major == 0 && v.Minor == legacy.Version().Minor:
		return &legacy.Sample{}, nil
	}
	return nil, fmt.Errorf("unsupported protocol version %s", v)
}

func (s settings) logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log_level: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "otio").Logger(), nil
}
