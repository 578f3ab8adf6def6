package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no
// -config flag is given.
const EnvConfigPath = "LOX_CONFIG"

// Print modes. PrintNone executes the program instead of printing it.
const (
	PrintNone   = ""
	PrintSexpr  = "sexpr"
	PrintRPN    = "rpn"
	PrintSource = "source"
	PrintDump   = "dump"
)

var printModes = []string{PrintNone, PrintSexpr, PrintRPN, PrintSource, PrintDump}

var (
	ErrInvalidPrintMode = errors.New("invalid print mode")
	ErrInvalidLogLevel  = errors.New("invalid log level")
)

// Config drives the command line front end.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	LogLevel    string `yaml:"log_level"`
	Print       string `yaml:"print"`
}

func Default() *Config {
	return &Config{
		Prompt:   "> ",
		LogLevel: "warn",
		Print:    PrintNone,
	}
}

// Load reads path over the defaults. Keys missing from the file keep
// their default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a YAML document over the defaults. An empty document
// yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(printModes, c.Print) {
		return fmt.Errorf("%w %q, expected one of sexpr, rpn, source, dump", ErrInvalidPrintMode, c.Print)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel; an empty value means warn.
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}
