package utils

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DisplayANSI prints colored blocks and clears the terminal between frames.
	DisplayANSI = "ansi"
	// DisplayScreen draws on a full-screen terminal display.
	DisplayScreen = "screen"
)

// ErrConfiguration is returned for invalid command line or config file values.
var ErrConfiguration = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width" yaml:"width"`
	Height         int           `json:"height" yaml:"height"`
	File           string        `json:"file" yaml:"file"`
	Delay          time.Duration `json:"delay" yaml:"delay"`
	Seed           uint64        `json:"seed" yaml:"seed"`
	Display        string        `json:"display" yaml:"display"`
	ShowStats      bool          `json:"show_stats" yaml:"show_stats"`
	UseBoundedGrid bool          `json:"use_bounded_grid" yaml:"use_bounded_grid"`
	UseMemoryPool  bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	MaxGenerations uint64        `json:"max_generations" yaml:"max_generations"`

	// ConfigFile is where the values above were loaded from, if anywhere
	ConfigFile string `json:"-" yaml:"-"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:         20,
		Height:        20,
		Delay:         time.Second,
		Display:       DisplayANSI,
		UseMemoryPool: true,
	}
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "width of a random board")
	fs.IntVar(&c.Width, "w", c.Width, "shorthand for -width")
	fs.IntVar(&c.Height, "height", c.Height, "height of a random board")
	fs.IntVar(&c.Height, "t", c.Height, "shorthand for -height")
	fs.StringVar(&c.File, "file", c.File, "file with the initial board (rows of 0 and 1); overrides -width and -height")
	fs.StringVar(&c.File, "f", c.File, "shorthand for -file")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for the random board, 0 picks one from the clock")
	fs.StringVar(&c.Display, "display", c.Display, "output mode: ansi or screen")
	fs.BoolVar(&c.ShowStats, "stats", c.ShowStats, "show a status line with every generation")
	fs.BoolVar(&c.UseBoundedGrid, "bounded", c.UseBoundedGrid, "only scan the region around living cells")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "reuse grid buffers between generations")
	fs.Uint64Var(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this generation, 0 runs until all cells die")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON or YAML file with default settings")
}

// ParseArgs builds the configuration from command line arguments. Values from
// a -config file replace the defaults; flags given on the command line win
// over both. flag.ErrHelp is returned as is.
func ParseArgs(name string, args []string, output io.Writer) (Config, error) {
	config := DefaultConfig()
	if err := parseFlags(name, args, output, &config); err != nil {
		return config, err
	}

	if config.ConfigFile != "" {
		path := config.ConfigFile
		fileConfig, err := LoadConfig(path)
		if err != nil {
			return config, errors.Wrapf(ErrConfiguration, "%v", err)
		}
		config = fileConfig
		config.ConfigFile = path
		if err := parseFlags(name, args, io.Discard, &config); err != nil {
			return config, err
		}
	}

	if err := config.Validate(); err != nil {
		newFlagSet(name, output, &config).Usage()
		return config, err
	}
	return config, nil
}

func newFlagSet(name string, output io.Writer, config *Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	config.Bind(fs)
	return fs
}

func parseFlags(name string, args []string, output io.Writer, config *Config) error {
	fs := newFlagSet(name, output, config)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errors.Wrapf(ErrConfiguration, "[ParseArgs] %v", err)
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return errors.Wrapf(ErrConfiguration, "[ParseArgs] unexpected arguments: %v", fs.Args())
	}
	return nil
}

// Validate checks the values that the rest of the program relies on. Width
// and height are not checked when the board comes from a file.
func (c Config) Validate() error {
	switch {
	case c.File != "":
	case c.Width <= 0:
		return errors.Wrapf(ErrConfiguration, "width must be positive, got %d", c.Width)
	case c.Height <= 0:
		return errors.Wrapf(ErrConfiguration, "height must be positive, got %d", c.Height)
	}

	switch {
	case c.Delay < 0:
		return errors.Wrapf(ErrConfiguration, "delay must not be negative, got %s", c.Delay)
	case c.Display != DisplayANSI && c.Display != DisplayScreen:
		return errors.Wrapf(ErrConfiguration, "unknown display %q", c.Display)
	}
	return nil
}
