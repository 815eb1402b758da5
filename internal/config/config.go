// Package config resolves generation settings from flags, environment
// variables (COVERDESIGN_*) and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/viant/coverdesign/index"
	"github.com/viant/coverdesign/runstore"
)

const EnvPrefix = "COVERDESIGN"

const (
	ConfigFileKey = "config"
	MKey          = "m"
	NKey          = "n"
	KKey          = "k"
	JKey          = "j"
	SKey          = "s"
	SamplesKey    = "samples"
	SeedKey       = "seed"
	DBDirKey      = "db-dir"
	IndexKey      = "index"
	ParallelKey   = "parallel"
	MaxPairsKey   = "max-pairs"
	NoSaveKey     = "no-save"
	OutputKey     = "output"
	LogLevelKey   = "log-level"
	LogFormatKey  = "log-format"
)

const (
	DefaultDBDir    = "database"
	DefaultMaxPairs = 50_000_000
)

var errInvalid = errors.New("config: invalid")

// Config holds the settings of one generation run.
type Config struct {
	Params  runstore.Params
	Samples []int
	// Seed makes random sampling reproducible; 0 draws a fresh sample.
	Seed uint64

	DBDir    string
	Index    index.Kind
	Parallel int
	MaxPairs uint64
	NoSave   bool

	Output    string
	LogLevel  string
	LogFormat string
}

// AddGlobalFlags registers flags shared by every command.
func AddGlobalFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Path to a YAML config file")
	fs.String(DBDirKey, DefaultDBDir, "Directory holding stored runs")
	fs.String(OutputKey, "table", "Output format: table, json or yaml")
	fs.String(LogLevelKey, "info", "Log level: debug, info, warn, error")
	fs.String(LogFormatKey, "console", "Log format: console or json")
}

// AddGenerateFlags registers the generation flags.
func AddGenerateFlags(fs *pflag.FlagSet) {
	fs.Int(MKey, 45, "Size of the value range [1, m] samples are drawn from")
	fs.Int(NKey, 7, "Number of samples")
	fs.Int(KKey, 6, "Size of each selected combination")
	fs.Int(JKey, 5, "Size of the subsets that must be covered")
	fs.Int(SKey, 5, "Minimum number of shared values for a subset to be covered")
	fs.String(SamplesKey, "", "Comma separated samples; drawn at random when empty")
	fs.Uint64(SeedKey, 0, "Seed for random sampling (0 = non-deterministic)")
	fs.String(IndexKey, string(index.KindAuto), "Coverage index: auto, brute or bitmask")
	fs.Int(ParallelKey, runtime.GOMAXPROCS(0), "Goroutines used to build the bitmask index")
	fs.Uint64(MaxPairsKey, DefaultMaxPairs, "Reject runs whose combination x subset product exceeds this (0 = no limit)")
	fs.Bool(NoSaveKey, false, "Do not persist the generated run")
}

// AddFilterFlags registers the optional parameter filters used by list.
func AddFilterFlags(fs *pflag.FlagSet) {
	for _, key := range []string{MKey, NKey, KKey, JKey, SKey} {
		fs.Int(key, 0, "Only runs with this "+key+" value (unset matches any)")
	}
}

// BuildViper binds fs, the environment and the optional config file.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return v, nil
}

// FromViper resolves and validates a generation Config.
func FromViper(v *viper.Viper) (*Config, error) {
	kind, err := index.ParseKind(v.GetString(IndexKey))
	if err != nil {
		return nil, err
	}
	samples, err := ParseSamples(v.GetString(SamplesKey))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Params: runstore.Params{
			M: v.GetInt(MKey),
			N: v.GetInt(NKey),
			K: v.GetInt(KKey),
			J: v.GetInt(JKey),
			S: v.GetInt(SKey),
		},
		Samples:   samples,
		Seed:      v.GetUint64(SeedKey),
		DBDir:     v.GetString(DBDirKey),
		Index:     kind,
		Parallel:  v.GetInt(ParallelKey),
		MaxPairs:  v.GetUint64(MaxPairsKey),
		NoSave:    v.GetBool(NoSaveKey),
		Output:    v.GetString(OutputKey),
		LogLevel:  v.GetString(LogLevelKey),
		LogFormat: v.GetString(LogFormatKey),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Filter builds a run filter from the filter flags that were set. A flag
// given as 0 filters on 0.
func Filter(v *viper.Viper) runstore.Filter {
	get := func(key string) *int {
		if !v.IsSet(key) {
			return nil
		}
		n := v.GetInt(key)
		return &n
	}
	return runstore.Filter{M: get(MKey), N: get(NKey), K: get(KKey), J: get(JKey), S: get(SKey)}
}

// Validate checks the run parameters.
func (c *Config) Validate() error {
	p := c.Params
	switch {
	case p.M < 1 || p.N < 0 || p.K < 1 || p.J < 1 || p.S < 0:
		return fmt.Errorf("%w: parameters must be positive (m=%d n=%d k=%d j=%d s=%d)", errInvalid, p.M, p.N, p.K, p.J, p.S)
	case p.N > p.M:
		return fmt.Errorf("%w: n=%d exceeds m=%d", errInvalid, p.N, p.M)
	}
	if len(c.Samples) > 0 {
		if len(c.Samples) != p.N {
			return fmt.Errorf("%w: number of samples must be %d, got %d", errInvalid, p.N, len(c.Samples))
		}
		seen := make(map[int]bool, len(c.Samples))
		for _, s := range c.Samples {
			if s < 1 || s > p.M {
				return fmt.Errorf("%w: sample %d outside [1, %d]", errInvalid, s, p.M)
			}
			if seen[s] {
				return fmt.Errorf("%w: duplicate sample %d", errInvalid, s)
			}
			seen[s] = true
		}
	}
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: unknown output %q", errInvalid, c.Output)
	}
	return nil
}

// IsInvalid reports whether err is a configuration error.
func IsInvalid(err error) bool { return errors.Is(err, errInvalid) }

// ParseSamples parses a comma separated list of integers.
func ParseSamples(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: sample %q is not an integer", errInvalid, p)
		}
		out = append(out, n)
	}
	return out, nil
}
