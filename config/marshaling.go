package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dekarrin/inssort/internal/logging"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format of a config file.
type Format int

const (
	NoFormat Format = iota
	YAML
	JSON
)

func (f Format) String() string {
	switch f {
	case NoFormat:
		return "none"
	case YAML:
		return "YAML"
	case JSON:
		return "JSON"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extensions returns the file extensions, without the leading dot, that
// indicate a file is in format f.
func (f Format) Extensions() []string {
	switch f {
	case YAML:
		return []string{"yaml", "yml"}
	case JSON:
		return []string{"json", "jsn"}
	default:
		return nil
	}
}

// SupportedFormats returns a list of formats that the config module supports
// decoding. Includes all but NoFormat.
func SupportedFormats() []Format {
	return []Format{JSON, YAML}
}

// DetectFormat detects the format of a given configuration file and returns the
// Format that can decode it. Returns NoFormat if the format could not be
// detected.
func DetectFormat(file string) Format {
	ext := strings.ToLower(filepath.Ext(file))
	ext = strings.TrimPrefix(ext, ".")

	for _, f := range SupportedFormats() {
		for _, checkedExt := range f.Extensions() {
			if ext == checkedExt {
				return f
			}
		}
	}

	return NoFormat
}

type marshaledLog struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Provider string `yaml:"provider,omitempty" json:"provider,omitempty"`
	File     string `yaml:"file,omitempty" json:"file,omitempty"`
}

type marshaledSweep struct {
	MaxSize  int `yaml:"max_size,omitempty" json:"max_size,omitempty"`
	MaxValue int `yaml:"max_value,omitempty" json:"max_value,omitempty"`
}

type marshaledProbe struct {
	Generator string  `yaml:"generator,omitempty" json:"generator,omitempty"`
	Base      int     `yaml:"base,omitempty" json:"base,omitempty"`
	Samples   int     `yaml:"samples,omitempty" json:"samples,omitempty"`
	Power     float64 `yaml:"power,omitempty" json:"power,omitempty"`
	Epsilon   float64 `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`
}

type marshaledConfig struct {
	Seed   int64            `yaml:"seed,omitempty" json:"seed,omitempty"`
	Sweep  marshaledSweep   `yaml:"sweep" json:"sweep"`
	Probes []marshaledProbe `yaml:"probes,omitempty" json:"probes,omitempty"`
	Skip   bool             `yaml:"skip_complexity,omitempty" json:"skip_complexity,omitempty"`
	Log    marshaledLog     `yaml:"log" json:"log"`
}

// Load loads a configuration from a JSON or YAML file. The format of the file
// is determined by examining its extension; files ending in .json or .jsn are
// parsed as JSON files, and files ending in .yaml or .yml are parsed as YAML
// files. Other extensions are not supported. The extension is not
// case-sensitive.
func Load(file string) (Config, error) {
	f := DetectFormat(file)
	if f == NoFormat {
		return Config{}, fmt.Errorf("%q: incompatible format; must be .json, .jsn, .yml, or .yaml file", file)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("%q: %w", file, err)
	}

	cfg, err := Decode(f, data)
	if err != nil {
		return cfg, fmt.Errorf("%q: %w", file, err)
	}
	return cfg, nil
}

// Decode parses a Config from data in the given format.
func Decode(f Format, data []byte) (Config, error) {
	var cfg Config
	var mc marshaledConfig
	var err error

	switch f {
	case JSON:
		err = json.Unmarshal(data, &mc)
	case YAML:
		err = yaml.Unmarshal(data, &mc)
	default:
		return cfg, fmt.Errorf("cannot unmarshal data in format %q", f.String())
	}
	if err != nil {
		return cfg, err
	}

	if err := cfg.unmarshal(mc); err != nil {
		return cfg, err
	}
	cfg.Format = f
	return cfg, nil
}

// Dump dumps the configuration into the bytes of a formatted file. If parsed by
// Decode, the output results in an equivalent config.
//
// The config will be dumped in the same format it was loaded with, or will
// default to YAML if the cfg was created without loading from a data stream.
//
// This function will cause a panic if there is a problem marshaling the config
// data in its format.
func Dump(cfg Config) []byte {
	f := cfg.Format
	if f == NoFormat {
		f = YAML
	}

	mc := cfg.marshal()

	var b []byte
	var err error
	switch f {
	case JSON:
		b, err = json.MarshalIndent(mc, "", "  ")
	default:
		b, err = yaml.Marshal(mc)
	}
	if err != nil {
		panic(fmt.Sprintf("format encoding failed: %v", err))
	}
	return b
}

// unmarshal completely replaces all attributes with the values or missing
// values in the marshaledConfig.
//
// does no validation except that which is required for parsing.
func (cfg *Config) unmarshal(m marshaledConfig) error {
	var err error

	cfg.Seed = m.Seed
	cfg.SkipComplexity = m.Skip
	cfg.Sweep = Sweep{MaxSize: m.Sweep.MaxSize, MaxValue: m.Sweep.MaxValue}

	cfg.Probes = nil
	if len(m.Probes) > 0 {
		cfg.Probes = make([]Probe, len(m.Probes))
		for i, mp := range m.Probes {
			cfg.Probes[i] = Probe{
				Generator: mp.Generator,
				BaseSize:  mp.Base,
				Samples:   mp.Samples,
				Power:     mp.Power,
				Epsilon:   mp.Epsilon,
			}
		}
	}

	cfg.Log.Enabled = m.Log.Enabled
	cfg.Log.File = m.Log.File
	cfg.Log.Provider, err = logging.ParseProvider(m.Log.Provider)
	if err != nil {
		return fmt.Errorf("log: provider: %w", err)
	}

	return nil
}

func (cfg Config) marshal() marshaledConfig {
	mc := marshaledConfig{
		Seed: cfg.Seed,
		Skip: cfg.SkipComplexity,
		Sweep: marshaledSweep{
			MaxSize:  cfg.Sweep.MaxSize,
			MaxValue: cfg.Sweep.MaxValue,
		},
		Log: marshaledLog{
			Enabled: cfg.Log.Enabled,
			File:    cfg.Log.File,
		},
	}
	if cfg.Log.Provider != logging.NoLog {
		mc.Log.Provider = cfg.Log.Provider.String()
	}

	if len(cfg.Probes) > 0 {
		mc.Probes = make([]marshaledProbe, len(cfg.Probes))
		for i, p := range cfg.Probes {
			mc.Probes[i] = marshaledProbe{
				Generator: p.Generator,
				Base:      p.BaseSize,
				Samples:   p.Samples,
				Power:     p.Power,
				Epsilon:   p.Epsilon,
			}
		}
	}

	return mc
}
