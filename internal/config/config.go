// Package config resolves the settings of a run: built-in defaults, an
// optional YAML file and command-line overrides, validated against an
// embedded CUE schema.
//
// # File Format
//
//	id: 42
//	name: "Zé do Ponteiro"
//	option: 2
//	count: 10
//	name_policy: truncate
//
// Every field is optional; missing fields keep their defaults. Unknown
// fields are rejected so typos surface immediately.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ponteiro/internal/record"
)

//go:embed schema.cue
var schemaCUE string

// ErrInvalid wraps every schema violation returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Defaults mirror the original demonstration.
const (
	DefaultID         = 42
	DefaultName       = "Zé do Ponteiro"
	DefaultOption     = 2
	DefaultCount      = 10
	DefaultNamePolicy = "truncate"
)

// Config holds the resolved settings for a run.
type Config struct {
	ID         int    `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Option     int    `yaml:"option" json:"option"`
	Count      int    `yaml:"count" json:"count"`
	NamePolicy string `yaml:"name_policy" json:"name_policy"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ID:         DefaultID,
		Name:       DefaultName,
		Option:     DefaultOption,
		Count:      DefaultCount,
		NamePolicy: DefaultNamePolicy,
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
// An empty document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks c against the embedded CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	value := def.Unify(ctx.Encode(c))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, cueerrors.Details(err, nil))
	}
	return nil
}

// Policy parses NamePolicy.
func (c Config) Policy() (record.NamePolicy, error) {
	return record.ParseNamePolicy(c.NamePolicy)
}
