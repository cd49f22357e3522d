// Package config loads the pipeline configuration: the API base-path filter,
// path normalization rules, tag rules, response strip fields, and the final
// output substitutions. The file is YAML; a missing or malformed file is a
// fatal configuration error.
package config

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/anaypant119/har2openapi/identity"
	"github.com/anaypant119/har2openapi/normalize"
	"github.com/anaypant119/har2openapi/spec"
)

// ReplaceRule is one ordered path substitution, applied before templating.
type ReplaceRule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

type Config struct {
	// Title of the generated specification.
	Title string `yaml:"title"`

	// Transactions whose URL does not contain this string are skipped.
	APIBasePath string `yaml:"api_base_path"`

	// Ordered pattern -> replacement rules turning raw paths into templates.
	PathReplace []ReplaceRule `yaml:"path_replace"`

	// Ordered tag rules; first keyword contained in the template wins.
	Tags []identity.TagRule `yaml:"tags"`

	// Top-level diagnostic fields stripped from response bodies before
	// folding. Defaults to ["traceback"].
	StripResponseFields []string `yaml:"strip_response_fields"`

	// Literal substitutions applied to the serialized spec before writing,
	// e.g. redacting hostnames or sample credentials.
	OutputSubstitutions []spec.Substitution `yaml:"output_substitutions"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Title:               "Observed API",
		StripResponseFields: []string{"traceback"},
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := Default()
	if err := yaml.UnmarshalStrict(buf, cfg); err != nil {
		return nil, errors.Wrapf(err, "config file %s is not valid YAML", path)
	}
	if cfg.APIBasePath == "" {
		return nil, errors.Errorf("config file %s does not set api_base_path", path)
	}
	if cfg.Title == "" {
		cfg.Title = Default().Title
	}
	if len(cfg.StripResponseFields) == 0 {
		cfg.StripResponseFields = Default().StripResponseFields
	}
	return cfg, nil
}

// CompiledPathRules compiles the configured path replacements in order.
func (c *Config) CompiledPathRules() ([]normalize.Rule, error) {
	pairs := make([][2]string, 0, len(c.PathReplace))
	for _, r := range c.PathReplace {
		pairs = append(pairs, [2]string{r.Pattern, r.Replacement})
	}
	return normalize.CompileRules(pairs)
}
