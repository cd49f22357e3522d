package spec

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// Substitution is one literal find -> replace applied to the serialized spec
// before it is persisted. Used to redact or rename literal values such as
// hostnames and sample credentials.
type Substitution struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// ReadFile loads a specification from a JSON or YAML file. YAML is accepted
// for either extension since JSON is a YAML subset.
func ReadFile(path string) (*Spec, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read spec file %s", path)
	}
	var s Spec
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, errors.Wrapf(err, "spec file %s is not valid JSON or YAML", path)
	}
	if s.Paths == nil {
		s.Paths = make(Paths)
	}
	return &s, nil
}

// Marshal serializes the spec in the requested format ("json" or "yaml")
// after applying the configured output substitutions in order. JSON object
// keys serialize in sorted order, so output is deterministic.
func Marshal(s *Spec, format string, subs []Substitution) ([]byte, error) {
	buf, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize spec")
	}

	text := string(buf)
	for _, sub := range subs {
		text = strings.ReplaceAll(text, sub.From, sub.To)
	}
	buf = []byte(text)

	switch format {
	case "", "json":
		return append(buf, '\n'), nil
	case "yaml":
		out, err := yaml.JSONToYAML(buf)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert spec to YAML")
		}
		return out, nil
	default:
		return nil, errors.Errorf("unsupported spec format %q", format)
	}
}

// WriteFile persists the spec to path in the requested format.
func WriteFile(path string, s *Spec, format string, subs []Substitution) error {
	buf, err := Marshal(s, format, subs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return errors.Wrapf(err, "failed to write spec file %s", path)
	}
	return nil
}
