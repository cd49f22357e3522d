// Package samples defines the example artifact exchanged between a synthesis
// run and the curation step: a nested mapping of path -> method -> example
// slots. The synthesis run writes it fully populated; a human flags the
// examples worth publishing by prefixing their names; reconciliation reads
// it back.
package samples

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Slots holds the example pools for one operation: the request body slot and
// one response slot per status code. Example names map to example values;
// the reserved "accumulator" name holds the running deep merge.
type Slots struct {
	Request  map[string]interface{}            `json:"request,omitempty"`
	Response map[string]map[string]interface{} `json:"response,omitempty"`
}

// File is the artifact: path template -> method -> slots.
type File map[string]map[string]*Slots

// Load reads a samples artifact. A file that is not valid JSON of the
// expected shape is a fatal input error.
func Load(path string) (File, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read samples file %s", path)
	}
	var f File
	if err := json.Unmarshal(buf, &f); err != nil {
		return nil, errors.Wrapf(err, "samples file %s does not have the expected shape", path)
	}
	return f, nil
}

// Write persists the artifact as indented JSON. Object keys serialize in
// sorted order, which for zero-padded example names is insertion order.
func Write(path string, f File) error {
	buf, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize samples")
	}
	if err := os.WriteFile(path, append(buf, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "failed to write samples file %s", path)
	}
	return nil
}
