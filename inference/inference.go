// Package inference defines the schema-inference collaborator: a component
// that derives a JSON-Schema-shaped object from a named set of serialized
// example values. The pipeline treats it as opaque and awaits one call per
// slot; an inference failure aborts the whole reconciliation run.
package inference

import (
	"context"
)

// Schema is a JSON-Schema-shaped object as raw decoded JSON. All properties
// are optional and alphabetize on output.
type Schema = map[string]interface{}

// Inferencer derives a schema for the sample population of one slot. name
// identifies the slot for diagnostics; samples are serialized JSON values.
type Inferencer interface {
	Infer(ctx context.Context, name string, samples []string) (Schema, error)
}
