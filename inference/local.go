package inference

import (
	"context"
	"encoding/json"
	"math"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Local infers schemas in-process. Every sample contributes one per-value
// schema; the per-value schemas are then unioned. Object properties are
// never marked required, since any one sample may omit fields another
// carries.
type Local struct{}

func NewLocal() Local {
	return Local{}
}

func (Local) Infer(_ context.Context, name string, samples []string) (Schema, error) {
	schemas := make([]*jsonschema.Schema, 0, len(samples))
	for _, sample := range samples {
		var v interface{}
		if err := json.Unmarshal([]byte(sample), &v); err != nil {
			return nil, errors.Wrapf(err, "sample set %s contains a non-JSON sample", name)
		}
		schemas = append(schemas, schemaOf(v))
	}
	if len(schemas) == 0 {
		return nil, errors.Errorf("sample set %s is empty", name)
	}

	merged := mergeSchemas(schemas)

	// Round-trip through JSON to hand back the plain object shape the
	// reconciler post-processes.
	buf, err := json.Marshal(merged)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to serialize inferred schema for %s", name)
	}
	var out Schema
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to decode inferred schema for %s", name)
	}
	return out, nil
}

func schemaOf(v interface{}) *jsonschema.Schema {
	if v == nil {
		return &jsonschema.Schema{Type: "null"}
	}

	switch val := v.(type) {
	case bool:
		return &jsonschema.Schema{Type: "boolean"}

	case float64:
		// encoding/json decodes every number as float64.
		if math.Trunc(val) == val && !math.IsInf(val, 0) {
			return &jsonschema.Schema{Type: "integer"}
		}
		return &jsonschema.Schema{Type: "number"}

	case string:
		return &jsonschema.Schema{Type: "string"}

	case []interface{}:
		s := &jsonschema.Schema{Type: "array"}
		if len(val) > 0 {
			items := make([]*jsonschema.Schema, 0, len(val))
			for _, item := range val {
				items = append(items, schemaOf(item))
			}
			s.Items = mergeSchemas(items)
		}
		return s

	case map[string]interface{}:
		s := &jsonschema.Schema{
			Type:       "object",
			Properties: jsonschema.NewProperties(),
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			s.Properties.Set(k, schemaOf(val[k]))
		}
		return s

	default:
		return &jsonschema.Schema{}
	}
}

func mergeSchemas(schemas []*jsonschema.Schema) *jsonschema.Schema {
	if len(schemas) == 0 {
		return &jsonschema.Schema{}
	}
	if len(schemas) == 1 {
		return schemas[0]
	}

	byType := make(map[string][]*jsonschema.Schema)
	for _, s := range schemas {
		byType[s.Type] = append(byType[s.Type], s)
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	merged := make([]*jsonschema.Schema, 0, len(types))
	for _, t := range types {
		group := byType[t]
		switch t {
		case "object":
			merged = append(merged, mergeObjectSchemas(group))
		case "array":
			merged = append(merged, mergeArraySchemas(group))
		default:
			merged = append(merged, group[0])
		}
	}

	if len(merged) == 1 {
		return merged[0]
	}
	return &jsonschema.Schema{AnyOf: merged}
}

func mergeObjectSchemas(schemas []*jsonschema.Schema) *jsonschema.Schema {
	if len(schemas) == 1 {
		return schemas[0]
	}

	byProperty := make(map[string][]*jsonschema.Schema)
	for _, s := range schemas {
		if s.Properties == nil {
			continue
		}
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			byProperty[pair.Key] = append(byProperty[pair.Key], pair.Value)
		}
	}

	merged := &jsonschema.Schema{
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}
	keys := make([]string, 0, len(byProperty))
	for k := range byProperty {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged.Properties.Set(k, mergeSchemas(byProperty[k]))
	}
	return merged
}

func mergeArraySchemas(schemas []*jsonschema.Schema) *jsonschema.Schema {
	if len(schemas) == 1 {
		return schemas[0]
	}

	items := make([]*jsonschema.Schema, 0, len(schemas))
	for _, s := range schemas {
		if s.Items != nil {
			items = append(items, s.Items)
		}
	}
	merged := &jsonschema.Schema{Type: "array"}
	if len(items) > 0 {
		merged.Items = mergeSchemas(items)
	}
	return merged
}
