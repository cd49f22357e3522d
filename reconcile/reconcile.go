// Package reconcile rebuilds a specification's schema and example sections
// from a curated example file, preserving any path/method the curated file
// does not touch. Schema inference is delegated to the inference
// collaborator; calls are issued sequentially, one slot at a time, and the
// first failure aborts the whole run.
package reconcile

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"

	"github.com/anaypant119/har2openapi/examples"
	"github.com/anaypant119/har2openapi/identity"
	"github.com/anaypant119/har2openapi/inference"
	"github.com/anaypant119/har2openapi/printer"
	"github.com/anaypant119/har2openapi/samples"
	"github.com/anaypant119/har2openapi/spec"
)

// SkeletonTag marks operations that exist only because the curated file
// mentions them; they carry no classification from an ingestion run.
const SkeletonTag = "Unclassified"

// InferenceError marks a failed call to the schema inference collaborator.
// The first one aborts the whole reconciliation run.
type InferenceError struct {
	Slot string
	Err  error
}

func (e InferenceError) Error() string {
	return fmt.Sprintf("schema inference failed for %s: %v", e.Slot, e.Err)
}

func (e InferenceError) Unwrap() error {
	return e.Err
}

// elementVariants is the closed set of recognized element discriminator
// values and the shared schema component each maps to.
var elementVariants = map[string]string{
	"dataset": "DatasetElement",
	"chart":   "ChartElement",
	"table":   "TableElement",
}

// Reconcile builds a new spec from prior and the curated example file.
// Prior is not mutated. Every slot with examples passes the curation gate,
// then gets (inferred schema, published example set) attached.
func Reconcile(ctx context.Context, prior *spec.Spec, curated samples.File, inf inference.Inferencer) (*spec.Spec, error) {
	out := carryOver(prior)

	paths := maps.Keys(curated)
	sort.Strings(paths)
	for _, path := range paths {
		methods := maps.Keys(curated[path])
		sort.Strings(methods)
		for _, methodStr := range methods {
			method, ok := identity.ParseMethod(methodStr)
			if !ok {
				return nil, errors.Errorf("curated examples reference undocumented method %q for %s", methodStr, path)
			}
			if err := reconcileOperation(ctx, out, path, method, curated[path][methodStr], inf); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// carryOver copies the prior spec's structure; untouched operations are
// shared, touched ones are replaced wholesale below.
func carryOver(prior *spec.Spec) *spec.Spec {
	out := &spec.Spec{
		OpenAPI: prior.OpenAPI,
		Info:    prior.Info,
		Servers: prior.Servers,
		Paths:   make(spec.Paths, len(prior.Paths)),
	}
	if out.OpenAPI == "" {
		out.OpenAPI = spec.OpenAPIVersion
	}
	for path, item := range prior.Paths {
		copied := make(spec.PathItem, len(item))
		for method, op := range item {
			copied[method] = op
		}
		out.Paths[path] = copied
	}
	if prior.Components != nil && len(prior.Components.Schemas) > 0 {
		schemas := make(map[string]interface{}, len(prior.Components.Schemas))
		for name, s := range prior.Components.Schemas {
			schemas[name] = s
		}
		out.Components = &spec.Components{Schemas: schemas}
	}
	return out
}

func reconcileOperation(ctx context.Context, out *spec.Spec, path string, method identity.Method, slots *samples.Slots, inf inference.Inferencer) error {
	op := out.Operation(path, string(method), false)
	if op == nil {
		op = out.Operation(path, string(method), true)
		op.OperationID = identity.OperationID(method, path)
		op.Summary = identity.Summary(method, path)
		op.Tags = []string{SkeletonTag}
	} else {
		// Untouched operations stay shared with the prior spec; an operation
		// we are about to rewrite gets its own copy.
		op = cloneOperation(op)
		out.Paths[path][string(method)] = op
	}
	if slots == nil {
		return nil
	}

	if len(slots.Request) > 0 {
		slot := fmt.Sprintf("%s %s request", method, path)
		mt, err := reconcileSlot(ctx, out, slot, slots.Request, inf)
		if err != nil {
			return err
		}
		if mt != nil {
			op.RequestBody = &spec.RequestBody{
				Content: map[string]*spec.MediaType{"application/json": mt},
			}
		}
	}

	statuses := maps.Keys(slots.Response)
	sort.Strings(statuses)
	for _, statusKey := range statuses {
		pool := slots.Response[statusKey]
		if len(pool) == 0 {
			continue
		}
		slot := fmt.Sprintf("%s %s response %s", method, path, statusKey)
		mt, err := reconcileSlot(ctx, out, slot, pool, inf)
		if err != nil {
			return err
		}
		if mt == nil {
			continue
		}
		if op.Responses == nil {
			op.Responses = make(map[string]*spec.Response)
		}
		resp, exists := op.Responses[statusKey]
		if !exists {
			resp = &spec.Response{Description: responseDescription(statusKey, method)}
			op.Responses[statusKey] = resp
		}
		resp.Content = map[string]*spec.MediaType{"application/json": mt}
	}
	return nil
}

func cloneOperation(op *spec.Operation) *spec.Operation {
	clone := *op
	if op.Responses != nil {
		clone.Responses = make(map[string]*spec.Response, len(op.Responses))
		for status, resp := range op.Responses {
			respCopy := *resp
			clone.Responses[status] = &respCopy
		}
	}
	return &clone
}

// reconcileSlot runs the curation gate and schema inference for one slot
// and renders the published media type. A slot whose curated set is empty
// after validation yields nil.
func reconcileSlot(ctx context.Context, out *spec.Spec, slot string, pool map[string]interface{}, inf inference.Inferencer) (*spec.MediaType, error) {
	curated, err := examples.Validate(slot, pool)
	if err != nil {
		return nil, err
	}
	if len(curated.AllSerialized) == 0 {
		return nil, nil
	}

	schema, err := inf.Infer(ctx, slot, curated.AllSerialized)
	if err != nil {
		return nil, InferenceError{Slot: slot, Err: err}
	}

	if first, ok := curated.First(); ok {
		applyElementVariant(out, slot, schema, first)
	}

	mt := &spec.MediaType{Schema: schema}
	if len(curated.Published) > 0 {
		mt.Examples = make(map[string]*spec.ExampleObject, len(curated.Published))
		for _, ex := range curated.Published {
			mt.Examples[ex.Name] = &spec.ExampleObject{Value: ex.Value}
		}
	}
	return mt, nil
}

// applyElementVariant replaces an inferred "element" property with a
// reference to the shared component schema for its discriminator value.
// Unrecognized values are surfaced for operator review and left untouched.
func applyElementVariant(out *spec.Spec, slot string, schema inference.Schema, first interface{}) {
	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		return
	}
	if _, declared := props["element"]; !declared {
		return
	}
	firstObj, ok := first.(map[string]interface{})
	if !ok {
		return
	}
	kind, ok := firstObj["element"].(string)
	if !ok {
		return
	}

	component, recognized := elementVariants[kind]
	if !recognized {
		printer.Warningf("Unrecognized element discriminator %q in %s; leaving inferred schema in place. Review before publishing.\n", kind, slot)
		return
	}

	props["element"] = map[string]interface{}{
		"$ref": "#/components/schemas/" + component,
	}
	ensureComponent(out, component)
}

// ensureComponent guarantees the referenced shared schema exists so the
// published document has no dangling refs. A prior spec's definition wins.
func ensureComponent(out *spec.Spec, name string) {
	if out.Components == nil {
		out.Components = &spec.Components{}
	}
	if out.Components.Schemas == nil {
		out.Components.Schemas = make(map[string]interface{})
	}
	if _, exists := out.Components.Schemas[name]; !exists {
		out.Components.Schemas[name] = map[string]interface{}{"type": "object"}
	}
}

func responseDescription(statusKey string, method identity.Method) string {
	status, err := strconv.Atoi(statusKey)
	if err != nil {
		return statusKey
	}
	if desc, ok := identity.ClassifyResponse(status, method).Get(); ok {
		return desc
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return statusKey
}
