package synth

import (
	"fmt"
	"strconv"

	"github.com/anaypant119/har2openapi/identity"
	"github.com/anaypant119/har2openapi/samples"
)

// Samples renders every non-empty pool as the curation artifact.
func (r *Run) Samples() samples.File {
	out := make(samples.File)
	for template, byMethod := range r.state {
		for method, st := range byMethod {
			slots := &samples.Slots{}
			if st.requestPool.Len() > 0 {
				slots.Request = st.requestPool.MarshalMap()
			}
			for status, pool := range st.responsePools {
				if pool.Len() == 0 {
					continue
				}
				if slots.Response == nil {
					slots.Response = make(map[string]map[string]interface{})
				}
				slots.Response[strconv.Itoa(status)] = pool.MarshalMap()
			}
			if slots.Request == nil && slots.Response == nil {
				continue
			}
			if out[template] == nil {
				out[template] = make(map[string]*samples.Slots)
			}
			out[template][string(method)] = slots
		}
	}
	return out
}

// PathTemplates returns the observed path templates in sorted order, for the
// debug artifact.
func (r *Run) PathTemplates() []string {
	return r.spec.SortedPaths()
}

// OperationRows returns one "tag / path / method / summary" row per
// operation, sorted by path then method, for the debug artifact. Operations
// whose responses carried an element discriminator note it at the end of
// the row.
func (r *Run) OperationRows() []string {
	var rows []string
	for _, path := range r.spec.SortedPaths() {
		item := r.spec.Paths[path]
		for _, method := range item.SortedMethods() {
			op := item[method]
			tag := identity.DefaultTag
			if len(op.Tags) > 0 {
				tag = op.Tags[0]
			}
			row := fmt.Sprintf("%s / %s / %s / %s", tag, path, method, op.Summary)
			if st := r.state[path][identity.Method(method)]; st != nil && st.elementKind != "" {
				row += " / element=" + st.elementKind
			}
			rows = append(rows, row)
		}
	}
	return rows
}
