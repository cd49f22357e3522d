// Package synth implements the traffic-ingestion run: a single linear pass
// that folds captured transactions into a specification skeleton plus
// per-operation example pools. The run owns its spec and pools exclusively
// and is not safe for concurrent use.
package synth

import (
	"strconv"
	"strings"

	"github.com/anaypant119/har2openapi/config"
	"github.com/anaypant119/har2openapi/examples"
	"github.com/anaypant119/har2openapi/identity"
	"github.com/anaypant119/har2openapi/normalize"
	"github.com/anaypant119/har2openapi/printer"
	"github.com/anaypant119/har2openapi/spec"
)

// Transaction is one observed HTTP exchange, already decoded from its
// transport encoding.
type Transaction struct {
	Method string
	URL    string
	Query  []QueryParam

	RequestBody        string
	RequestContentType string

	Status              int
	ResponseBody        string
	ResponseContentType string
}

type QueryParam struct {
	Name  string
	Value string
}

// Run accumulates one ingestion pass.
type Run struct {
	cfg   *config.Config
	rules []normalize.Rule
	spec  *spec.Spec
	state map[string]map[identity.Method]*operationState

	skipped int
}

type operationState struct {
	op          *spec.Operation
	lastSeenURL string
	elementKind string

	queryNames    map[string]bool
	requestPool   *examples.Pool
	responsePools map[int]*examples.Pool
}

func NewRun(cfg *config.Config) (*Run, error) {
	rules, err := cfg.CompiledPathRules()
	if err != nil {
		return nil, err
	}
	return &Run{
		cfg:   cfg,
		rules: rules,
		spec:  spec.New(cfg.Title),
		state: make(map[string]map[identity.Method]*operationState),
	}, nil
}

// Add folds one transaction into the run. Transactions outside the base path
// or outside the documented method set are skipped; a body that fails to
// parse skips only that example. Add never fails the run for a single bad
// transaction.
func (r *Run) Add(tx Transaction) {
	path, ok := r.extractPath(tx.URL)
	if !ok {
		r.skipped++
		if looksAPILike(tx.URL) {
			printer.Infof("Skipping %s: URL does not contain base path %q but looks like an API call. Misconfigured api_base_path?\n",
				tx.URL, r.cfg.APIBasePath)
		}
		return
	}

	template := normalize.Path(path, r.rules)
	if template == "" {
		r.skipped++
		return
	}

	method, ok := identity.ParseMethod(tx.Method)
	if !ok {
		r.skipped++
		printer.Debugf("Skipping %s %s: method not documented\n", tx.Method, tx.URL)
		return
	}

	st := r.operation(method, template)
	st.lastSeenURL = tx.URL
	r.recordQueryParams(st, tx.Query)
	r.recordResponse(st, method, tx)
	r.recordRequest(st, tx)
}

// Spec returns the specification built so far.
func (r *Run) Spec() *spec.Spec {
	return r.spec
}

// Skipped reports how many transactions were excluded from the run.
func (r *Run) Skipped() int {
	return r.skipped
}

func (r *Run) extractPath(rawURL string) (string, bool) {
	idx := strings.Index(rawURL, r.cfg.APIBasePath)
	if idx < 0 {
		return "", false
	}
	p := rawURL[idx+len(r.cfg.APIBasePath):]
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		p = "/"
	}
	return p, true
}

func looksAPILike(rawURL string) bool {
	return strings.Contains(rawURL, "/api/") || strings.Contains(rawURL, "api.")
}

// operation returns the per-operation state for (method, template), creating
// the spec skeleton on first sight. Identity is a pure function of the pair,
// so an operation keeps its id for the whole run no matter how many
// transactions hit it.
func (r *Run) operation(method identity.Method, template string) *operationState {
	byMethod, ok := r.state[template]
	if !ok {
		byMethod = make(map[identity.Method]*operationState)
		r.state[template] = byMethod
	}
	if st, ok := byMethod[method]; ok {
		return st
	}

	op := r.spec.Operation(template, string(method), true)
	op.OperationID = identity.OperationID(method, template)
	op.Summary = identity.Summary(method, template)
	op.Tags = []string{identity.Tag(template, r.cfg.Tags)}
	op.Responses = make(map[string]*spec.Response)
	for _, name := range normalize.PathParams(template) {
		op.Parameters = append(op.Parameters, spec.Parameter{
			Name:        name,
			In:          "path",
			Description: normalize.ParamDescription(name),
			Required:    true,
			Schema:      map[string]interface{}{"type": "string"},
		})
	}

	st := &operationState{
		op:            op,
		queryNames:    make(map[string]bool),
		requestPool:   examples.NewPool(),
		responsePools: make(map[int]*examples.Pool),
	}
	byMethod[method] = st
	return st
}

func (r *Run) recordQueryParams(st *operationState, query []QueryParam) {
	for _, q := range query {
		if q.Name == "" || st.queryNames[q.Name] {
			continue
		}
		st.queryNames[q.Name] = true
		st.op.Parameters = append(st.op.Parameters, spec.Parameter{
			Name:   q.Name,
			In:     "query",
			Schema: map[string]interface{}{"type": "string"},
		})
	}
}

func (r *Run) recordResponse(st *operationState, method identity.Method, tx Transaction) {
	if desc, ok := identity.ClassifyResponse(tx.Status, method).Get(); ok {
		statusKey := strconv.Itoa(tx.Status)
		if _, exists := st.op.Responses[statusKey]; !exists {
			st.op.Responses[statusKey] = &spec.Response{Description: desc}
		}
	}

	// The example is recorded for schema purposes even when the status has
	// no classification.
	value, ok := r.parseResponseBody(tx)
	if !ok {
		return
	}
	pool, exists := st.responsePools[tx.Status]
	if !exists {
		pool = examples.NewPool()
		st.responsePools[tx.Status] = pool
	}
	if obj, isObj := value.(map[string]interface{}); isObj {
		if kind, isStr := obj["element"].(string); isStr {
			st.elementKind = kind
		}
	}
	if _, err := pool.Fold(value); err != nil {
		printer.Debugf("Dropping response example for %s %s: %v\n", tx.Method, tx.URL, err)
	}
}

func (r *Run) recordRequest(st *operationState, tx Transaction) {
	if tx.RequestBody == "" {
		return
	}
	// A failed request's body must not shape the canonical request schema.
	if tx.Status >= 400 {
		return
	}

	value, binary, ok := r.parseRequestBody(tx)
	if binary {
		if !st.requestPool.IsBinary() {
			st.requestPool.MarkBinary()
			st.op.RequestBody = binaryRequestBody()
		}
		return
	}
	if !ok {
		return
	}
	if _, err := st.requestPool.Fold(value); err != nil {
		printer.Debugf("Dropping request example for %s %s: %v\n", tx.Method, tx.URL, err)
	}
}

// binaryRequestBody is the fixed shape recorded for non-JSON uploads: a
// single opaque file property instead of per-call merging.
func binaryRequestBody() *spec.RequestBody {
	return &spec.RequestBody{
		Content: map[string]*spec.MediaType{
			"multipart/form-data": {
				Schema: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"file": map[string]interface{}{
							"type":   "string",
							"format": "binary",
						},
					},
				},
			},
		},
	}
}
