package synth

import (
	"encoding/json"

	"github.com/anaypant119/har2openapi/contenttype"
	"github.com/anaypant119/har2openapi/printer"
)

// parseResponseBody decodes a response body for folding. Diagnostic fields
// are stripped first; an object that degenerates to one or zero keys after
// stripping is not recorded, and neither are bare scalars or empty arrays,
// since near-null bodies only pollute schema inference. A body that fails to
// parse skips this example only.
func (r *Run) parseResponseBody(tx Transaction) (interface{}, bool) {
	if tx.ResponseBody == "" {
		return nil, false
	}
	if contenttype.Classify(tx.ResponseContentType) != contenttype.JSON {
		return nil, false
	}

	var value interface{}
	if err := json.Unmarshal([]byte(tx.ResponseBody), &value); err != nil {
		printer.Debugf("Skipping unparseable response body for %s %s: %v\n", tx.Method, tx.URL, err)
		return nil, false
	}

	switch v := value.(type) {
	case map[string]interface{}:
		stripped := r.stripDiagnostics(v)
		if len(stripped) <= 1 {
			return nil, false
		}
		return stripped, true
	case []interface{}:
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	default:
		return nil, false
	}
}

func (r *Run) stripDiagnostics(obj map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	for _, field := range r.cfg.StripResponseFields {
		delete(out, field)
	}
	return out
}

// parseRequestBody decodes a request body. binary reports that the payload
// is not textual JSON at all, in which case the caller records the fixed
// upload shape instead of folding.
func (r *Run) parseRequestBody(tx Transaction) (value interface{}, binary, ok bool) {
	switch contenttype.Classify(tx.RequestContentType) {
	case contenttype.JSON:
		if err := json.Unmarshal([]byte(tx.RequestBody), &value); err != nil {
			printer.Debugf("Skipping unparseable request body for %s %s: %v\n", tx.Method, tx.URL, err)
			return nil, false, false
		}
		return value, false, true
	case contenttype.Binary:
		return nil, true, false
	default:
		// Form and plain-text payloads are not candidates for JSON schema
		// inference.
		return nil, false, false
	}
}
