package synth

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaypant119/har2openapi/config"
	"github.com/anaypant119/har2openapi/identity"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.APIBasePath = "api.x"
	cfg.PathReplace = []config.ReplaceRule{
		{Pattern: `/accounts/\d+/`, Replacement: `/accounts/{account_id}/`},
		{Pattern: `/health/`, Replacement: ``},
	}
	cfg.Tags = []identity.TagRule{{Keyword: "account"}}
	return cfg
}

func newTestRun(t *testing.T) *Run {
	t.Helper()
	r, err := NewRun(testConfig())
	require.NoError(t, err)
	return r
}

func parse(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func jsonGet(method, url string, status int, body string) Transaction {
	return Transaction{
		Method:              method,
		URL:                 url,
		Status:              status,
		ResponseBody:        body,
		ResponseContentType: "application/json",
	}
}

// Two captured URLs for the same logical resource collapse onto one
// operation with a shared response pool.
func TestRunCollapsesTemplatedPaths(t *testing.T) {
	r := newTestRun(t)
	r.Add(jsonGet("GET", "https://api.x/accounts/42/", 200, `{"id": 42, "name": "a"}`))
	r.Add(jsonGet("GET", "https://api.x/accounts/43/", 200, `{"id": 43, "name": "b", "extra": true}`))

	s := r.Spec()
	require.Len(t, s.Paths, 1)

	op := s.Operation("/accounts/{account_id}/", "get", false)
	require.NotNil(t, op)
	assert.Equal(t, "get-accounts-account_id", op.OperationID)
	assert.Equal(t, "Account details", op.Summary)
	assert.Equal(t, []string{"Account"}, op.Tags)
	require.Contains(t, op.Responses, "200")
	assert.Equal(t, "Success", op.Responses["200"].Description)

	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "account_id", op.Parameters[0].Name)
	assert.Equal(t, "path", op.Parameters[0].In)
	assert.True(t, op.Parameters[0].Required)

	st := r.state["/accounts/{account_id}/"][identity.GET]
	pool := st.responsePools[200]
	require.NotNil(t, pool)
	assert.Equal(t, 2, pool.Len())

	acc, ok := pool.Accumulator()
	require.True(t, ok)
	want := parse(t, `{"id": 43, "name": "b", "extra": true}`)
	if diff := cmp.Diff(want, acc); diff != "" {
		t.Errorf("accumulator mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "https://api.x/accounts/43/", st.lastSeenURL)
}

// A request body on a failed transaction must not feed the request pool.
func TestRunSkipsFailedRequestBody(t *testing.T) {
	r := newTestRun(t)
	r.Add(Transaction{
		Method:             "POST",
		URL:                "https://api.x/accounts/",
		RequestBody:        `{"name": "bad"}`,
		RequestContentType: "application/json",
		Status:             400,
	})

	st := r.state["/accounts/"][identity.POST]
	assert.Equal(t, 0, st.requestPool.Len())

	r.Add(Transaction{
		Method:             "POST",
		URL:                "https://api.x/accounts/",
		RequestBody:        `{"name": "good"}`,
		RequestContentType: "application/json",
		Status:             201,
	})
	assert.Equal(t, 1, st.requestPool.Len())
}

func TestRunBasePathFilter(t *testing.T) {
	r := newTestRun(t)
	r.Add(jsonGet("GET", "https://other.example.com/accounts/1/", 200, `{"id": 1, "name": "x"}`))

	assert.Empty(t, r.Spec().Paths)
	assert.Equal(t, 1, r.Skipped())
}

func TestRunDropRule(t *testing.T) {
	r := newTestRun(t)
	r.Add(jsonGet("GET", "https://api.x/health/", 200, `{"status": "ok", "uptime": 3}`))

	assert.Empty(t, r.Spec().Paths)
	assert.Equal(t, 1, r.Skipped())
}

func TestRunStripsDiagnosticsAndNearEmptyResponses(t *testing.T) {
	r := newTestRun(t)

	// After stripping the traceback only one key remains: not recorded.
	r.Add(jsonGet("GET", "https://api.x/accounts/1/", 500, `{"error": "boom", "traceback": "..."}`))
	st := r.state["/accounts/{account_id}/"][identity.GET]
	assert.Empty(t, st.responsePools)

	// Two keys survive stripping: recorded without the traceback.
	r.Add(jsonGet("GET", "https://api.x/accounts/1/", 500, `{"error": "boom", "code": 7, "traceback": "..."}`))
	pool := st.responsePools[500]
	require.NotNil(t, pool)
	require.Equal(t, 1, pool.Len())
	assert.Equal(t, parse(t, `{"error": "boom", "code": 7}`), pool.Examples()[0].Value)

	// 500 is outside the classification table: example recorded, but no
	// response description synthesized.
	assert.NotContains(t, st.op.Responses, "500")
}

func TestRunBinaryRequest(t *testing.T) {
	r := newTestRun(t)
	r.Add(Transaction{
		Method:             "POST",
		URL:                "https://api.x/accounts/1/avatar/",
		RequestBody:        "\x89PNG...",
		RequestContentType: "image/png",
		Status:             200,
	})

	op := r.Spec().Operation("/accounts/{account_id}/avatar/", "post", false)
	require.NotNil(t, op)
	require.NotNil(t, op.RequestBody)
	mt := op.RequestBody.Content["multipart/form-data"]
	require.NotNil(t, mt)

	schema := mt.Schema.(map[string]interface{})
	props := schema["properties"].(map[string]interface{})
	assert.Contains(t, props, "file")
}

func TestRunQueryParamsDeduped(t *testing.T) {
	r := newTestRun(t)
	tx := jsonGet("GET", "https://api.x/accounts/", 200, `{"page": 1, "items": []}`)
	tx.Query = []QueryParam{{Name: "page", Value: "1"}}
	r.Add(tx)
	tx.Query = []QueryParam{{Name: "page", Value: "2"}, {Name: "limit", Value: "10"}}
	r.Add(tx)

	op := r.Spec().Operation("/accounts/", "get", false)
	var queryNames []string
	for _, p := range op.Parameters {
		if p.In == "query" {
			queryNames = append(queryNames, p.Name)
		}
	}
	assert.Equal(t, []string{"page", "limit"}, queryNames)
}

func TestRunArtifacts(t *testing.T) {
	r := newTestRun(t)
	r.Add(jsonGet("GET", "https://api.x/accounts/7/", 200, `{"id": 7, "name": "n"}`))

	assert.Equal(t, []string{"/accounts/{account_id}/"}, r.PathTemplates())

	rows := r.OperationRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Account / /accounts/{account_id}/ / get / Account details", rows[0])

	sf := r.Samples()
	slots := sf["/accounts/{account_id}/"]["get"]
	require.NotNil(t, slots)
	assert.Nil(t, slots.Request)
	require.Contains(t, slots.Response, "200")
	assert.Contains(t, slots.Response["200"], "example-0001")
	assert.Contains(t, slots.Response["200"], "accumulator")
}

// A response carrying an element discriminator surfaces it in the debug
// rows.
func TestRunOperationRowsNoteElementKind(t *testing.T) {
	r := newTestRun(t)
	r.Add(jsonGet("GET", "https://api.x/accounts/7/", 200, `{"element": "dataset", "id": 7}`))

	rows := r.OperationRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Account / /accounts/{account_id}/ / get / Account details / element=dataset", rows[0])
}
