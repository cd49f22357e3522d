package synth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaypant119/har2openapi/identity"
)

// One good entry, one without a request section, one whose response content
// claims base64 but is not.
const mixedHAR = `{
  "log": {
    "version": "1.2",
    "entries": [
      {
        "request": {"method": "GET", "url": "https://api.x/accounts/42/"},
        "response": {
          "status": 200,
          "content": {"mimeType": "application/json", "text": "{\"id\": 42, \"name\": \"a\"}"}
        }
      },
      {
        "response": {
          "status": 200,
          "content": {"mimeType": "application/json", "text": "{}"}
        }
      },
      {
        "request": {"method": "GET", "url": "https://api.x/accounts/43/"},
        "response": {
          "status": 200,
          "content": {"mimeType": "application/json", "text": "%%%", "encoding": "base64"}
        }
      }
    ]
  }
}`

func writeCapture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.har")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Entries with problems are skipped; the rest of the file still feeds the
// run.
func TestProcessHARFileToleratesBadEntries(t *testing.T) {
	r := newTestRun(t)
	require.NoError(t, r.ProcessHARFile(writeCapture(t, mixedHAR)))

	op := r.Spec().Operation("/accounts/{account_id}/", "get", false)
	require.NotNil(t, op)

	st := r.state["/accounts/{account_id}/"][identity.GET]
	require.NotNil(t, st)
	assert.Equal(t, 1, st.responsePools[200].Len())
	assert.Equal(t, "https://api.x/accounts/42/", st.lastSeenURL)
}

func TestProcessHARFileMalformedFileFailsRun(t *testing.T) {
	r := newTestRun(t)
	err := r.ProcessHARFile(writeCapture(t, `not a har file`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load HAR file")
}
