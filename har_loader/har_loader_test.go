package har_loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHAR(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleHAR = `{
  "log": {
    "version": "1.2",
    "entries": [
      {
        "request": {
          "method": "GET",
          "url": "https://api.x/accounts/1/",
          "queryString": [{"name": "page", "value": "2"}]
        },
        "response": {
          "status": 200,
          "content": {"mimeType": "application/json", "text": "{\"id\": 1}"}
        }
      }
    ]
  }
}`

func TestLoadCustomHARFromFile(t *testing.T) {
	harContent, err := LoadCustomHARFromFile(writeHAR(t, "capture.har", sampleHAR))
	require.NoError(t, err)

	require.NotNil(t, harContent.Log)
	require.Len(t, harContent.Log.Entries, 1)

	entry := harContent.Log.Entries[0]
	require.NotNil(t, entry.Request)
	assert.Equal(t, "GET", entry.Request.Method)
	assert.Equal(t, "https://api.x/accounts/1/", entry.Request.URL)
	require.Len(t, entry.Request.QueryString, 1)
	assert.Equal(t, "page", entry.Request.QueryString[0].Name)
	assert.Equal(t, "2", entry.Request.QueryString[0].Value)

	require.NotNil(t, entry.Response)
	assert.Equal(t, 200, entry.Response.Status)
	text, err := entry.Response.Content.DecodedText()
	require.NoError(t, err)
	assert.Equal(t, `{"id": 1}`, text)
}

func TestLoadCustomHARFromFileInvalidJSON(t *testing.T) {
	_, err := LoadCustomHARFromFile(writeHAR(t, "bad.har", `{"log": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read HAR file")
}

func TestLoadCustomHARFromFileMissingLog(t *testing.T) {
	_, err := LoadCustomHARFromFile(writeHAR(t, "nolog.har", `{"version": "1.2"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not contain log")
}

func TestLoadCustomHARFromFileMissingFile(t *testing.T) {
	_, err := LoadCustomHARFromFile(filepath.Join(t.TempDir(), "absent.har"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open HAR file")
}

func TestDecodedText(t *testing.T) {
	testCases := []struct {
		Name     string
		Content  *CustomContent
		Expected string
		WantErr  bool
	}{
		{
			Name:     "nil content",
			Content:  nil,
			Expected: "",
		},
		{
			Name:     "plain text",
			Content:  &CustomContent{Text: `{"a": 1}`},
			Expected: `{"a": 1}`,
		},
		{
			Name:     "base64 encoded",
			Content:  &CustomContent{Text: "eyJhIjogMX0=", Encoding: "base64"},
			Expected: `{"a": 1}`,
		},
		{
			Name:    "bad base64",
			Content: &CustomContent{Text: "%%%", Encoding: "base64"},
			WantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			text, err := tc.Content.DecodedText()
			if tc.WantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, text)
		})
	}
}
