package spec

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specWithServer() *Spec {
	s := New("Test API")
	s.Servers = []Server{{URL: "https://internal.example.com/api"}}
	op := s.Operation("/accounts/", "get", true)
	op.OperationID = "get-accounts"
	return s
}

// The configured substitutions rewrite the serialized document in both
// output formats.
func TestMarshalAppliesSubstitutions(t *testing.T) {
	subs := []Substitution{{From: "internal.example.com", To: "api.example.com"}}

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			buf, err := Marshal(specWithServer(), format, subs)
			require.NoError(t, err)
			assert.Contains(t, string(buf), "api.example.com")
			assert.NotContains(t, string(buf), "internal.example.com")
		})
	}
}

func TestMarshalRejectsUnknownFormat(t *testing.T) {
	_, err := Marshal(New("x"), "toml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported spec format")
}

func TestWriteFileReadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	subs := []Substitution{{From: "internal.", To: "public."}}
	require.NoError(t, WriteFile(path, specWithServer(), "yaml", subs))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Servers, 1)
	assert.Equal(t, "https://public.example.com/api", loaded.Servers[0].URL)
	require.NotNil(t, loaded.Operation("/accounts/", "get", false))
}
