package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationID(t *testing.T) {
	testCases := []struct {
		Name     string
		Method   Method
		Template string
		Expected string
	}{
		{
			Name:     "template with trailing param",
			Method:   GET,
			Template: "/datasets/{dataset_id}/",
			Expected: "get-datasets-dataset_id",
		},
		{
			Name:     "nested template",
			Method:   POST,
			Template: "/datasets/{dataset_id}/rows/",
			Expected: "post-datasets-dataset_id-rows",
		},
		{
			Name:     "root",
			Method:   GET,
			Template: "/",
			Expected: "get",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, OperationID(tc.Method, tc.Template))

			// Identity must be stable across repeated derivation.
			assert.Equal(t, tc.Expected, OperationID(tc.Method, tc.Template))
		})
	}
}

func TestTagFirstMatchWins(t *testing.T) {
	rules := []TagRule{
		{Keyword: "billing", Display: "Billing"},
		{Keyword: "account"},
	}

	// The first matching rule wins even though a later rule also matches.
	assert.Equal(t, "Billing", Tag("/account/billing/{billing_id}/", rules))
}

func TestTag(t *testing.T) {
	rules := []TagRule{
		{Keyword: "dataset", Display: "Datasets"},
		{Keyword: "user"},
	}

	assert.Equal(t, "Datasets", Tag("/datasets/{dataset_id}/", rules))
	assert.Equal(t, "User", Tag("/users/", rules))
	assert.Equal(t, DefaultTag, Tag("/health/", rules))
}

func TestSummary(t *testing.T) {
	testCases := []struct {
		Name     string
		Method   Method
		Template string
		Expected string
	}{
		{
			Name:     "read single resource",
			Method:   GET,
			Template: "/accounts/{account_id}/",
			Expected: "Account details",
		},
		{
			Name:     "update single resource",
			Method:   PUT,
			Template: "/accounts/{account_id}/",
			Expected: "Update account",
		},
		{
			Name:     "patch behaves like update",
			Method:   PATCH,
			Template: "/accounts/{account_id}/",
			Expected: "Update account",
		},
		{
			Name:     "delete single resource",
			Method:   DELETE,
			Template: "/accounts/{account_id}/",
			Expected: "Delete account",
		},
		{
			Name:     "multi-word resource name",
			Method:   GET,
			Template: "/data_sources/{data_source_id}/",
			Expected: "Data Source details",
		},
		{
			Name:     "list collection",
			Method:   GET,
			Template: "/accounts/",
			Expected: "List accounts",
		},
		{
			Name:     "create on collection",
			Method:   POST,
			Template: "/accounts/",
			Expected: "Create accounts",
		},
		{
			Name:     "nested collection uses two segments",
			Method:   GET,
			Template: "/datasets/{dataset_id}/rows/",
			Expected: "List datasets rows",
		},
		{
			Name:     "login short circuits",
			Method:   POST,
			Template: "/auth/login/",
			Expected: "Log in",
		},
		{
			Name:     "logout short circuits",
			Method:   GET,
			Template: "/auth/logout/",
			Expected: "Log out",
		},
		{
			Name:     "empty template falls back to placeholder",
			Method:   GET,
			Template: "/",
			Expected: SummaryPlaceholder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := Summary(tc.Method, tc.Template)
			assert.Equal(t, tc.Expected, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestParseMethod(t *testing.T) {
	m, ok := ParseMethod("GET")
	assert.True(t, ok)
	assert.Equal(t, GET, m)

	_, ok = ParseMethod("CONNECT")
	assert.False(t, ok)
}
