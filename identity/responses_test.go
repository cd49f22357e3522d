package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyResponse(t *testing.T) {
	testCases := []struct {
		Name     string
		Status   int
		Method   Method
		Expected string
	}{
		{Name: "200 get", Status: 200, Method: GET, Expected: "Success"},
		{Name: "200 post", Status: 200, Method: POST, Expected: "Item created"},
		{Name: "400 delete is special cased", Status: 400, Method: DELETE, Expected: "Deletion failed - item in use"},
		{Name: "400 post", Status: 400, Method: POST, Expected: "Bad request"},
		{Name: "401 any method", Status: 401, Method: PATCH, Expected: "Unauthorized"},
		{Name: "404", Status: 404, Method: GET, Expected: "Item not found"},
		{Name: "405", Status: 405, Method: PUT, Expected: "Method not allowed"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			desc, ok := ClassifyResponse(tc.Status, tc.Method).Get()
			assert.True(t, ok)
			assert.Equal(t, tc.Expected, desc)
		})
	}
}

func TestClassifyResponseNoEntry(t *testing.T) {
	for _, tc := range []struct {
		Status int
		Method Method
	}{
		{Status: 500, Method: GET},
		{Status: 201, Method: GET},
		{Status: 204, Method: POST},
		{Status: 418, Method: DELETE},
	} {
		_, ok := ClassifyResponse(tc.Status, tc.Method).Get()
		assert.False(t, ok, "expected no entry for %d %s", tc.Status, tc.Method)
	}
}
