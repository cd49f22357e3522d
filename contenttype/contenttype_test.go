package contenttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		ContentType string
		Expected    Category
	}{
		{"application/json", JSON},
		{"application/json; charset=utf-8", JSON},
		{"application/vnd.api+json", JSON},
		{"application/x-www-form-urlencoded", Form},
		{"text/plain", Text},
		{"application/xml", Text},
		{"image/png", Binary},
		{"application/octet-stream", Binary},
		{"multipart/form-data; boundary=xyz", Binary},
		{"", Binary},
		{"garbage;;;", Binary},
	}

	for _, tc := range testCases {
		t.Run(tc.ContentType, func(t *testing.T) {
			assert.Equal(t, tc.Expected, Classify(tc.ContentType))
		})
	}
}
