package har_loader

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"time"

	"github.com/google/martian/v3/har"
	"github.com/pkg/errors"
)

// Custom HAR loader to bypass type differences between martian/v3/har and
// browser output: Chrome writes response content text as a plain string,
// optionally base64-encoded, where martian expects raw bytes. Only the
// fields the pipeline consumes are declared.

type CustomHAR struct {
	Log *CustomHARLog `json:"log"`
}

type CustomHARLog struct {
	Version string           `json:"version"`
	Creator *har.Creator     `json:"creator"`
	Entries []CustomHAREntry `json:"entries"`
	Comment string           `json:"comment"`
}

type CustomHAREntry struct {
	StartedDateTime time.Time       `json:"startedDateTime"`
	Request         *CustomRequest  `json:"request"`
	Response        *CustomResponse `json:"response"`
	Comment         string          `json:"comment"`
}

type CustomRequest struct {
	Method      string            `json:"method"`
	URL         string            `json:"url"`
	QueryString []har.QueryString `json:"queryString"`
	PostData    *har.PostData     `json:"postData"`
	BodySize    int64             `json:"bodySize"`
}

type CustomResponse struct {
	Status   int            `json:"status"`
	Content  *CustomContent `json:"content"`
	BodySize int64          `json:"bodySize"`
}

type CustomContent struct {
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding"`
}

// DecodedText returns the content text with any transport encoding removed.
func (c *CustomContent) DecodedText() (string, error) {
	if c == nil {
		return "", nil
	}
	if c.Encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(c.Text)
		if err != nil {
			return "", errors.Wrap(err, "failed to decode base64 response content")
		}
		return string(decoded), nil
	}
	return c.Text, nil
}

// LoadCustomHARFromFile parses one capture file. A file that is not valid
// JSON or lacks the log section is a fatal input error.
func LoadCustomHARFromFile(path string) (CustomHAR, error) {
	var harContent CustomHAR

	f, err := os.Open(path)
	if err != nil {
		return harContent, errors.Wrap(err, "failed to open HAR file")
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(&harContent); err != nil {
		return harContent, errors.Wrap(err, "failed to read HAR file")
	}
	if harContent.Log == nil {
		return harContent, errors.Errorf("HAR file does not contain log")
	}

	return harContent, nil
}
