// Package rest is the HTTP client layer for the optional remote schema
// inference service.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/anaypant119/har2openapi/cfg"
)

type BaseClient struct {
	baseURL   *url.URL
	authToken string
}

// NewBaseClient parses the service URL. HTTP is assumed when no scheme is
// given.
func NewBaseClient(rawURL string) (BaseClient, error) {
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return BaseClient{}, errors.Wrapf(err, "bad service URL %q", rawURL)
	}
	return BaseClient{
		baseURL:   u,
		authToken: cfg.GetInferenceServiceToken(),
	}, nil
}

// Post sends body as JSON and parses the response as JSON.
func (c BaseClient) Post(ctx context.Context, path string, body interface{}, resp interface{}) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request body into JSON")
	}

	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequest(http.MethodPost, u.String(), bytes.NewReader(bodyBytes))
	if err != nil {
		return errors.Wrap(err, "failed to create HTTP POST request")
	}
	req.Header.Set("content-type", "application/json")
	if c.authToken != "" {
		req.Header.Set("authorization", "Bearer "+c.authToken)
	}

	respContent, err := sendRequest(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(respContent, resp); err != nil {
		return errors.Wrap(err, "failed to unmarshal response body as JSON")
	}
	return nil
}
