package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/anaypant119/har2openapi/printer"
)

const defaultClientTimeout = 30 * time.Second

var (
	// Shared client to maximize connection re-use.
	httpClient *retryablehttp.Client

	initHTTPClientOnce sync.Once
)

// Error type for non-2xx HTTP errors.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (he HTTPError) Error() string {
	return fmt.Sprintf("inference service returned status code %d: %s", he.StatusCode, he.Body)
}

// Implements retryablehttp LeveledLogger interface using printer.
type printerLogger struct{}

func (printerLogger) Error(f string, args ...interface{}) {
	printer.Errorln(f, args)
}

func (printerLogger) Info(f string, args ...interface{}) {
	printer.Infoln(f, args)
}

func (printerLogger) Debug(f string, args ...interface{}) {
	printer.Debugln(f, args)
}

func (printerLogger) Warn(f string, args ...interface{}) {
	printer.Warningln(f, args)
}

func initHTTPClient() {
	httpClient = retryablehttp.NewClient()
	httpClient.HTTPClient.Timeout = defaultClientTimeout
	httpClient.RetryMax = 3
	httpClient.Logger = printerLogger{}
}

func sendRequest(ctx context.Context, req *http.Request) ([]byte, error) {
	initHTTPClientOnce.Do(initHTTPClient)

	retryableReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create retryable HTTP request")
	}

	resp, err := httpClient.Do(retryableReq.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, HTTPError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
