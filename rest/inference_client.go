package rest

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/anaypant119/har2openapi/inference"
)

// InferenceClient implements inference.Inferencer against a remote service
// that accepts a named sample set and returns a JSON-Schema-shaped object.
type InferenceClient struct {
	BaseClient
}

func NewInferenceClient(rawURL string) (*InferenceClient, error) {
	base, err := NewBaseClient(rawURL)
	if err != nil {
		return nil, err
	}
	return &InferenceClient{BaseClient: base}, nil
}

type inferRequest struct {
	Name    string            `json:"name"`
	Samples []json.RawMessage `json:"samples"`
}

type inferResponse struct {
	Schema inference.Schema `json:"schema"`
}

func (c *InferenceClient) Infer(ctx context.Context, name string, samples []string) (inference.Schema, error) {
	req := inferRequest{Name: name, Samples: make([]json.RawMessage, 0, len(samples))}
	for _, s := range samples {
		req.Samples = append(req.Samples, json.RawMessage(s))
	}

	var resp inferResponse
	if err := c.Post(ctx, "/v1/infer", req, &resp); err != nil {
		return nil, errors.Wrapf(err, "remote schema inference failed for %s", name)
	}
	if resp.Schema == nil {
		return nil, errors.Errorf("inference service returned no schema for %s", name)
	}
	return resp.Schema, nil
}
