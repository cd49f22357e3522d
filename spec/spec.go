// Package spec holds the OpenAPI-shaped specification document the pipeline
// builds: paths -> methods -> operations. The tree is an explicit owned
// value; a synthesis or reconciliation run constructs one, mutates it for
// the duration of the run, and hands it back.
package spec

import (
	"sort"

	"golang.org/x/exp/maps"
)

const OpenAPIVersion = "3.0.1"

type Spec struct {
	OpenAPI    string      `json:"openapi,omitempty"`
	Info       *Info       `json:"info,omitempty"`
	Servers    []Server    `json:"servers,omitempty"`
	Paths      Paths       `json:"paths"`
	Components *Components `json:"components,omitempty"`
}

type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

type Server struct {
	URL string `json:"url"`
}

type Components struct {
	Schemas map[string]interface{} `json:"schemas,omitempty"`
}

// Paths maps a path template to its methods. Methods are lowercase.
type Paths map[string]PathItem

type PathItem map[string]*Operation

type Operation struct {
	OperationID string               `json:"operationId,omitempty"`
	Summary     string               `json:"summary,omitempty"`
	Tags        []string             `json:"tags,omitempty"`
	Parameters  []Parameter          `json:"parameters,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses,omitempty"`
}

type Parameter struct {
	Name        string      `json:"name"`
	In          string      `json:"in"`
	Description string      `json:"description,omitempty"`
	Required    bool        `json:"required,omitempty"`
	Schema      interface{} `json:"schema,omitempty"`
}

type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

type MediaType struct {
	Schema   interface{}               `json:"schema,omitempty"`
	Examples map[string]*ExampleObject `json:"examples,omitempty"`
}

type ExampleObject struct {
	Value interface{} `json:"value"`
}

// New returns an empty specification shell for the given API title.
func New(title string) *Spec {
	return &Spec{
		OpenAPI: OpenAPIVersion,
		Info: &Info{
			Title:   title,
			Version: "1.0.0",
		},
		Paths: make(Paths),
	}
}

// Operation returns the operation at (path, method), creating intermediate
// nodes as needed when create is set.
func (s *Spec) Operation(path, method string, create bool) *Operation {
	item, ok := s.Paths[path]
	if !ok {
		if !create {
			return nil
		}
		item = make(PathItem)
		s.Paths[path] = item
	}
	op, ok := item[method]
	if !ok {
		if !create {
			return nil
		}
		op = &Operation{}
		item[method] = op
	}
	return op
}

// SortedPaths returns the path templates in lexicographic order for
// deterministic iteration and output.
func (s *Spec) SortedPaths() []string {
	paths := maps.Keys(s.Paths)
	sort.Strings(paths)
	return paths
}

// SortedMethods returns a path item's methods in lexicographic order.
func (pi PathItem) SortedMethods() []string {
	methods := maps.Keys(pi)
	sort.Strings(methods)
	return methods
}
