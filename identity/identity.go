// Package identity derives stable documentation metadata for an operation:
// its operation id, a best-effort human summary, and a category tag. All
// derivations are pure functions of (method, path template), so identity
// never depends on the order in which traffic was captured.
package identity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Method is a lowercase HTTP method that can carry documented operations.
type Method string

const (
	GET    Method = "get"
	POST   Method = "post"
	PUT    Method = "put"
	PATCH  Method = "patch"
	DELETE Method = "delete"
)

// Methods lists every method the pipeline documents, in output order.
var Methods = []Method{GET, POST, PUT, PATCH, DELETE}

// ParseMethod maps a wire-format method ("GET", "Post") onto a Method.
func ParseMethod(s string) (Method, bool) {
	m := Method(strings.ToLower(s))
	switch m {
	case GET, POST, PUT, PATCH, DELETE:
		return m, true
	}
	return "", false
}

// DefaultTag is assigned when no tag rule matches a path template.
const DefaultTag = "Other"

// SummaryPlaceholder is returned when the summary heuristic has nothing to
// work with; it is meant to be spotted and replaced during review.
const SummaryPlaceholder = "FIXME: describe this operation"

// TagRule matches a keyword against the path template. Display overrides the
// rendered tag name; when empty the keyword is title-cased.
type TagRule struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Display string `json:"display,omitempty" yaml:"display,omitempty"`
}

var titleCaser = cases.Title(language.English)

// Tag returns the tag for a path template: the first rule whose keyword is a
// substring of the template wins, regardless of whether a later rule would
// match more of the path. No match falls back to DefaultTag.
func Tag(template string, rules []TagRule) string {
	for _, r := range rules {
		if strings.Contains(template, r.Keyword) {
			if r.Display != "" {
				return r.Display
			}
			return titleCaser.String(r.Keyword)
		}
	}
	return DefaultTag
}

// OperationID derives the stable operation id for (method, template):
// strip surrounding slashes and brace characters, then join the remaining
// segments with hyphens behind the method. get + /datasets/{dataset_id}/
// becomes get-datasets-dataset_id.
func OperationID(method Method, template string) string {
	id := strings.Trim(template, "/")
	id = strings.ReplaceAll(id, "{", "")
	id = strings.ReplaceAll(id, "}", "")
	id = strings.ReplaceAll(id, "/", "-")
	if id == "" {
		return string(method)
	}
	return string(method) + "-" + id
}

// Summary produces a human-readable one-liner for the operation. The
// heuristic prefers "resource by id" phrasing when the template ends in an
// id-style placeholder, special-cases login/logout, and otherwise composes a
// generic verb + collection phrase from the trailing literal segments. It
// always returns a non-empty string.
func Summary(method Method, template string) string {
	segs := splitSegments(template)
	if len(segs) == 0 {
		return SummaryPlaceholder
	}

	switch segs[len(segs)-1] {
	case "login":
		return "Log in"
	case "logout":
		return "Log out"
	}

	if name, ok := placeholderName(segs[len(segs)-1]); ok {
		if resource, isID := strings.CutSuffix(name, "_id"); isID && resource != "" {
			return resourcePhrase(method, humanize(resource))
		}
	}

	literals := literalSegments(segs)
	if len(literals) == 0 {
		return SummaryPlaceholder
	}
	if len(literals) > 2 {
		literals = literals[len(literals)-2:]
	}
	phrase := humanize(strings.Join(literals, " "))
	phrase = pluralize(phrase)

	switch method {
	case GET:
		return "List " + phrase
	case POST:
		return "Create " + phrase
	case PUT, PATCH:
		return "Update " + phrase
	case DELETE:
		return "Delete " + phrase
	}
	return SummaryPlaceholder
}

func resourcePhrase(method Method, resource string) string {
	switch method {
	case GET:
		return titleCaser.String(resource) + " details"
	case POST:
		return "Create " + resource
	case PUT, PATCH:
		return "Update " + resource
	case DELETE:
		return "Delete " + resource
	}
	return SummaryPlaceholder
}

func splitSegments(template string) []string {
	parts := strings.Split(template, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

func placeholderName(seg string) (string, bool) {
	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}

func literalSegments(segs []string) []string {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		if _, isParam := placeholderName(s); !isParam {
			out = append(out, s)
		}
	}
	return out
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func pluralize(s string) string {
	if strings.HasSuffix(s, "s") {
		return s
	}
	return s + "s"
}
