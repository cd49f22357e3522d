// Package normalize maps raw captured URL paths onto parameterized path
// templates. Normalization is driven entirely by an ordered list of
// pattern -> replacement rules from the pipeline configuration, so the same
// rule set applied to the same input always yields the same template.
package normalize

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Rule is one pattern -> replacement substitution. Patterns are applied in
// configuration order; a rule whose replacement is empty can be used to drop
// a path from the spec entirely.
type Rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// CompileRules compiles an ordered (pattern, replacement) list. Compilation
// failure of any pattern is a configuration error and fails the whole set.
func CompileRules(rules [][2]string) ([]Rule, error) {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r[0])
		if err != nil {
			return nil, errors.Wrapf(err, "bad path replacement pattern %q", r[0])
		}
		out = append(out, Rule{pattern: re, replacement: r[1]})
	}
	return out, nil
}

// Path applies every rule in order to the given path and returns the
// resulting template. An empty result means the path is excluded from the
// spec. Rules are expected to be written so that applying them to their own
// output is a no-op; templates containing {name} placeholders pass through
// untouched as long as no rule matches literal braces.
func Path(rawPath string, rules []Rule) string {
	p := rawPath
	for _, r := range rules {
		p = r.pattern.ReplaceAllString(p, r.replacement)
	}
	return p
}

var placeholderPattern = regexp.MustCompile(`\{([^{}/]+)\}`)

// PathParams returns the placeholder names in template order.
func PathParams(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	params := make([]string, 0, len(matches))
	for _, m := range matches {
		params = append(params, m[1])
	}
	return params
}

// ParamDescription returns the human-readable description for one path
// parameter. Names ending in "_id" are described in terms of the resource
// they identify; anything else gets a generic description.
func ParamDescription(name string) string {
	if resource, ok := strings.CutSuffix(name, "_id"); ok && resource != "" {
		return "Unique ID of the `" + resource + "` you are working with"
	}
	return "The `" + name + "` path parameter"
}
