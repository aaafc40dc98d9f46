package dispatch

import (
	"strings"

	"github.com/dmitrymomot/notifykit/engine"
)

// flagMarker prefixes trailing render params that are rule flags rather than
// engine input, e.g. "-no-assets".
const flagMarker = "-"

// isFlag reports whether a param has the flag-token shape: a string starting
// with the marker and carrying at least one name character.
func isFlag(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || len(s) < 2 || !strings.HasPrefix(s, flagMarker) {
		return "", false
	}
	return strings.TrimPrefix(s, flagMarker), true
}

// popFlags pops flag tokens off the end of the param list while they match
// the flag shape, and returns the resulting rule set plus the untouched
// leading params.
func popFlags(params []any) (engine.Rules, []any) {
	rules := engine.Rules{}

	end := len(params)
	for end > 0 {
		name, ok := isFlag(params[end-1])
		if !ok {
			break
		}
		rules[name] = true
		end--
	}

	return rules, params[:end]
}
