package validation

import (
	"regexp"
	"strings"
)

var (
	jsProtocolPattern   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)on\w+=`)
)

// SanitizeString strips markup and script-injection fragments from a value
// that will later be rendered as HTML. Defense in depth only; queries stay
// parameterized regardless. Runs the pass to a fixpoint so re-sanitizing is
// always a no-op.
func SanitizeString(s string) string {
	for {
		t := sanitizeOnce(s)
		if t == s {
			return s
		}
		s = t
	}
}

func sanitizeOnce(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = jsProtocolPattern.ReplaceAllString(s, "")
	s = eventHandlerPattern.ReplaceAllString(s, "")
	return s
}

// SanitizeMap sanitizes every string value in place. Non-string values pass
// through untouched. Must run before schema validation so the rules see
// cleaned input.
func SanitizeMap(in map[string]any) map[string]any {
	for k, v := range in {
		if s, ok := v.(string); ok {
			in[k] = SanitizeString(s)
		}
	}
	return in
}
