package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	hintPolicyOnce sync.Once
	hintPolicy     *bluemonday.Policy
)

// sanitizeHint strips everything but harmless inline markup from a
// caller-supplied hint so rich help text can pass through without opening an
// injection hole.
func sanitizeHint(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := strings.TrimSpace(hintSanitizer().Sanitize(trimmed))
	return cleaned
}

func hintSanitizer() *bluemonday.Policy {
	hintPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("a", "abbr", "b", "code", "em", "i", "kbd", "small", "strong", "sub", "sup")
		policy.AllowAttrs("href", "rel", "target").OnElements("a")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.RequireNoFollowOnLinks(true)
		hintPolicy = policy
	})
	return hintPolicy
}
