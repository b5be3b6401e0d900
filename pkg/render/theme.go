package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Chrome class tokens a theme manifest can override (under "forms.*").
const (
	chromeInputsClass = "inputs"
	chromeFormClass   = "formbuilder"
)

// chromeClass resolves a chrome class from theme tokens, falling back to the
// built-in name. Tokens are looked up as "forms.<token>Class".
func chromeClass(cfg *theme.RendererConfig, token, fallback string) string {
	if cfg == nil || len(cfg.Tokens) == 0 {
		return fallback
	}
	if value := strings.TrimSpace(cfg.Tokens["forms."+token+"Class"]); value != "" {
		return value
	}
	return fallback
}

// cssVarsStyle flattens theme CSS variables into an inline style payload,
// sorted for deterministic output.
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out strings.Builder
	for _, key := range keys {
		value := strings.TrimSpace(cfg.CSSVars[key])
		if value == "" {
			continue
		}
		out.WriteString(key)
		out.WriteString(": ")
		out.WriteString(value)
		out.WriteString("; ")
	}
	return strings.TrimSpace(out.String())
}
