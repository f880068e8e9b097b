package rendering

import (
	"fmt"
	"strings"
)

// EscapeMode selects how substituted values are escaped.
type EscapeMode string

// Escape modes. EscapeNone is the default: outputs are plain text, JSON or
// TSV and values go in verbatim.
const (
	EscapeNone  EscapeMode = "none"
	EscapeHTML  EscapeMode = "html"
	EscapeLaTeX EscapeMode = "latex"
)

// ParseEscapeMode maps a flag value to an EscapeMode. Empty means EscapeNone.
func ParseEscapeMode(s string) (EscapeMode, error) {
	switch EscapeMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", EscapeNone:
		return EscapeNone, nil
	case EscapeHTML:
		return EscapeHTML, nil
	case EscapeLaTeX:
		return EscapeLaTeX, nil
	default:
		return "", fmt.Errorf("unknown escape mode %q (want none, html or latex)", s)
	}
}

// Special characters: \ { } $ & % # ^ _ ~
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeXText escapes special LaTeX characters in text
func EscapeLaTeXText(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}

// escapeValues returns a copy of v with every string leaf passed through fn.
// Maps and slices produced by Project are the only containers handled.
func escapeValues(v any, fn func(string) string) any {
	switch val := v.(type) {
	case string:
		return fn(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = escapeValues(item, fn)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(val))
		for i, item := range val {
			out[i] = escapeValues(item, fn).(map[string]any)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = escapeValues(item, fn)
		}
		return out
	default:
		return v
	}
}
