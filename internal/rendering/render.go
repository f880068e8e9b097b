package rendering

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cbroglie/mustache"
	"github.com/jonathan/infofill/internal/types"
	"github.com/rs/zerolog"
)

// GenerationFailedMessage is shown in place of output when rendering fails.
const GenerationFailedMessage = "generation failed, check template format"

// ErrInvalidJSONOutput is returned by CheckOutput when a json template
// renders something that does not parse as JSON.
var ErrInvalidJSONOutput = errors.New("rendered output is not valid JSON")

// Options configures a single Render call. The zero value renders values
// verbatim.
type Options struct {
	Escape EscapeMode
}

// Render projects profile and renders tmpl.Content against it.
//
// Escaping is decided per call: EscapeNone and EscapeLaTeX parse the
// template in raw mode, EscapeHTML uses the engine's HTML escaping. No
// package-level engine state is changed, so concurrent renders with
// different options do not interfere.
func Render(profile *types.Profile, tmpl types.Template, opts Options) (string, error) {
	ctx := Project(profile)
	return RenderContext(tmpl, ctx, opts)
}

// RenderContext renders tmpl against an already projected context.
func RenderContext(tmpl types.Template, ctx Context, opts Options) (string, error) {
	mode := opts.Escape
	if mode == "" {
		mode = EscapeNone
	}

	var data any = map[string]any(ctx)
	switch mode {
	case EscapeNone, EscapeHTML:
	case EscapeLaTeX:
		data = escapeValues(data, EscapeLaTeXText)
	default:
		return "", &RenderError{
			TemplateID: tmpl.ID,
			Message:    fmt.Sprintf("unsupported escape mode %q", mode),
		}
	}

	forceRaw := mode != EscapeHTML
	compiled, err := mustache.ParseStringRaw(tmpl.Content, forceRaw)
	if err != nil {
		return "", &ParseError{
			TemplateID: tmpl.ID,
			Message:    "failed to parse template",
			Cause:      err,
		}
	}

	out, err := compiled.Render(data)
	if err != nil {
		return "", &RenderError{
			TemplateID: tmpl.ID,
			Message:    "failed to execute template",
			Cause:      err,
		}
	}
	return out, nil
}

// Generate is the display boundary: it returns the rendered output, or logs
// the failure and returns GenerationFailedMessage together with the cause.
func Generate(profile *types.Profile, tmpl types.Template, opts Options, logger zerolog.Logger) (string, error) {
	out, err := Render(profile, tmpl, opts)
	if err != nil {
		var parseErr *ParseError
		kind := "unknown"
		if errors.As(err, &parseErr) {
			kind = "parse"
		}
		logger.Error().
			Err(err).
			Str("template_id", tmpl.ID).
			Str("kind", kind).
			Msg("generation failed")
		return GenerationFailedMessage, err
	}
	return out, nil
}

// CheckOutput verifies that output suits the template's declared format.
// Only json templates are checked; text and table output always pass.
func CheckOutput(tmpl types.Template, output string) error {
	if tmpl.Type != types.TemplateJSON {
		return nil
	}
	if !json.Valid([]byte(output)) {
		return fmt.Errorf("template %s: %w", tmpl.ID, ErrInvalidJSONOutput)
	}
	return nil
}
