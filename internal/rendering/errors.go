// Package rendering projects a profile into a template context and renders templates against it.
package rendering

import "fmt"

// ParseError represents a malformed template: unbalanced or unclosed
// sections, bad tag syntax.
type ParseError struct {
	TemplateID string
	Message    string
	Cause      error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template parse error (%s): %s: %v", e.TemplateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("template parse error (%s): %s", e.TemplateID, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// RenderError represents any other rendering failure
type RenderError struct {
	TemplateID string
	Message    string
	Cause      error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error (%s): %s: %v", e.TemplateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error (%s): %s", e.TemplateID, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
