package types

// TemplateType labels a template's output format. It does not change how a
// template is rendered.
type TemplateType string

// Template output formats
const (
	TemplateText  TemplateType = "text"
	TemplateJSON  TemplateType = "json"
	TemplateTable TemplateType = "table"
)

// Template is a reusable document body authored by the user.
type Template struct {
	ID      string            `json:"id" yaml:"id"`
	Name    string            `json:"name" yaml:"name" validate:"required"`
	Type    TemplateType      `json:"type" yaml:"type" validate:"required,oneof=text json table"`
	Content string            `json:"content" yaml:"content"`
	Mapping map[string]string `json:"mapping" yaml:"mapping,omitempty"`
}

// Label returns a human readable name for the template type.
func (t TemplateType) Label() string {
	switch t {
	case TemplateJSON:
		return "JSON"
	case TemplateTable:
		return "Table (CSV/TSV)"
	default:
		return "Text"
	}
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	out := t
	out.Mapping = make(map[string]string, len(t.Mapping))
	for k, v := range t.Mapping {
		out.Mapping[k] = v
	}
	return out
}
