package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jonathan/infofill/internal/types"
	"gopkg.in/yaml.v3"
)

// library is the YAML document shape used by Export and Import.
type library struct {
	Templates []types.Template `yaml:"templates"`
}

// Export writes the whole library as YAML.
func (s *Store) Export(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(library{Templates: s.List()}); err != nil {
		return fmt.Errorf("failed to encode templates: %w", err)
	}
	return enc.Close()
}

// Import reads a YAML library and merges it by id: known ids are replaced in
// place, unknown or empty ids are appended. Every template is validated
// before anything is stored. It returns the number of templates merged.
func (s *Store) Import(ctx context.Context, r io.Reader) (int, error) {
	var doc library
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to decode templates: %w", err)
	}

	incoming := make([]types.Template, 0, len(doc.Templates))
	for i, t := range doc.Templates {
		if err := t.Validate(); err != nil {
			return 0, fmt.Errorf("template %d (%q): %w", i+1, t.Name, err)
		}
		t = t.Clone()
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		incoming = append(incoming, t)
	}

	err := s.mutate(ctx, func(list []types.Template) ([]types.Template, error) {
		for _, t := range incoming {
			if i := indexOf(list, t.ID); i >= 0 {
				list[i] = t
				continue
			}
			list = append(list, t)
		}
		return list, nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int("count", len(incoming)).Msg("templates imported")
	return len(incoming), nil
}
