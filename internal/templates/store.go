// Package templates owns the user's template library: built-in defaults,
// CRUD, persistence and YAML import/export.
package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/infofill/internal/schemas"
	"github.com/jonathan/infofill/internal/storage"
	"github.com/jonathan/infofill/internal/types"
	"github.com/rs/zerolog"
)

// StorageKey is the key the template library is persisted under.
const StorageKey = "template-storage"

// CurrentVersion is the template library schema version.
const CurrentVersion = 1

// ErrNotFound is returned when an id does not name a template in the library.
var ErrNotFound = errors.New("templates: template not found")

// LoadError represents an error reading or decoding the persisted library
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

type envelope struct {
	State   envelopeState `json:"state"`
	Version int           `json:"version"`
}

type envelopeState struct {
	Templates []types.Template `json:"templates"`
}

// Patch lists the template fields to overwrite. Nil fields are kept.
type Patch struct {
	Name    *string
	Type    *types.TemplateType
	Content *string
}

// Store is the only owner of the template library.
type Store struct {
	mu        sync.RWMutex
	kv        storage.Store
	templates []types.Template
	logger    zerolog.Logger
}

// Blank returns the empty shell a new template starts from.
func Blank() types.Template {
	return types.Template{
		Name:    "新模板",
		Type:    types.TemplateText,
		Mapping: map[string]string{},
	}
}

// Load rehydrates the library from kv. A missing blob yields the built-in defaults.
func Load(ctx context.Context, kv storage.Store, logger zerolog.Logger) (*Store, error) {
	s := &Store{kv: kv, logger: logger.With().Str("store", "templates").Logger()}

	data, err := kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		s.templates = Defaults()
		s.logger.Debug().Int("count", len(s.templates)).Msg("no stored templates, using defaults")
		return s, nil
	}
	if err != nil {
		return nil, &LoadError{Message: "failed to read stored templates", Cause: err}
	}

	if err := schemas.ValidateTemplates(data); err != nil {
		return nil, &LoadError{Message: "stored templates failed schema validation", Cause: err}
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal stored templates", Cause: err}
	}

	s.templates = normalize(env.State.Templates)
	return s, nil
}

func normalize(list []types.Template) []types.Template {
	out := make([]types.Template, 0, len(list))
	for _, t := range list {
		out = append(out, t.Clone())
	}
	return out
}

func (s *Store) persist(ctx context.Context, list []types.Template) error {
	data, err := json.Marshal(envelope{State: envelopeState{Templates: list}, Version: CurrentVersion})
	if err != nil {
		return fmt.Errorf("failed to marshal templates: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to persist templates: %w", err)
	}
	return nil
}

func (s *Store) mutate(ctx context.Context, fn func(list []types.Template) ([]types.Template, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(normalize(s.templates))
	if err != nil {
		return err
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.templates = next
	return nil
}

// List returns copies of all templates in library order.
func (s *Store) List() []types.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return normalize(s.templates)
}

// Get returns a copy of the template with the given id.
func (s *Store) Get(id string) (types.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.templates, id)
	if i < 0 {
		return types.Template{}, fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	return s.templates[i].Clone(), nil
}

// Add appends tmpl under a freshly generated id and returns the id.
func (s *Store) Add(ctx context.Context, tmpl types.Template) (string, error) {
	if err := tmpl.Validate(); err != nil {
		return "", fmt.Errorf("invalid template: %w", err)
	}
	tmpl = tmpl.Clone()
	tmpl.ID = uuid.NewString()

	err := s.mutate(ctx, func(list []types.Template) ([]types.Template, error) {
		return append(list, tmpl), nil
	})
	if err != nil {
		return "", err
	}
	s.logger.Debug().Str("template_id", tmpl.ID).Msg("template added")
	return tmpl.ID, nil
}

// Update applies patch to the template with the given id.
func (s *Store) Update(ctx context.Context, id string, patch Patch) error {
	return s.mutate(ctx, func(list []types.Template) ([]types.Template, error) {
		i := indexOf(list, id)
		if i < 0 {
			return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
		}
		updated := list[i]
		if patch.Name != nil {
			updated.Name = *patch.Name
		}
		if patch.Type != nil {
			updated.Type = *patch.Type
		}
		if patch.Content != nil {
			updated.Content = *patch.Content
		}
		if err := updated.Validate(); err != nil {
			return nil, fmt.Errorf("invalid template: %w", err)
		}
		list[i] = updated
		return list, nil
	})
}

// Remove deletes the template with the given id. Profile data is unaffected.
func (s *Store) Remove(ctx context.Context, id string) error {
	return s.mutate(ctx, func(list []types.Template) ([]types.Template, error) {
		i := indexOf(list, id)
		if i < 0 {
			return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
		}
		return append(list[:i], list[i+1:]...), nil
	})
}

// Reset replaces the library with the built-in defaults.
func (s *Store) Reset(ctx context.Context) error {
	return s.mutate(ctx, func([]types.Template) ([]types.Template, error) {
		return Defaults(), nil
	})
}

func indexOf(list []types.Template, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
