package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/infofill/internal/schemas"
	"github.com/jonathan/infofill/internal/storage"
	"github.com/jonathan/infofill/internal/types"
	"github.com/rs/zerolog"
)

// StorageKey is the key the profile blob is persisted under.
const StorageKey = "profile-storage"

// envelope is the persisted shape: {"state":{"profile":{...}},"version":N}.
type envelope struct {
	State   envelopeState `json:"state"`
	Version int           `json:"version"`
}

type envelopeState struct {
	Profile *types.Profile `json:"profile"`
}

// ExperiencePatch lists the experience fields to overwrite. Nil fields are kept.
type ExperiencePatch struct {
	Type        *types.ExperienceType
	Name        *string
	Role        *string
	Title       *string
	StartDate   *string
	EndDate     *string
	Location    *string
	Description *string
}

// FamilyPatch lists the family fields to overwrite. Nil fields are kept.
type FamilyPatch struct {
	Relation *string
	Name     *string
	Company  *string
	Position *string
	Phone    *string
}

// Store is the only owner of the profile. Mutations are serialized and
// persisted before they become visible; readers get deep copies.
type Store struct {
	mu      sync.RWMutex
	kv      storage.Store
	profile *types.Profile
	logger  zerolog.Logger
}

// Load rehydrates the profile from kv, applying the schema upgrade once. A
// missing blob yields an empty profile.
func Load(ctx context.Context, kv storage.Store, logger zerolog.Logger) (*Store, error) {
	s := &Store{kv: kv, logger: logger.With().Str("store", "profile").Logger()}

	data, err := kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		s.profile = types.NewProfile()
		s.logger.Debug().Msg("no stored profile, starting empty")
		return s, nil
	}
	if err != nil {
		return nil, &LoadError{Message: "failed to read stored profile", Cause: err}
	}

	p, version, err := decode(data)
	if err != nil {
		return nil, err
	}

	newVersion, changed := Upgrade(p, version)
	for i := range p.Experiences {
		if p.Experiences[i].Type == "" {
			p.Experiences[i].Type = types.ExperienceEducation
		}
	}
	s.profile = p
	if changed {
		s.logger.Info().Int("from", version).Int("to", newVersion).Msg("upgraded stored profile")
		if err := s.persist(ctx, p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func decode(data []byte) (*types.Profile, int, error) {
	if err := schemas.ValidateProfile(data); err != nil {
		return nil, 0, &LoadError{Message: "stored profile failed schema validation", Cause: err}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, 0, &LoadError{Message: "failed to unmarshal stored profile", Cause: err}
	}
	if env.State.Profile == nil {
		env.State.Profile = types.NewProfile()
	}
	return env.State.Profile, env.Version, nil
}

func (s *Store) persist(ctx context.Context, p *types.Profile) error {
	data, err := json.Marshal(envelope{State: envelopeState{Profile: p}, Version: CurrentVersion})
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	return nil
}

// mutate applies fn to a copy of the profile, persists the copy and swaps it
// in. A failing fn or persist leaves the current profile unchanged.
func (s *Store) mutate(ctx context.Context, fn func(p *types.Profile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.profile.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.profile = next
	return nil
}

// Snapshot returns a deep copy of the current profile.
func (s *Store) Snapshot() *types.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// UpdateBasic merges patch into the basic section. Unknown keys are kept as
// extension fields. Only the patched keys are validated, so a value stored
// earlier never blocks edits to other keys.
func (s *Store) UpdateBasic(ctx context.Context, patch map[string]string) error {
	return s.mutate(ctx, func(p *types.Profile) error {
		keys := make([]string, 0, len(patch))
		for k, v := range patch {
			p.Basic.Set(k, v)
			keys = append(keys, k)
		}
		if err := p.Basic.ValidateKeys(keys...); err != nil {
			return fmt.Errorf("invalid basic info: %w", err)
		}
		return nil
	})
}

// AddExperience appends exp with a freshly generated id and returns the id.
func (s *Store) AddExperience(ctx context.Context, exp types.Experience) (string, error) {
	if err := exp.Validate(); err != nil {
		return "", fmt.Errorf("invalid experience: %w", err)
	}
	exp.ID = uuid.NewString()

	err := s.mutate(ctx, func(p *types.Profile) error {
		p.Experiences = append(p.Experiences, exp)
		return nil
	})
	if err != nil {
		return "", err
	}
	s.logger.Debug().Str("id", exp.ID).Str("type", string(exp.Type)).Msg("experience added")
	return exp.ID, nil
}

// UpdateExperience applies patch to the experience with the given id.
func (s *Store) UpdateExperience(ctx context.Context, id string, patch ExperiencePatch) error {
	return s.mutate(ctx, func(p *types.Profile) error {
		i := indexOfExperience(p.Experiences, id)
		if i < 0 {
			return fmt.Errorf("experience %s: %w", id, ErrNotFound)
		}
		updated := p.Experiences[i]
		patch.apply(&updated)
		if err := updated.Validate(); err != nil {
			return fmt.Errorf("invalid experience: %w", err)
		}
		p.Experiences[i] = updated
		return nil
	})
}

// RemoveExperience deletes the experience with the given id, keeping the
// order of the rest.
func (s *Store) RemoveExperience(ctx context.Context, id string) error {
	return s.mutate(ctx, func(p *types.Profile) error {
		i := indexOfExperience(p.Experiences, id)
		if i < 0 {
			return fmt.Errorf("experience %s: %w", id, ErrNotFound)
		}
		p.Experiences = append(p.Experiences[:i], p.Experiences[i+1:]...)
		return nil
	})
}

// AddFamily appends a family member with a freshly generated id and returns the id.
func (s *Store) AddFamily(ctx context.Context, member types.Family) (string, error) {
	member.ID = uuid.NewString()
	err := s.mutate(ctx, func(p *types.Profile) error {
		p.Family = append(p.Family, member)
		return nil
	})
	if err != nil {
		return "", err
	}
	return member.ID, nil
}

// UpdateFamily applies patch to the family member with the given id.
func (s *Store) UpdateFamily(ctx context.Context, id string, patch FamilyPatch) error {
	return s.mutate(ctx, func(p *types.Profile) error {
		i := indexOfFamily(p.Family, id)
		if i < 0 {
			return fmt.Errorf("family member %s: %w", id, ErrNotFound)
		}
		patch.apply(&p.Family[i])
		return nil
	})
}

// RemoveFamily deletes the family member with the given id.
func (s *Store) RemoveFamily(ctx context.Context, id string) error {
	return s.mutate(ctx, func(p *types.Profile) error {
		i := indexOfFamily(p.Family, id)
		if i < 0 {
			return fmt.Errorf("family member %s: %w", id, ErrNotFound)
		}
		p.Family = append(p.Family[:i], p.Family[i+1:]...)
		return nil
	})
}

// SortedExperiences returns experiences ordered by start date for display.
// Storage order is not changed. Entries without a start date go last.
func (s *Store) SortedExperiences() []types.Experience {
	out := s.Snapshot().Experiences
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].StartDate, out[j].StartDate
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})
	return out
}

func indexOfExperience(list []types.Experience, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfFamily(list []types.Family, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func (p ExperiencePatch) apply(e *types.Experience) {
	if p.Type != nil {
		e.Type = *p.Type
	}
	setIf(&e.Name, p.Name)
	setIf(&e.Role, p.Role)
	setIf(&e.Title, p.Title)
	setIf(&e.StartDate, p.StartDate)
	setIf(&e.EndDate, p.EndDate)
	setIf(&e.Location, p.Location)
	setIf(&e.Description, p.Description)
}

func (p FamilyPatch) apply(f *types.Family) {
	setIf(&f.Relation, p.Relation)
	setIf(&f.Name, p.Name)
	setIf(&f.Company, p.Company)
	setIf(&f.Position, p.Position)
	setIf(&f.Phone, p.Phone)
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
