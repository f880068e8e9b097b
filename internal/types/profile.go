// Package types provides type definitions for structured data used throughout the infofill system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
)

// ExperienceType tags a timeline entry as education or work.
type ExperienceType string

// Experience kinds
const (
	ExperienceEducation ExperienceType = "education"
	ExperienceWork      ExperienceType = "work"
)

// Profile is the user's singleton biographical record.
type Profile struct {
	Basic       Basic        `json:"basic"`
	Experiences []Experience `json:"experiences"`
	Family      []Family     `json:"family"`

	// Legacy arrays, only read by the schema upgrade.
	Education []Education `json:"education,omitempty"`
	Work      []Work      `json:"work,omitempty"`
}

// Basic holds the identity section of a profile. Recognized keys live in
// fields; anything else a template might reference goes into Extra.
// On the wire both are encoded as one flat object.
type Basic struct {
	Name             string
	Gender           string
	IDNumber         string
	Phone            string
	Email            string `validate:"omitempty,email"`
	Address          string
	HouseholdAddress string
	Ethnicity        string
	BirthDate        string
	IDType           string

	Extra map[string]string
}

// Experience is a single education or work timeline entry.
type Experience struct {
	ID          string         `json:"id"`
	Type        ExperienceType `json:"type" validate:"required,oneof=education work"`
	Name        string         `json:"name"`
	Role        string         `json:"role,omitempty"`
	Title       string         `json:"title,omitempty"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Location    string         `json:"location,omitempty"`
	Description string         `json:"description,omitempty"`
}

// Family is a family member record.
type Family struct {
	ID       string `json:"id"`
	Relation string `json:"relation"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
}

// Education is the legacy education entry shape.
type Education struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Major     string `json:"major"`
	Degree    string `json:"degree"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Work is the legacy work entry shape.
type Work struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// NewProfile returns an empty profile with the recognized basic keys present.
func NewProfile() *Profile {
	return &Profile{
		Experiences: []Experience{},
		Family:      []Family{},
	}
}

// basicField binds a wire key to a Basic struct field.
type basicField struct {
	key      string
	field    string
	optional bool
	ptr      func(b *Basic) *string
}

var basicFields = []basicField{
	{key: "name", field: "Name", ptr: func(b *Basic) *string { return &b.Name }},
	{key: "gender", field: "Gender", ptr: func(b *Basic) *string { return &b.Gender }},
	{key: "idNumber", field: "IDNumber", ptr: func(b *Basic) *string { return &b.IDNumber }},
	{key: "phone", field: "Phone", ptr: func(b *Basic) *string { return &b.Phone }},
	{key: "email", field: "Email", ptr: func(b *Basic) *string { return &b.Email }},
	{key: "address", field: "Address", ptr: func(b *Basic) *string { return &b.Address }},
	{key: "householdAddress", field: "HouseholdAddress", optional: true, ptr: func(b *Basic) *string { return &b.HouseholdAddress }},
	{key: "ethnicity", field: "Ethnicity", optional: true, ptr: func(b *Basic) *string { return &b.Ethnicity }},
	{key: "birthDate", field: "BirthDate", optional: true, ptr: func(b *Basic) *string { return &b.BirthDate }},
	{key: "idType", field: "IDType", optional: true, ptr: func(b *Basic) *string { return &b.IDType }},
}

func lookupBasicField(key string) (basicField, bool) {
	for _, f := range basicFields {
		if f.key == key {
			return f, true
		}
	}
	return basicField{}, false
}

// BasicKeys returns the recognized basic keys in display order.
func BasicKeys() []string {
	keys := make([]string, 0, len(basicFields))
	for _, f := range basicFields {
		keys = append(keys, f.key)
	}
	return keys
}

// Get returns the value stored under key, recognized or extra.
func (b *Basic) Get(key string) string {
	if f, ok := lookupBasicField(key); ok {
		return *f.ptr(b)
	}
	return b.Extra[key]
}

// Set stores value under key. Unknown keys go to Extra.
func (b *Basic) Set(key, value string) {
	if f, ok := lookupBasicField(key); ok {
		*f.ptr(b) = value
		return
	}
	if b.Extra == nil {
		b.Extra = make(map[string]string)
	}
	b.Extra[key] = value
}

// Map flattens the basic section into a single key/value mapping. Required
// keys are always present; optional keys only when non-empty.
func (b Basic) Map() map[string]string {
	out := make(map[string]string, len(basicFields)+len(b.Extra))
	for k, v := range b.Extra {
		out[k] = v
	}
	for _, f := range basicFields {
		v := *f.ptr(&b)
		if f.optional && v == "" {
			continue
		}
		out[f.key] = v
	}
	return out
}

// ExtraKeys returns the sorted extension keys.
func (b Basic) ExtraKeys() []string {
	keys := make([]string, 0, len(b.Extra))
	for k := range b.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON encodes Basic as one flat object.
func (b Basic) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Map())
}

// UnmarshalJSON decodes a flat object, routing unknown keys into Extra.
func (b *Basic) UnmarshalJSON(data []byte) error {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Basic{}
	for k, v := range raw {
		if v == nil {
			continue
		}
		b.Set(k, *v)
	}
	return nil
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := &Profile{
		Basic:       p.Basic,
		Experiences: append([]Experience{}, p.Experiences...),
		Family:      append([]Family{}, p.Family...),
	}
	if p.Basic.Extra != nil {
		out.Basic.Extra = make(map[string]string, len(p.Basic.Extra))
		for k, v := range p.Basic.Extra {
			out.Basic.Extra[k] = v
		}
	}
	if p.Education != nil {
		out.Education = append([]Education{}, p.Education...)
	}
	if p.Work != nil {
		out.Work = append([]Work{}, p.Work...)
	}
	return out
}
