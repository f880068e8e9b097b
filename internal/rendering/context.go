package rendering

import "github.com/jonathan/infofill/internal/types"

// Context keys visible to templates.
const (
	KeyBasic       = "basic"
	KeyExperiences = "experiences"
	KeyEducation   = "education"
	KeyWork        = "work"
	KeyFamily      = "family"
)

// Positional flags added to every list item.
const (
	FlagFirst        = "first"
	FlagLast         = "last"
	FlagIndex        = "index"
	FlagIndexPlusOne = "indexPlusOne"
)

// Context is the data a template is rendered against.
type Context map[string]any

// Project reshapes a profile into the structure templates address. Every
// list item carries first/last/index/indexPlusOne relative to its own list;
// education and work are filtered views of experiences, indexed on their own.
// The profile is not modified.
func Project(profile *types.Profile) Context {
	if profile == nil {
		profile = types.NewProfile()
	}

	basic := make(map[string]any)
	for k, v := range profile.Basic.Map() {
		basic[k] = v
	}

	all := make([]map[string]any, 0, len(profile.Experiences))
	education := make([]map[string]any, 0)
	work := make([]map[string]any, 0)
	for _, exp := range profile.Experiences {
		all = append(all, experienceFields(exp))
		switch exp.Type {
		case types.ExperienceEducation:
			education = append(education, experienceFields(exp))
		case types.ExperienceWork:
			work = append(work, experienceFields(exp))
		}
	}

	family := make([]map[string]any, 0, len(profile.Family))
	for _, f := range profile.Family {
		family = append(family, familyFields(f))
	}

	return Context{
		KeyBasic:       basic,
		KeyExperiences: annotate(all),
		KeyEducation:   annotate(education),
		KeyWork:        annotate(work),
		KeyFamily:      annotate(family),
	}
}

func annotate(items []map[string]any) []map[string]any {
	n := len(items)
	for i, item := range items {
		item[FlagFirst] = i == 0
		item[FlagLast] = i == n-1
		item[FlagIndex] = i
		item[FlagIndexPlusOne] = i + 1
	}
	return items
}

func experienceFields(e types.Experience) map[string]any {
	return map[string]any{
		"id":          e.ID,
		"type":        string(e.Type),
		"name":        e.Name,
		"role":        e.Role,
		"title":       e.Title,
		"startDate":   e.StartDate,
		"endDate":     e.EndDate,
		"location":    e.Location,
		"description": e.Description,
	}
}

func familyFields(f types.Family) map[string]any {
	return map[string]any{
		"id":       f.ID,
		"relation": f.Relation,
		"name":     f.Name,
		"company":  f.Company,
		"position": f.Position,
		"phone":    f.Phone,
	}
}
