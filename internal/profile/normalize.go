package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/infofill/internal/types"
)

// yearMonth matches dates such as 2020.9, 2020/09, 2020-9 and 2020年9月.
var yearMonth = regexp.MustCompile(`^(\d{4})\s*[-./年]\s*(\d{1,2})\s*月?$`)

// NormalizeDate rewrites common year-month spellings to YYYY-MM so that
// start dates order lexically. Anything else, including 至今, is returned
// trimmed but otherwise unchanged.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	m := yearMonth.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	month, err := strconv.Atoi(m[2])
	if err != nil || month < 1 || month > 12 {
		return s
	}
	return fmt.Sprintf("%s-%02d", m[1], month)
}

// NormalizeExperience trims every field, lowercases the type and normalizes
// both dates. A missing type defaults to education.
func NormalizeExperience(e types.Experience) types.Experience {
	e.Type = types.ExperienceType(strings.ToLower(strings.TrimSpace(string(e.Type))))
	if e.Type == "" {
		e.Type = types.ExperienceEducation
	}
	e.Name = strings.TrimSpace(e.Name)
	e.Role = strings.TrimSpace(e.Role)
	e.Title = strings.TrimSpace(e.Title)
	e.Location = strings.TrimSpace(e.Location)
	e.Description = strings.TrimSpace(e.Description)
	e.StartDate = NormalizeDate(e.StartDate)
	e.EndDate = NormalizeDate(e.EndDate)
	return e
}
