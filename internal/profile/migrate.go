package profile

import (
	"strings"

	"github.com/jonathan/infofill/internal/types"
)

// Profile schema versions.
const (
	// VersionLegacy is any blob written before experiences were unified.
	VersionLegacy = 0
	// VersionExperiences stores education and work in one experiences list.
	VersionExperiences = 1

	CurrentVersion = VersionExperiences
)

// Upgrade brings a profile stored at version from up to CurrentVersion and
// returns the new version plus whether the caller should persist it.
//
// The legacy conversion only runs for blobs below VersionExperiences and
// only fills an empty experiences list, so it is safe to call repeatedly.
// Once stamped, a profile whose experiences were cleared by the user is not
// refilled from its legacy arrays.
func Upgrade(p *types.Profile, from int) (int, bool) {
	if p.Experiences == nil {
		p.Experiences = []types.Experience{}
	}
	if p.Family == nil {
		p.Family = []types.Family{}
	}

	if from >= CurrentVersion {
		return from, false
	}

	if from < VersionExperiences {
		MigrateLegacy(p)
	}
	return CurrentVersion, true
}

// MigrateLegacy synthesizes experiences from the legacy education and work
// arrays when experiences is empty. Education entries come first, then work.
// It reports whether any entries were added.
func MigrateLegacy(p *types.Profile) bool {
	if len(p.Experiences) > 0 {
		return false
	}
	if len(p.Education) == 0 && len(p.Work) == 0 {
		return false
	}

	out := make([]types.Experience, 0, len(p.Education)+len(p.Work))
	for _, edu := range p.Education {
		out = append(out, types.Experience{
			ID:        edu.ID,
			Type:      types.ExperienceEducation,
			Name:      joinFields(edu.School, edu.Major, edu.Degree),
			StartDate: edu.StartDate,
			EndDate:   edu.EndDate,
		})
	}
	for _, w := range p.Work {
		out = append(out, types.Experience{
			ID:        w.ID,
			Type:      types.ExperienceWork,
			Name:      joinFields(w.Company, w.Position, w.Description),
			StartDate: w.StartDate,
			EndDate:   w.EndDate,
		})
	}
	p.Experiences = out
	return true
}

// joinFields concatenates with single spaces, empty parts included, matching
// how the legacy form values were merged.
func joinFields(parts ...string) string {
	return strings.Join(parts, " ")
}
