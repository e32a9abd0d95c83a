package matching

import (
	"fmt"
	"math"
	"strings"
)

// Profile names one of the fixed scoring-weight profiles.
type Profile string

const (
	ProfileDefault     Profile = "default"
	ProfileDataML      Profile = "data_ml"
	ProfileEngineering Profile = "engineering"
	ProfileLeadership  Profile = "leadership"
	ProfileDesign      Profile = "design"
)

// Weights assigns a blending weight to each of the eight ranking factors.
// Every profile's weights must sum to exactly 1.
type Weights struct {
	Similarity        float64
	SkillMatch        float64
	RoleMatch         float64
	Experience        float64
	SkillProficiency  float64
	Assessment        float64
	ProfileCompletion float64
	Activity          float64
}

// Sum returns the total of all eight weights.
func (w Weights) Sum() float64 {
	return w.Similarity + w.SkillMatch + w.RoleMatch + w.Experience +
		w.SkillProficiency + w.Assessment + w.ProfileCompletion + w.Activity
}

// profileWeights is the fixed lookup table of scoring profiles. Not
// user-configurable at request time; downstream weight tuning happens here.
var profileWeights = map[Profile]Weights{
	ProfileDefault: {
		Similarity:        0.15,
		SkillMatch:        0.20,
		RoleMatch:         0.15,
		Experience:        0.10,
		SkillProficiency:  0.10,
		Assessment:        0.15,
		ProfileCompletion: 0.05,
		Activity:          0.10,
	},
	// Data / ML / AI roles lean on demonstrated skills and assessments.
	ProfileDataML: {
		Similarity:        0.10,
		SkillMatch:        0.25,
		RoleMatch:         0.10,
		Experience:        0.10,
		SkillProficiency:  0.15,
		Assessment:        0.20,
		ProfileCompletion: 0.05,
		Activity:          0.05,
	},
	// Engineering keeps the balanced default distribution.
	ProfileEngineering: {
		Similarity:        0.15,
		SkillMatch:        0.20,
		RoleMatch:         0.15,
		Experience:        0.10,
		SkillProficiency:  0.10,
		Assessment:        0.15,
		ProfileCompletion: 0.05,
		Activity:          0.10,
	},
	// Leadership roles weight track record over raw skills.
	ProfileLeadership: {
		Similarity:        0.10,
		SkillMatch:        0.15,
		RoleMatch:         0.20,
		Experience:        0.20,
		SkillProficiency:  0.10,
		Assessment:        0.10,
		ProfileCompletion: 0.05,
		Activity:          0.10,
	},
	// Design roles weight skills and proficiency.
	ProfileDesign: {
		Similarity:        0.15,
		SkillMatch:        0.25,
		RoleMatch:         0.10,
		Experience:        0.10,
		SkillProficiency:  0.15,
		Assessment:        0.10,
		ProfileCompletion: 0.05,
		Activity:          0.10,
	},
}

// profileSelectors maps title keywords to profiles, checked in precedence
// order; the first profile with a matching keyword wins.
var profileSelectors = []struct {
	profile  Profile
	keywords []string
}{
	{ProfileDataML, []string{"data scientist", "machine learning", "ml", "ai ", "artificial intelligence"}},
	{ProfileEngineering, []string{"engineer", "developer", "programmer", "coder"}},
	{ProfileLeadership, []string{"lead", "manager", "director", "head", "chief", "architect"}},
	{ProfileDesign, []string{"designer", "ui", "ux", "user interface", "user experience"}},
}

// SelectProfile picks the weight profile for a job title by case-insensitive
// substring match, in fixed precedence order.
func SelectProfile(title string) Profile {
	lower := strings.ToLower(title)
	for _, selector := range profileSelectors {
		for _, keyword := range selector.keywords {
			if strings.Contains(lower, keyword) {
				return selector.profile
			}
		}
	}
	return ProfileDefault
}

// WeightsFor returns the weights of a profile, falling back to the default
// profile for unknown names.
func WeightsFor(profile Profile) Weights {
	if w, ok := profileWeights[profile]; ok {
		return w
	}
	return profileWeights[ProfileDefault]
}

// ValidateProfiles verifies that every profile's weights sum to 1. Called at
// matcher construction so a bad table fails fast instead of mid-scoring.
func ValidateProfiles() error {
	for profile, w := range profileWeights {
		if math.Abs(w.Sum()-1.0) > 1e-9 {
			return &ConfigError{Reason: fmt.Sprintf("profile %q weights sum to %.12f, want 1.0", profile, w.Sum())}
		}
	}
	return nil
}
