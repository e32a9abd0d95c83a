package types

import (
	"fmt"
	"sort"
	"strings"
)

// Education is one entry in a candidate's education history.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"field_of_study"`
	GraduationYear int    `json:"graduation_year,omitempty"`
}

// WorkExperience is one entry in a candidate's employment history.
type WorkExperience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	SkillsUsed   []string `json:"skills_used"`
	Achievements []string `json:"achievements,omitempty"`
}

// Assessment holds the result of one Hire3x platform assessment.
type Assessment struct {
	AssessmentID    string   `json:"assessment_id"`
	Name            string   `json:"name"`
	Score           float64  `json:"score"`      // 0-100
	Percentile      float64  `json:"percentile"` // vs other test takers
	SkillsEvaluated []string `json:"skills_evaluated"`
	CompletionTime  int      `json:"completion_time"` // minutes
	AllowedTime     int      `json:"allowed_time"`    // minutes
	CompletionRate  float64  `json:"completion_rate"` // completion_time / allowed_time
	Accuracy        float64  `json:"accuracy"`        // 0-1
	TakenDate       string   `json:"taken_date"`      // YYYY-MM-DD
}

// Hire3xData aggregates a candidate's platform activity.
type Hire3xData struct {
	JoinedDate        string       `json:"joined_date"`
	ProfileCompletion int          `json:"profile_completion"` // percent 0-100
	ActivityScore     int          `json:"activity_score"`     // percent 0-100
	Assessments       []Assessment `json:"assessments"`
}

// CandidateProfile is the full candidate record as ingested into the store.
type CandidateProfile struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	LinkedinURL       string             `json:"linkedin_url,omitempty"`
	GithubURL         string             `json:"github_url,omitempty"`
	PortfolioURL      string             `json:"portfolio_url,omitempty"`
	Location          string             `json:"location"`
	Headline          string             `json:"headline"`
	Summary           string             `json:"summary"`
	CurrentRole       string             `json:"current_role"`
	YearsOfExperience float64            `json:"years_of_experience"`
	Education         []Education        `json:"education,omitempty"`
	Experience        []WorkExperience   `json:"experience,omitempty"`
	Skills            map[string]float64 `json:"skills"` // skill name -> proficiency 0-1
	Hire3x            Hire3xData         `json:"hire3x_data"`
	DesiredRole       string             `json:"desired_role,omitempty"`
}

// topSkillCount is the number of highest-proficiency skills flattened into metadata.
const topSkillCount = 5

// SkillNames returns the candidate's skill names in alphabetical order.
func (c *CandidateProfile) SkillNames() []string {
	names := make([]string, 0, len(c.Skills))
	for name := range c.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TopSkills returns up to topSkillCount skill names sorted by proficiency, highest first.
// Ties break alphabetically so the result is deterministic.
func (c *CandidateProfile) TopSkills() []string {
	names := c.SkillNames()
	sort.SliceStable(names, func(i, j int) bool {
		return c.Skills[names[i]] > c.Skills[names[j]]
	})
	if len(names) > topSkillCount {
		names = names[:topSkillCount]
	}
	return names
}

// ToText converts the candidate profile to a text representation for embedding.
func (c *CandidateProfile) ToText() string {
	parts := []string{
		fmt.Sprintf("Name: %s", c.Name),
		fmt.Sprintf("Headline: %s", c.Headline),
		fmt.Sprintf("Summary: %s", c.Summary),
		fmt.Sprintf("Current Role: %s", c.CurrentRole),
		fmt.Sprintf("Skills: %s", strings.Join(c.SkillNames(), ", ")),
		fmt.Sprintf("Years of Experience: %g", c.YearsOfExperience),
		fmt.Sprintf("Location: %s", c.Location),
	}
	if c.DesiredRole != "" {
		parts = append(parts, fmt.Sprintf("Desired Role: %s", c.DesiredRole))
	}

	if len(c.Education) > 0 {
		parts = append(parts, "Education:")
		for _, edu := range c.Education {
			entry := fmt.Sprintf("  %s in %s from %s", edu.Degree, edu.FieldOfStudy, edu.Institution)
			if edu.GraduationYear > 0 {
				entry += fmt.Sprintf(", %d", edu.GraduationYear)
			}
			parts = append(parts, entry)
		}
	}

	if len(c.Experience) > 0 {
		parts = append(parts, "Work Experience:")
		for _, exp := range c.Experience {
			current := ""
			if exp.Current {
				current = " (Current)"
			}
			parts = append(parts, fmt.Sprintf("  %s at %s%s", exp.Role, exp.Company, current))
			parts = append(parts, fmt.Sprintf("  Description: %s", exp.Description))
			parts = append(parts, fmt.Sprintf("  Skills Used: %s", strings.Join(exp.SkillsUsed, ", ")))
		}
	}

	if len(c.Hire3x.Assessments) > 0 {
		parts = append(parts, "Assessments:")
		for _, a := range c.Hire3x.Assessments {
			parts = append(parts, fmt.Sprintf("  %s: Score %.0f/100, %.0fth percentile", a.Name, a.Score, a.Percentile))
			parts = append(parts, fmt.Sprintf("  Skills Evaluated: %s", strings.Join(a.SkillsEvaluated, ", ")))
		}
	}

	return strings.Join(parts, "\n")
}

// Metadata flattens the profile into the key/value map stored alongside its
// embedding. All list-valued fields are comma-joined strings and all metrics are
// pre-averaged, so the scorer never needs the full profile.
func (c *CandidateProfile) Metadata() map[string]any {
	metadata := map[string]any{
		"name":                c.Name,
		"years_of_experience": c.YearsOfExperience,
		"location":            c.Location,
		"headline":            c.Headline,
		"current_role":        c.CurrentRole,
		"skills":              strings.Join(c.SkillNames(), ","),
		"top_skills":          strings.Join(c.TopSkills(), ","),
		"github_url":          c.GithubURL,
		"linkedin_url":        c.LinkedinURL,
		"portfolio_url":       c.PortfolioURL,

		"hire3x_profile_completion": float64(c.Hire3x.ProfileCompletion),
		"hire3x_activity_score":     float64(c.Hire3x.ActivityScore),
	}

	if n := len(c.Hire3x.Assessments); n > 0 {
		var score, percentile, completion, accuracy float64
		names := make([]string, 0, n)
		for _, a := range c.Hire3x.Assessments {
			score += a.Score
			percentile += a.Percentile
			completion += a.CompletionRate
			accuracy += a.Accuracy
			names = append(names, a.Name)
		}
		metadata["avg_assessment_score"] = score / float64(n)
		metadata["avg_assessment_percentile"] = percentile / float64(n)
		metadata["avg_completion_rate"] = completion / float64(n)
		metadata["avg_accuracy"] = accuracy / float64(n)
		metadata["assessment_names"] = strings.Join(names, ",")
	}

	return metadata
}
