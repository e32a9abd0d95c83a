package matching

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hire3x/talent-match/internal/types"
)

// defaultRequiredYears is assumed when no experience signal exists anywhere on
// the job.
const defaultRequiredYears = 2.0

// yearPatterns are tried in order against each requirement string. The range
// pattern comes first so "3-5 years" resolves to its lower bound instead of
// letting the bare pattern pick up the upper one.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*[-–]\s*\d+\s*years?`),
	regexp.MustCompile(`(?i)at least (\d+)\s*years?`),
	regexp.MustCompile(`(?i)minimum (\d+)\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?`),
}

// experienceLevels maps experience-level labels to implied years. Checked in
// order, first substring match wins.
var experienceLevels = []struct {
	label string
	years float64
}{
	{"entry level", 0},
	{"junior", 1},
	{"mid-level", 3},
	{"senior", 5},
	{"lead", 7},
	{"principal", 8},
	{"staff", 8},
	{"architect", 10},
	{"expert", 10},
}

// titleLevels is the last heuristic before the global default: seniority
// keywords in the job title itself.
var titleLevels = []struct {
	keyword string
	years   float64
}{
	{"senior", 5},
	{"junior", 1},
	{"lead", 7},
	{"principal", 7},
}

// resolutionStep is one link in the ordered fallback chain. Steps are tried in
// order and the first one that resolves wins; the precedence is part of the
// scoring contract because it feeds the experience-match denominator.
type resolutionStep struct {
	name    string
	resolve func(job *types.JobDescription) (float64, bool)
}

var resolutionSteps = []resolutionStep{
	{name: "requirements", resolve: yearsFromRequirements},
	{name: "experience_level", resolve: yearsFromExperienceLevel},
	{name: "title", resolve: yearsFromTitle},
}

// RequiredYears derives the implied minimum years of experience for a job.
// It is used only as the denominator of the experience-match factor, never as
// a hard filter.
func RequiredYears(job *types.JobDescription) float64 {
	for _, step := range resolutionSteps {
		if years, ok := step.resolve(job); ok {
			return years
		}
	}
	return defaultRequiredYears
}

// yearsFromRequirements scans requirement strings in order and returns the
// first captured year count.
func yearsFromRequirements(job *types.JobDescription) (float64, bool) {
	for _, requirement := range job.Requirements {
		for _, pattern := range yearPatterns {
			if m := pattern.FindStringSubmatch(requirement); m != nil {
				years, err := strconv.Atoi(m[1])
				if err != nil {
					continue
				}
				return float64(years), true
			}
		}
	}
	return 0, false
}

// yearsFromExperienceLevel maps the experience-level label through the fixed
// table.
func yearsFromExperienceLevel(job *types.JobDescription) (float64, bool) {
	level := strings.ToLower(job.ExperienceLevel)
	if level == "" {
		return 0, false
	}
	for _, entry := range experienceLevels {
		if strings.Contains(level, entry.label) {
			return entry.years, true
		}
	}
	return 0, false
}

// yearsFromTitle falls back to seniority keywords in the job title.
func yearsFromTitle(job *types.JobDescription) (float64, bool) {
	title := strings.ToLower(job.Title)
	for _, entry := range titleLevels {
		if strings.Contains(title, entry.keyword) {
			return entry.years, true
		}
	}
	return 0, false
}
