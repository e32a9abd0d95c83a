package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCandidate() *CandidateProfile {
	return &CandidateProfile{
		ID:                "cand_001",
		Name:              "Michael Rodriguez",
		Location:          "Austin, TX",
		Headline:          "Full Stack Developer",
		Summary:           "Builds web applications end to end.",
		CurrentRole:       "Senior Full Stack Developer",
		YearsOfExperience: 6.5,
		Skills: map[string]float64{
			"JavaScript": 0.95,
			"React":      0.9,
			"Node.js":    0.85,
			"AWS":        0.7,
			"Python":     0.6,
			"SQL":        0.5,
		},
		Hire3x: Hire3xData{
			ProfileCompletion: 90,
			ActivityScore:     75,
			Assessments: []Assessment{
				{Name: "JavaScript Mastery", Score: 92, Percentile: 95, CompletionRate: 0.6, Accuracy: 0.9},
				{Name: "React Deep Dive", Score: 88, Percentile: 90, CompletionRate: 0.8, Accuracy: 0.8},
			},
		},
	}
}

func TestTopSkills_SortedByProficiency(t *testing.T) {
	c := sampleCandidate()

	top := c.TopSkills()

	require.Len(t, top, 5)
	assert.Equal(t, []string{"JavaScript", "React", "Node.js", "AWS", "Python"}, top)
}

func TestTopSkills_FewerThanFive(t *testing.T) {
	c := sampleCandidate()
	c.Skills = map[string]float64{"Go": 0.9, "SQL": 0.5}

	assert.Equal(t, []string{"Go", "SQL"}, c.TopSkills())
}

func TestMetadata_FlattensSkillsAndAverages(t *testing.T) {
	c := sampleCandidate()

	m := c.Metadata()

	assert.Equal(t, "AWS,JavaScript,Node.js,Python,React,SQL", m["skills"])
	assert.Equal(t, "JavaScript,React,Node.js,AWS,Python", m["top_skills"])
	assert.Equal(t, 6.5, m["years_of_experience"])
	assert.InDelta(t, 90.0, m["avg_assessment_score"], 1e-9)
	assert.InDelta(t, 0.7, m["avg_completion_rate"], 1e-9)
	assert.InDelta(t, 0.85, m["avg_accuracy"], 1e-9)
	assert.Equal(t, "JavaScript Mastery,React Deep Dive", m["assessment_names"])
	assert.Equal(t, 90.0, m["hire3x_profile_completion"])
	assert.Equal(t, 75.0, m["hire3x_activity_score"])
}

func TestMetadata_NoAssessments(t *testing.T) {
	c := sampleCandidate()
	c.Hire3x.Assessments = nil

	m := c.Metadata()

	_, hasScore := m["avg_assessment_score"]
	assert.False(t, hasScore)
	_, hasNames := m["assessment_names"]
	assert.False(t, hasNames)
}

func TestToText_ContainsProfileSections(t *testing.T) {
	c := sampleCandidate()
	c.Experience = []WorkExperience{
		{Company: "TechInnovate", Role: "Senior Full Stack Developer", Current: true, Description: "Web platform work", SkillsUsed: []string{"React", "Node.js"}},
	}

	text := c.ToText()

	assert.Contains(t, text, "Name: Michael Rodriguez")
	assert.Contains(t, text, "Current Role: Senior Full Stack Developer")
	assert.Contains(t, text, "Senior Full Stack Developer at TechInnovate (Current)")
	assert.Contains(t, text, "JavaScript Mastery: Score 92/100, 95th percentile")
}
