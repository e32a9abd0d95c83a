package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates_Count(t *testing.T) {
	candidates := New(1).Candidates(25)
	assert.Len(t, candidates, 25)
}

func TestCandidate_ProfileIsComplete(t *testing.T) {
	g := New(42)
	for i := 0; i < 50; i++ {
		c := g.Candidate()

		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.Contains(t, c.Email, "@example.com")
		assert.NotEmpty(t, c.Location)
		assert.NotEmpty(t, c.CurrentRole)
		assert.GreaterOrEqual(t, c.YearsOfExperience, 0.0)
		assert.NotEmpty(t, c.Education)
		assert.NotEmpty(t, c.Experience)
		assert.True(t, c.Experience[0].Current, "most recent job is the current one")

		require.NotEmpty(t, c.Skills)
		for skill, proficiency := range c.Skills {
			assert.NotEmpty(t, skill)
			assert.GreaterOrEqual(t, proficiency, 0.0)
			assert.LessOrEqual(t, proficiency, 1.0)
		}

		require.NotEmpty(t, c.Hire3x.Assessments)
		for _, a := range c.Hire3x.Assessments {
			assert.GreaterOrEqual(t, a.Score, 0.0)
			assert.LessOrEqual(t, a.Score, 100.0)
			assert.GreaterOrEqual(t, a.Accuracy, 0.0)
			assert.LessOrEqual(t, a.Accuracy, 1.0)
			assert.Greater(t, a.AllowedTime, 0)
			assert.LessOrEqual(t, a.CompletionRate, 1.0)
		}
		assert.GreaterOrEqual(t, c.Hire3x.ProfileCompletion, 60)
		assert.LessOrEqual(t, c.Hire3x.ProfileCompletion, 100)
	}
}

func TestCandidate_SeedDeterminesProfileContent(t *testing.T) {
	a := New(7).Candidate()
	b := New(7).Candidate()

	// IDs are random UUIDs, but everything drawn from the seeded source matches.
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.CurrentRole, b.CurrentRole)
	assert.Equal(t, a.Location, b.Location)
	assert.Equal(t, a.YearsOfExperience, b.YearsOfExperience)
	assert.Equal(t, a.Skills, b.Skills)
}

func TestCandidate_MetadataFeedsTheScorer(t *testing.T) {
	c := New(3).Candidate()
	metadata := c.Metadata()

	assert.Contains(t, metadata, "years_of_experience")
	assert.Contains(t, metadata, "skills")
	assert.Contains(t, metadata, "top_skills")
	assert.Contains(t, metadata, "avg_assessment_score")
}
