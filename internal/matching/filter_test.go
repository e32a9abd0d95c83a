package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hire3x/talent-match/internal/store"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildFilter_NoConstraintsMeansNoPredicate(t *testing.T) {
	assert.Nil(t, BuildFilter(Options{}))
}

func TestBuildFilter_MinExperienceOnly(t *testing.T) {
	filter := BuildFilter(Options{MinExperience: floatPtr(5)})

	require.NotNil(t, filter)
	require.Len(t, filter.Clauses, 1)
	assert.Equal(t, store.Clause{Field: "years_of_experience", Op: store.OpGTE, Value: 5.0}, filter.Clauses[0])
}

func TestBuildFilter_AllConstraints(t *testing.T) {
	filter := BuildFilter(Options{
		MinExperience:      floatPtr(3),
		Location:           "Austin, TX",
		MinAssessmentScore: floatPtr(70),
	})

	require.NotNil(t, filter)
	require.Len(t, filter.Clauses, 3)
	assert.Equal(t, store.Clause{Field: "years_of_experience", Op: store.OpGTE, Value: 3.0}, filter.Clauses[0])
	assert.Equal(t, store.Clause{Field: "location", Op: store.OpEQ, Value: "Austin, TX"}, filter.Clauses[1])
	assert.Equal(t, store.Clause{Field: "avg_assessment_score", Op: store.OpGTE, Value: 70.0}, filter.Clauses[2])
}

func TestBuildFilter_ZeroMinExperienceIsStillAClause(t *testing.T) {
	filter := BuildFilter(Options{MinExperience: floatPtr(0)})

	require.NotNil(t, filter)
	require.Len(t, filter.Clauses, 1)
	assert.Equal(t, 0.0, filter.Clauses[0].Value)
}
