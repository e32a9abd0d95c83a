package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhere_NoFilter(t *testing.T) {
	where, args, err := buildWhere(nil)

	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildWhere_SingleGTE(t *testing.T) {
	filter := (&Filter{}).GTE("years_of_experience", 5)

	where, args, err := buildWhere(filter)

	require.NoError(t, err)
	assert.Equal(t, " WHERE 1=1 AND (metadata->>'years_of_experience')::double precision >= $1", where)
	assert.Equal(t, []any{5.0}, args)
}

func TestBuildWhere_CombinedClauses(t *testing.T) {
	filter := (&Filter{}).
		GTE("years_of_experience", 3).
		EQ("location", "Austin, TX").
		GTE("avg_assessment_score", 70)

	where, args, err := buildWhere(filter)

	require.NoError(t, err)
	assert.Contains(t, where, "(metadata->>'years_of_experience')::double precision >= $1")
	assert.Contains(t, where, "metadata->>'location' = $2")
	assert.Contains(t, where, "(metadata->>'avg_assessment_score')::double precision >= $3")
	assert.Equal(t, []any{3.0, "Austin, TX", 70.0}, args)
}

func TestBuildWhere_RejectsBadFieldName(t *testing.T) {
	filter := (&Filter{}).EQ("location'; DROP TABLE candidates;--", "x")

	_, _, err := buildWhere(filter)

	assert.Error(t, err)
}

func TestBuildWhere_RejectsUnknownOperator(t *testing.T) {
	filter := &Filter{Clauses: []Clause{{Field: "location", Op: "$lt", Value: 1.0}}}

	_, _, err := buildWhere(filter)

	assert.Error(t, err)
}

func TestCosineDistance_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, 0.5, 0.1}
	assert.InDelta(t, 0.0, CosineDistance(v, v), 1e-6)
}

func TestCosineDistance_OrthogonalVectors(t *testing.T) {
	assert.InDelta(t, 1.0, CosineDistance([]float32{1, 0}, []float32{0, 1}), 1e-6)
}

func TestCosineDistance_OppositeVectors(t *testing.T) {
	assert.InDelta(t, 2.0, CosineDistance([]float32{1, 0}, []float32{-1, 0}), 1e-6)
}

func TestCosineDistance_ZeroOrMismatchedVectors(t *testing.T) {
	assert.Equal(t, 1.0, CosineDistance(nil, nil))
	assert.Equal(t, 1.0, CosineDistance([]float32{1, 2}, []float32{1}))
	assert.Equal(t, 1.0, CosineDistance([]float32{0, 0}, []float32{1, 1}))
}
