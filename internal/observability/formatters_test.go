package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hire3x/talent-match/internal/outreach"
	"github.com/hire3x/talent-match/internal/types"
)

func TestPrintJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobDescription{
		ID:              "job-1",
		Title:           "Senior Backend Engineer",
		Company:         "Acme Corp",
		Location:        "Berlin",
		ExperienceLevel: "Senior",
		RequiredSkills:  []string{"Go", "SQL", "Kubernetes"},
		Requirements:    []string{"5+ years of backend experience"},
	}

	p.PrintJob(job)
	output := buf.String()

	assert.Contains(t, output, "JOB DESCRIPTION")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "5+ years of backend experience")
}

func TestPrintJob_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJob(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJob_TruncatesLongSkillLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJob(&types.JobDescription{
		ID:              "job-1",
		Title:           "Engineer",
		Company:         "Acme",
		ExperienceLevel: "Mid-Level",
		RequiredSkills:  []string{"Go", "SQL", "Kafka", "Redis", "Docker", "Terraform", "AWS"},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := []types.CandidateMatch{
		{
			CandidateID:       "c1",
			CandidateName:     "Ada Lovelace",
			CurrentRole:       "Backend Engineer",
			YearsOfExperience: 6,
			OverallScore:      0.87,
			SimilarityScore:   0.8,
			MatchingSkills:    []string{"Go", "SQL"},
		},
	}

	p.PrintMatches(matches)
	output := buf.String()

	assert.Contains(t, output, "RANKED CANDIDATES")
	assert.Contains(t, output, "#1  Ada Lovelace")
	assert.Contains(t, output, "0.870")
	assert.Contains(t, output, "Go, SQL")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches(nil)

	assert.Contains(t, buf.String(), "No candidates matched")
}

func TestPrintFactors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFactors(&types.CandidateMatch{
		CandidateName: "Ada Lovelace",
		OverallScore:  0.9,
		RankingFactors: types.RankingFactors{
			Similarity:      0.8,
			SkillMatch:      1.0,
			ExperienceMatch: 1.2,
		},
	})
	output := buf.String()

	assert.Contains(t, output, "RANKING FACTORS")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "1.200")
}

func TestPrintEmail(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEmail(&outreach.Email{
		To:      "candidate@example.com",
		Subject: "Opportunity for Backend Engineer position at Acme",
		Body:    "Dear Ada,\n\nWe are hiring.\n",
	})
	output := buf.String()

	assert.Contains(t, output, "OUTREACH EMAIL")
	assert.Contains(t, output, "candidate@example.com")
	assert.Contains(t, output, "Dear Ada,")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
