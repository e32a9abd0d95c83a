// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hire3x/talent-match/internal/outreach"
	"github.com/hire3x/talent-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a human-readable summary of the job being matched.
func (p *Printer) PrintJob(job *types.JobDescription) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", job.ExperienceLevel))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
	}

	if len(job.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		count := min(len(job.Requirements), 3)
		for i := 0; i < count; i++ {
			req := job.Requirements[i]
			if len(req) > 50 {
				req = req[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", req))
		}
		if len(job.Requirements) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Requirements)-3))
		}
	}

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top ranked candidates with scores and matched skills.
func (p *Printer) PrintMatches(matches []types.CandidateMatch) {
	if len(matches) == 0 {
		p.printBox("RANKED CANDIDATES", "No candidates matched.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, match.CandidateName))
		sb.WriteString(fmt.Sprintf("    Score: %.3f (similarity %.3f)\n", match.OverallScore, match.SimilarityScore))
		sb.WriteString(fmt.Sprintf("    %s, %.1f years\n", match.CurrentRole, match.YearsOfExperience))
		if len(match.MatchingSkills) > 0 {
			skills := strings.Join(match.MatchingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(matches)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintFactors outputs the per-factor breakdown for one ranked candidate.
func (p *Printer) PrintFactors(match *types.CandidateMatch) {
	if match == nil {
		return
	}

	f := match.RankingFactors
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n\n", match.CandidateName))
	sb.WriteString(fmt.Sprintf("similarity              %.3f\n", f.Similarity))
	sb.WriteString(fmt.Sprintf("skill_match             %.3f\n", f.SkillMatch))
	sb.WriteString(fmt.Sprintf("role_match              %.3f\n", f.RoleMatch))
	sb.WriteString(fmt.Sprintf("experience_match        %.3f\n", f.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("skill_proficiency       %.3f\n", f.SkillProficiency))
	sb.WriteString(fmt.Sprintf("assessment_performance  %.3f\n", f.AssessmentPerformance))
	sb.WriteString(fmt.Sprintf("profile_completion      %.3f\n", f.ProfileCompletion))
	sb.WriteString(fmt.Sprintf("activity_score          %.3f\n", f.Activity))
	sb.WriteString(fmt.Sprintf("\noverall                 %.3f", match.OverallScore))

	p.printBox("RANKING FACTORS", sb.String())
}

// PrintEmail outputs a drafted outreach email.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEmail(email *outreach.Email) {
	if email == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("To:      %s\n", email.To))
	sb.WriteString(fmt.Sprintf("Subject: %s", email.Subject))
	p.printBox("OUTREACH EMAIL", sb.String())
	fmt.Fprintf(p.out, "%s\n", email.Body)
}
