// Package outreach generates recruiter outreach emails for matched candidates.
package outreach

import (
	"strings"
	"text/template"

	"github.com/hire3x/talent-match/internal/types"
)

// maxHighlightedSkills caps how many matching skills the email calls out.
const maxHighlightedSkills = 3

// maxListedRequirements caps how many job requirements the email lists.
const maxListedRequirements = 3

// placeholderRecipient stands in until candidate contact details are wired to
// a real address book.
const placeholderRecipient = "candidate@example.com"

// Email is a ready-to-send outreach message for one matched candidate.
type Email struct {
	To      string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// templateData is the view passed to the body template.
type templateData struct {
	CandidateName string
	JobTitle      string
	Company       string
	Skills        string
	Requirements  []string
}

var bodyTemplate = template.Must(template.New("outreach").Parse(`Dear {{.CandidateName}},

I hope this email finds you well. I'm reaching out because we are impressed with your background and experience{{if .Skills}}, particularly your skills in {{.Skills}}{{end}}.

We are currently looking for a {{.JobTitle}} at {{.Company}} and believe your profile would be a great fit for this role.
{{if .Requirements}}
Here's a brief overview of what we're looking for:
{{range .Requirements}}- {{.}}
{{end}}{{end}}
Would you be interested in discussing this opportunity further? If so, please let me know your availability for a brief call in the coming days.

Looking forward to your response.

Best regards,
[Your Name]
Hiring Manager
{{.Company}}
`))

// Generate builds an outreach email for a matched candidate. The subject names
// the role and company; the body highlights the candidate's matching skills and
// the job's leading requirements.
func Generate(match *types.CandidateMatch, job *types.JobDescription) (*Email, error) {
	skills := match.MatchingSkills
	if len(skills) > maxHighlightedSkills {
		skills = skills[:maxHighlightedSkills]
	}
	requirements := job.Requirements
	if len(requirements) > maxListedRequirements {
		requirements = requirements[:maxListedRequirements]
	}

	name := match.CandidateName
	if name == "" {
		name = "Candidate"
	}

	data := templateData{
		CandidateName: name,
		JobTitle:      job.Title,
		Company:       job.Company,
		Skills:        strings.Join(skills, ", "),
		Requirements:  requirements,
	}

	var body strings.Builder
	if err := bodyTemplate.Execute(&body, data); err != nil {
		return nil, &TemplateError{Message: "failed to render outreach email", Cause: err}
	}

	return &Email{
		To:      placeholderRecipient,
		Subject: "Opportunity for " + job.Title + " position at " + job.Company,
		Body:    body.String(),
	}, nil
}
