// Package types provides type definitions for structured data used throughout the talent-match system.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SalaryRange is an optional annual salary band on a job description.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// JobDescription is the immutable input to a match operation.
type JobDescription struct {
	ID                  string       `json:"id" validate:"required"`
	Title               string       `json:"title" validate:"required,min=1"`
	Company             string       `json:"company" validate:"required,min=1"`
	Location            string       `json:"location,omitempty"`
	RemoteOption        string       `json:"remote_option,omitempty"`
	Description         string       `json:"description" validate:"required"`
	Requirements        []string     `json:"requirements"`
	Responsibilities    []string     `json:"responsibilities"`
	RequiredSkills      []string     `json:"required_skills"`
	RequiredAssessments []string     `json:"required_assessments,omitempty"`
	MinAssessmentScore  float64      `json:"min_assessment_score,omitempty"`
	ExperienceLevel     string       `json:"experience_level" validate:"required"`
	EmploymentType      string       `json:"employment_type,omitempty"`
	SalaryRange         *SalaryRange `json:"salary_range,omitempty"`
}

// Validate validates the JobDescription using the validator.
// A job that fails validation must be rejected before any scoring happens.
func (j *JobDescription) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("invalid job description: %w", err)
	}
	if j.SalaryRange != nil && j.SalaryRange.Max < j.SalaryRange.Min {
		return fmt.Errorf("invalid job description: salary_range max %.0f below min %.0f",
			j.SalaryRange.Max, j.SalaryRange.Min)
	}
	return nil
}

// ToText converts the job description to a text representation for embedding.
func (j *JobDescription) ToText() string {
	parts := []string{
		fmt.Sprintf("Title: %s", j.Title),
		fmt.Sprintf("Company: %s", j.Company),
		fmt.Sprintf("Experience Level: %s", j.ExperienceLevel),
	}

	if j.EmploymentType != "" {
		parts = append(parts, fmt.Sprintf("Employment Type: %s", j.EmploymentType))
	}
	parts = append(parts, fmt.Sprintf("Description: %s", j.Description))

	if j.Location != "" {
		parts = append(parts, fmt.Sprintf("Location: %s", j.Location))
	}
	if j.RemoteOption != "" {
		parts = append(parts, fmt.Sprintf("Remote Option: %s", j.RemoteOption))
	}

	parts = append(parts, fmt.Sprintf("Required Skills: %s", strings.Join(j.RequiredSkills, ", ")))

	parts = append(parts, "Requirements:")
	for _, req := range j.Requirements {
		parts = append(parts, fmt.Sprintf("  - %s", req))
	}

	parts = append(parts, "Responsibilities:")
	for _, resp := range j.Responsibilities {
		parts = append(parts, fmt.Sprintf("  - %s", resp))
	}

	if len(j.RequiredAssessments) > 0 {
		parts = append(parts, "Required Assessments:")
		for _, a := range j.RequiredAssessments {
			parts = append(parts, fmt.Sprintf("  - %s", a))
		}
		if j.MinAssessmentScore > 0 {
			parts = append(parts, fmt.Sprintf("Minimum Assessment Score: %.0f/100", j.MinAssessmentScore))
		}
	}

	if j.SalaryRange != nil {
		parts = append(parts, fmt.Sprintf("Salary Range: $%.0f - $%.0f", j.SalaryRange.Min, j.SalaryRange.Max))
	}

	return strings.Join(parts, "\n")
}
