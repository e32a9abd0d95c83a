package matching

import (
	"math"
	"strings"

	"github.com/hire3x/talent-match/internal/store"
	"github.com/hire3x/talent-match/internal/types"
)

// experienceMatchCap bounds the experience factor: surplus experience helps,
// but only up to 1.5x the requirement.
const experienceMatchCap = 1.5

// Weights of the assessment-performance composite.
const (
	assessmentScoreWeight      = 0.4
	completionEfficiencyWeight = 0.2
	accuracyWeight             = 0.3
	assessmentRelevanceWeight  = 0.1
)

// neutralScore is the prior used when a factor has no signal to work with
// (no required skills, no role keywords in the title). The value is a
// calibration convention the weight profiles were tuned against.
const neutralScore = 0.5

// roleKeywords is the fixed vocabulary of tech-role terms recognized in job
// titles and candidate role text.
var roleKeywords = []string{
	"developer", "engineer", "architect", "scientist", "analyst", "designer",
	"manager", "lead", "administrator", "specialist", "consultant",
	"devops", "frontend", "backend", "fullstack", "full stack", "full-stack",
	"mobile", "ios", "android", "web", "cloud", "security", "data",
	"machine learning", "ml", "ai", "artificial intelligence", "ui", "ux",
	"qa", "quality", "test", "automation", "database", "dba",
}

// ExtractRoleKeywords returns the role vocabulary terms present in the job
// title, in vocabulary order.
func ExtractRoleKeywords(title string) []string {
	lower := strings.ToLower(title)
	var found []string
	for _, keyword := range roleKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// scoreHit computes the eight ranking factors for one retrieval hit and blends
// them into a CandidateMatch. Any error means the hit's metadata is unusable
// and the caller must skip it.
func scoreHit(job *types.JobDescription, hit store.Hit, requiredYears float64, weights Weights, titleKeywords []string) (*types.CandidateMatch, error) {
	summary, err := types.SummaryFromMetadata(hit.ID, hit.Metadata)
	if err != nil {
		return nil, err
	}

	similarity := similarityFromDistance(hit.Distance)
	skillMatch, matchingSkills := computeSkillMatch(summary.Skills, job.RequiredSkills)
	roleMatch := computeRoleMatch(summary.CurrentRole, job.Title, titleKeywords)
	experienceMatch := computeExperienceMatch(summary.YearsOfExperience, requiredYears)
	skillProficiency := computeSkillProficiency(summary.TopSkills, job.RequiredSkills)
	assessment := computeAssessmentPerformance(summary, job)
	profileCompletion := summary.ProfileCompletionPct / 100
	activity := summary.ActivityScorePct / 100

	overall := similarity*weights.Similarity +
		skillMatch*weights.SkillMatch +
		roleMatch*weights.RoleMatch +
		experienceMatch*weights.Experience +
		skillProficiency*weights.SkillProficiency +
		assessment*weights.Assessment +
		profileCompletion*weights.ProfileCompletion +
		activity*weights.Activity

	return &types.CandidateMatch{
		CandidateID:       summary.ID,
		CandidateName:     summary.Name,
		Headline:          summary.Headline,
		CurrentRole:       summary.CurrentRole,
		YearsOfExperience: summary.YearsOfExperience,
		Location:          summary.Location,
		SimilarityScore:   similarity,
		MatchingSkills:    matchingSkills,
		OverallScore:      clamp01(overall),
		RankingFactors: types.RankingFactors{
			Similarity:            similarity,
			SkillMatch:            skillMatch,
			RoleMatch:             roleMatch,
			ExperienceMatch:       experienceMatch,
			SkillProficiency:      skillProficiency,
			AssessmentPerformance: assessment,
			ProfileCompletion:     profileCompletion,
			Activity:              activity,
		},
		GithubURL:    summary.GithubURL,
		LinkedinURL:  summary.LinkedinURL,
		PortfolioURL: summary.PortfolioURL,
	}, nil
}

// similarityFromDistance converts a retrieval distance to a [0,1] similarity.
// A missing distance counts as zero similarity.
func similarityFromDistance(distance *float64) float64 {
	if distance == nil {
		return 0
	}
	return clamp01(1 - *distance)
}

// computeSkillMatch returns the fraction of required skills the candidate has
// (case-insensitive) and the matching skills in the candidate's spelling.
// With no required skills it returns the neutral prior.
func computeSkillMatch(candidateSkills, requiredSkills []string) (float64, []string) {
	if len(requiredSkills) == 0 {
		return neutralScore, nil
	}

	required := make(map[string]bool, len(requiredSkills))
	for _, skill := range requiredSkills {
		required[strings.ToLower(skill)] = true
	}

	var matching []string
	for _, skill := range candidateSkills {
		if required[strings.ToLower(skill)] {
			matching = append(matching, skill)
		}
	}

	return float64(len(matching)) / float64(len(requiredSkills)), matching
}

// computeRoleMatch scores how well the candidate's stated role echoes the
// job title's role vocabulary. An exact title match is perfect; a title with
// no recognized keywords gets the neutral prior.
func computeRoleMatch(candidateRole, jobTitle string, titleKeywords []string) float64 {
	if candidateRole == "" || jobTitle == "" {
		return 0
	}

	roleLower := strings.ToLower(candidateRole)
	if roleLower == strings.ToLower(jobTitle) {
		return 1
	}
	if len(titleKeywords) == 0 {
		return neutralScore
	}

	echoed := 0
	for _, keyword := range titleKeywords {
		if strings.Contains(roleLower, keyword) {
			echoed++
		}
	}
	return float64(echoed) / float64(len(titleKeywords))
}

// computeExperienceMatch compares candidate years against the extracted
// requirement. The denominator is floored at 1 so a zero requirement never
// divides by zero, and the ratio is capped at experienceMatchCap.
func computeExperienceMatch(candidateYears, requiredYears float64) float64 {
	ratio := candidateYears / math.Max(requiredYears, 1)
	return math.Min(ratio, experienceMatchCap)
}

// computeSkillProficiency measures how much of the candidate's top-skill list
// (their highest-proficiency skills) overlaps the required set. Zero without
// top-skills metadata.
func computeSkillProficiency(topSkills, requiredSkills []string) float64 {
	if len(topSkills) == 0 || len(requiredSkills) == 0 {
		return 0
	}

	required := make(map[string]bool, len(requiredSkills))
	for _, skill := range requiredSkills {
		required[strings.ToLower(skill)] = true
	}

	overlap := 0
	for _, skill := range topSkills {
		if required[strings.ToLower(skill)] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(topSkills))
}

// computeAssessmentPerformance blends the Hire3x assessment metrics into one
// bounded composite. Missing metrics contribute zero rather than failing the
// candidate. A lower completion rate means faster work, so it is inverted.
func computeAssessmentPerformance(summary *types.CandidateSummary, job *types.JobDescription) float64 {
	var scoreFraction float64
	if summary.AvgAssessmentScore > 0 {
		scoreFraction = math.Min(summary.AvgAssessmentScore/100, 1)
	}

	var completionEfficiency float64
	if summary.AvgCompletionRate > 0 {
		completionEfficiency = 1 - math.Min(summary.AvgCompletionRate, 1)
	}

	relevance := assessmentRelevance(job.RequiredAssessments, summary.AssessmentNames)

	return scoreFraction*assessmentScoreWeight +
		completionEfficiency*completionEfficiencyWeight +
		summary.AvgAccuracy*accuracyWeight +
		relevance*assessmentRelevanceWeight
}

// assessmentRelevance is 1 when any required assessment name appears
// (case-insensitive substring) in the candidate's assessment list.
func assessmentRelevance(requiredAssessments, candidateAssessments []string) float64 {
	for _, required := range requiredAssessments {
		requiredLower := strings.ToLower(required)
		for _, name := range candidateAssessments {
			if strings.Contains(strings.ToLower(name), requiredLower) {
				return 1
			}
		}
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
