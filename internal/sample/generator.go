// Package sample generates realistic candidate profiles for seeding demo
// databases and exercising the matching pipeline.
package sample

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hire3x/talent-match/internal/types"
)

// archetype pairs a tech role with the skill pool candidates in that role
// draw from.
type archetype struct {
	role       string
	assessment string
	skills     []string
}

var archetypes = []archetype{
	{"Full Stack Developer", "Backend Development", []string{"React", "Angular", "Vue.js", "Node.js", "Python", "Java", "AWS", "SQL"}},
	{"Frontend Engineer", "Frontend Development", []string{"React", "Angular", "Vue.js", "JavaScript", "TypeScript", "CSS", "Accessibility"}},
	{"Backend Engineer", "Backend Development", []string{"Java", "Python", "Node.js", "Go", "Spring Boot", "Django", "SQL", "Kafka"}},
	{"DevOps Engineer", "DevOps", []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "CI/CD", "Jenkins"}},
	{"Data Scientist", "Data Science", []string{"Python", "R", "Machine Learning", "Statistics", "NLP", "TensorFlow", "PyTorch", "Pandas"}},
	{"Machine Learning Engineer", "Machine Learning", []string{"TensorFlow", "PyTorch", "Computer Vision", "NLP", "MLOps", "AWS", "Deep Learning"}},
	{"Cloud Architect", "Cloud Architecture", []string{"AWS", "Azure", "GCP", "Cloud Security", "Serverless", "Microservices", "Kubernetes"}},
	{"Security Engineer", "Cybersecurity", []string{"Network Security", "Penetration Testing", "Security Auditing", "Encryption", "Threat Analysis"}},
	{"Mobile Developer", "Mobile Development", []string{"iOS", "Android", "React Native", "Flutter", "Swift", "Kotlin"}},
	{"QA Engineer", "QA Automation", []string{"Selenium", "Cypress", "Jest", "Pytest", "Performance Testing", "Test Automation"}},
	{"UI/UX Designer", "UI/UX Design", []string{"Figma", "Adobe XD", "User Research", "Wireframing", "Prototyping", "Design Systems"}},
	{"Site Reliability Engineer", "DevOps", []string{"Linux", "Monitoring", "Kubernetes", "AWS", "Load Balancing", "Go"}},
}

var firstNames = []string{
	"Alex", "Dana", "Jordan", "Morgan", "Priya", "Wei", "Carlos", "Fatima",
	"Elena", "Tomas", "Aisha", "Noah", "Maya", "Lucas", "Ines", "Ravi",
	"Sofia", "Ethan", "Leila", "Diego",
}

var lastNames = []string{
	"Smith", "Johnson", "Chen", "Patel", "Garcia", "Kim", "Nguyen", "Okafor",
	"Silva", "Mueller", "Tanaka", "Ivanov", "Rossi", "Haddad", "Larsen",
	"Kowalski", "Dubois", "Moreno", "Ali", "Berg",
}

var locations = []string{
	"San Francisco, CA", "Seattle, WA", "Austin, TX", "Boston, MA",
	"New York, NY", "Denver, CO", "Chicago, IL", "Atlanta, GA",
	"Toronto, Canada", "London, UK", "Berlin, Germany", "Amsterdam, Netherlands",
	"Bangalore, India", "Singapore", "Remote",
}

var companies = []string{
	"Google", "Amazon", "Microsoft", "Stripe", "Shopify", "Atlassian",
	"TechInnovate", "CloudScale", "DataSystems Inc.", "ByteWorks",
	"CodeCraft", "NetGuardian", "QuantumBit", "Vision AI",
}

var universities = []string{
	"Massachusetts Institute of Technology", "Stanford University",
	"University of California, Berkeley", "Carnegie Mellon University",
	"University of Texas at Austin", "Georgia Institute of Technology",
	"University of Toronto", "ETH Zurich", "National University of Singapore",
	"Indian Institute of Technology",
}

var degreeFields = []string{
	"Computer Science", "Software Engineering", "Data Science",
	"Information Technology", "Electrical Engineering",
}

// Generator produces candidate profiles from a seeded source, so the same seed
// always yields the same candidates.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with the given seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Candidates generates n candidate profiles.
func (g *Generator) Candidates(n int) []*types.CandidateProfile {
	out := make([]*types.CandidateProfile, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Candidate())
	}
	return out
}

// Candidate generates one candidate profile.
func (g *Generator) Candidate() *types.CandidateProfile {
	arch := archetypes[g.rng.Intn(len(archetypes))]
	name := firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
	years := float64(g.rng.Intn(15)) + float64(g.rng.Intn(2))*0.5
	handle := strings.ToLower(strings.ReplaceAll(name, " ", "-"))

	skills := g.pickSkills(arch.skills)
	seniority := seniorityLabel(years)
	role := strings.TrimSpace(seniority + " " + arch.role)

	profile := &types.CandidateProfile{
		ID:                uuid.NewString(),
		Name:              name,
		Email:             handle + "@example.com",
		LinkedinURL:       "https://linkedin.com/in/" + handle,
		GithubURL:         "https://github.com/" + handle,
		Location:          locations[g.rng.Intn(len(locations))],
		Headline:          fmt.Sprintf("%s with %g years of experience", role, years),
		Summary:           g.summary(role, arch.skills),
		CurrentRole:       role,
		YearsOfExperience: years,
		Education:         g.education(),
		Experience:        g.workHistory(arch, years),
		Skills:            skills,
		Hire3x:            g.hire3xData(arch),
	}
	return profile
}

// pickSkills selects 4-7 skills from the pool with random proficiencies.
func (g *Generator) pickSkills(pool []string) map[string]float64 {
	count := 4 + g.rng.Intn(4)
	if count > len(pool) {
		count = len(pool)
	}
	perm := g.rng.Perm(len(pool))

	skills := make(map[string]float64, count)
	for _, idx := range perm[:count] {
		skills[pool[idx]] = roundTo(0.5+g.rng.Float64()*0.5, 2)
	}
	return skills
}

func (g *Generator) summary(role string, pool []string) string {
	focus := pool[g.rng.Intn(len(pool))]
	return fmt.Sprintf("%s focused on %s, with a track record of shipping production systems.", role, focus)
}

func (g *Generator) education() []types.Education {
	year := 2005 + g.rng.Intn(18)
	edu := []types.Education{{
		Institution:    universities[g.rng.Intn(len(universities))],
		Degree:         "Bachelor of Science",
		FieldOfStudy:   degreeFields[g.rng.Intn(len(degreeFields))],
		GraduationYear: year,
	}}
	if g.rng.Float64() < 0.3 {
		edu = append(edu, types.Education{
			Institution:    universities[g.rng.Intn(len(universities))],
			Degree:         "Master of Science",
			FieldOfStudy:   degreeFields[g.rng.Intn(len(degreeFields))],
			GraduationYear: year + 2,
		})
	}
	return edu
}

func (g *Generator) workHistory(arch archetype, years float64) []types.WorkExperience {
	jobs := 1
	if years >= 4 {
		jobs = 2
	}
	if years >= 9 {
		jobs = 3
	}

	history := make([]types.WorkExperience, 0, jobs)
	for i := 0; i < jobs; i++ {
		used := arch.skills[:2+g.rng.Intn(len(arch.skills)-1)]
		history = append(history, types.WorkExperience{
			Company:     companies[g.rng.Intn(len(companies))],
			Role:        arch.role,
			Current:     i == 0,
			Description: fmt.Sprintf("Worked as a %s building and operating production services.", arch.role),
			SkillsUsed:  append([]string(nil), used...),
		})
	}
	return history
}

func (g *Generator) hire3xData(arch archetype) types.Hire3xData {
	assessmentCount := 1 + g.rng.Intn(2)
	assessments := make([]types.Assessment, 0, assessmentCount)
	for i := 0; i < assessmentCount; i++ {
		assessments = append(assessments, g.assessment(arch))
	}

	joined := time.Now().AddDate(0, 0, -(30 + g.rng.Intn(700)))
	return types.Hire3xData{
		JoinedDate:        joined.Format("2006-01-02"),
		ProfileCompletion: 60 + g.rng.Intn(41),
		ActivityScore:     40 + g.rng.Intn(61),
		Assessments:       assessments,
	}
}

func (g *Generator) assessment(arch archetype) types.Assessment {
	score := roundTo(60+g.rng.Float64()*38, 1)
	allowed := []int{60, 90, 120, 150, 180}[g.rng.Intn(5)]
	// Faster completion reads as a lower completion rate.
	completionTime := int(float64(allowed) * (0.5 + g.rng.Float64()*0.4))
	taken := time.Now().AddDate(0, 0, -(1 + g.rng.Intn(365)))

	evaluated := arch.skills
	if len(evaluated) > 5 {
		evaluated = evaluated[:5]
	}

	return types.Assessment{
		AssessmentID:    fmt.Sprintf("hire3x-%s-%d", strings.ReplaceAll(strings.ToLower(arch.assessment), " ", "-"), 100+g.rng.Intn(900)),
		Name:            arch.assessment + " Assessment",
		Score:           score,
		Percentile:      roundTo(score-g.rng.Float64()*15, 1),
		SkillsEvaluated: append([]string(nil), evaluated...),
		CompletionTime:  completionTime,
		AllowedTime:     allowed,
		CompletionRate:  roundTo(float64(completionTime)/float64(allowed), 2),
		Accuracy:        roundTo(0.7+g.rng.Float64()*0.28, 2),
		TakenDate:       taken.Format("2006-01-02"),
	}
}

func seniorityLabel(years float64) string {
	switch {
	case years >= 8:
		return "Senior"
	case years < 2:
		return "Junior"
	default:
		return ""
	}
}

func roundTo(v float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	return float64(int(v*scale+0.5)) / scale
}
