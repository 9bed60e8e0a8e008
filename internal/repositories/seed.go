package repositories

import "alfredoptarigan/hrms-assistant/internal/models"

// DefaultCandidates is the talent pool the dashboard ships with.
func DefaultCandidates() []models.Candidate {
	return []models.Candidate{
		{
			Name:       "Elena Rodriguez",
			Role:       "Senior UX Designer",
			Experience: 7,
			Skills:     []string{"Figma", "React", "User Research", "Prototyping"},
			Location:   "San Francisco, CA",
			Avatar:     "https://picsum.photos/id/1011/200/200",
			Status:     models.CandidateScreening,
			MatchScore: 92,
			Bio:        "Award-winning designer with a focus on accessible interfaces. Previously led design at a fintech unicorn.",
		},
		{
			Name:       "James Chen",
			Role:       "Full Stack Engineer",
			Experience: 4,
			Skills:     []string{"Node.js", "TypeScript", "PostgreSQL", "AWS"},
			Location:   "New York, NY",
			Avatar:     "https://picsum.photos/id/1012/200/200",
			Status:     models.CandidateNew,
			MatchScore: 85,
			Bio:        "Full stack developer passionate about scalable architecture. Contributor to several open source libraries.",
		},
		{
			Name:       "Sarah Johnson",
			Role:       "Product Manager",
			Experience: 6,
			Skills:     []string{"Agile", "Strategy", "Data Analysis", "SQL"},
			Location:   "Austin, TX",
			Avatar:     "https://picsum.photos/id/1027/200/200",
			Status:     models.CandidateInterview,
			MatchScore: 78,
			Bio:        "Product leader with a background in data science. Expert in driving product growth through metrics.",
		},
		{
			Name:       "Michael Chang",
			Role:       "DevOps Engineer",
			Experience: 9,
			Skills:     []string{"Kubernetes", "Terraform", "CI/CD", "Python"},
			Location:   "Remote",
			Avatar:     "https://picsum.photos/id/1005/200/200",
			Status:     models.CandidateOffer,
			MatchScore: 96,
			Bio:        "Senior DevOps specialist. Built infrastructure for high-traffic streaming services.",
		},
	}
}
