package lor

import "strings"

// StrengthTag classifies one demonstrated strength of a student.
type StrengthTag string

const (
	StrengthAcademic   StrengthTag = "academic"
	StrengthTechnical  StrengthTag = "technical"
	StrengthLeadership StrengthTag = "leadership"
	StrengthPractical  StrengthTag = "practical"
)

// leadershipMarkers are matched case-insensitively against achievement text.
var leadershipMarkers = []string{"lead", "organiz", "head", "volunteer", "coordin"}

// fieldEntry maps a field label to its detection keywords. Order matters:
// earlier entries win score ties.
type fieldEntry struct {
	name     string
	keywords []string
}

var fieldCatalog = []fieldEntry{
	{"web development", []string{"html", "css", "javascript", "react", "angular", "node", "web"}},
	{"data science", []string{"python", "r", "statistics", "machine learning", "data", "analysis"}},
	{"software engineering", []string{"java", "c++", "software", "development", "oop"}},
	{"ai/ml", []string{"machine learning", "ai", "artificial intelligence", "deep learning", "neural"}},
	{"cybersecurity", []string{"security", "cyber", "encryption", "network security"}},
	{"mobile development", []string{"android", "ios", "swift", "kotlin", "mobile"}},
	{"cloud computing", []string{"aws", "azure", "cloud", "docker", "kubernetes"}},
}

// DeriveStrengths maps a profile to its strength tags. Evaluation order is
// fixed (academic, technical, leadership, practical) and each check is
// independent; the result may be empty.
func DeriveStrengths(p StudentProfile) []StrengthTag {
	var tags []StrengthTag

	if p.CGPA != nil && *p.CGPA >= 8.0 {
		tags = append(tags, StrengthAcademic)
	}

	if len(p.Skills) >= 3 {
		tags = append(tags, StrengthTechnical)
	}

	for _, ach := range p.Achievements {
		lower := strings.ToLower(ach)
		matched := false
		for _, marker := range leadershipMarkers {
			if strings.Contains(lower, marker) {
				matched = true
				break
			}
		}
		if matched {
			tags = append(tags, StrengthLeadership)
			break
		}
	}

	if len(p.Internships) >= 1 {
		tags = append(tags, StrengthPractical)
	}

	return tags
}

// HasStrength reports whether tag is in tags.
func HasStrength(tags []StrengthTag, tag StrengthTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PrimaryField infers the student's specialization from skills and internship
// positions. Skills count 1 per field hit, internship positions count 2 since
// work experience is the stronger signal. Ties keep catalog order; when
// nothing matches the declared department is returned.
func PrimaryField(p StudentProfile) string {
	best := p.Department
	bestScore := 0

	for _, field := range fieldCatalog {
		score := 0
		for _, skill := range p.Skills {
			lower := strings.ToLower(skill)
			for _, kw := range field.keywords {
				if strings.Contains(lower, kw) {
					score++
					break
				}
			}
		}
		for _, in := range p.Internships {
			lower := strings.ToLower(in.Position)
			for _, kw := range field.keywords {
				if strings.Contains(lower, kw) {
					score += 2
					break
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = field.name
		}
	}

	return best
}
