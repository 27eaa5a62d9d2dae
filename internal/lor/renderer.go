package lor

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout matches the short locale date the letters have always carried.
const dateLayout = "1/2/2006"

// Per-strength narrative sentences. The trailing space is intentional; the
// paragraph is a plain concatenation.
const (
	academicSentence   = "%s has demonstrated exceptional academic abilities, maintaining a CGPA of %s. "
	technicalSentence  = "Their technical proficiency in %s is particularly noteworthy. "
	leadershipSentence = "They have displayed excellent leadership qualities through their involvement in various activities. "
	practicalSentence  = "Their practical experience through internships has prepared them well for further studies and professional challenges. "
)

// Defaults substituted for empty collections so no sentence renders broken.
const (
	emptySkillsText       = "various technical skills"
	emptyAchievementsText = "academic achievements"
	emptyInternshipsText  = "academic projects"
)

// RenderLetter renders a template against a profile at the current date.
func RenderLetter(tmpl Template, p StudentProfile, req LetterRequest, fac Faculty) string {
	return RenderLetterAt(tmpl, p, req, fac, time.Now())
}

// RenderLetterAt substitutes every recognized {{token}} in the template body.
// Substitution is global and total: absent literals become "N/A", empty
// collections get fixed generic phrases, and unrecognized tokens are left
// untouched. Rendering never fails.
func RenderLetterAt(tmpl Template, p StudentProfile, req LetterRequest, fac Faculty, at time.Time) string {
	content := tmpl.Body

	replacements := []struct {
		token string
		value string
	}{
		{"{{name}}", orNA(p.Name)},
		{"{{rollNo}}", orNA(p.RollNo)},
		{"{{department}}", orNA(p.Department)},
		{"{{cgpa}}", p.CGPAString()},
		{"{{university}}", orNA(req.University)},
		{"{{program}}", orNA(req.Program)},
		{"{{purpose}}", orNA(req.Purpose)},
		{"{{facultyName}}", orNA(fac.Name)},
		{"{{facultyDepartment}}", orNA(fac.Department)},
		{"{{date}}", at.Format(dateLayout)},
		{"{{skills}}", orDefault(strings.Join(p.Skills, ", "), emptySkillsText)},
		{"{{achievements}}", orDefault(strings.Join(p.Achievements, ", "), emptyAchievementsText)},
		{"{{internships}}", internshipsText(p.Internships)},
	}

	// Strengths paragraph is only synthesized when the template asks for it.
	if strings.Contains(content, "{{strengths}}") {
		content = strings.ReplaceAll(content, "{{strengths}}", StrengthsParagraph(p))
	}

	for _, r := range replacements {
		content = strings.ReplaceAll(content, r.token, r.value)
	}

	return content
}

// StrengthsParagraph concatenates one sentence per derived strength tag, in
// the fixed academic, technical, leadership, practical order. Profiles with
// no tags yield an empty string.
func StrengthsParagraph(p StudentProfile) string {
	tags := DeriveStrengths(p)

	var b strings.Builder
	if HasStrength(tags, StrengthAcademic) {
		b.WriteString(fmt.Sprintf(academicSentence, orNA(p.Name), p.CGPAString()))
	}
	if HasStrength(tags, StrengthTechnical) {
		b.WriteString(fmt.Sprintf(technicalSentence, strings.Join(topSkills(p.Skills, 3), ", ")))
	}
	if HasStrength(tags, StrengthLeadership) {
		b.WriteString(leadershipSentence)
	}
	if HasStrength(tags, StrengthPractical) {
		b.WriteString(practicalSentence)
	}
	return b.String()
}

func internshipsText(internships []Internship) string {
	if len(internships) == 0 {
		return emptyInternshipsText
	}
	parts := make([]string, 0, len(internships))
	for _, in := range internships {
		parts = append(parts, fmt.Sprintf("%s at %s", in.Position, in.Company))
	}
	return strings.Join(parts, ", ")
}

func topSkills(skills []string, n int) []string {
	if len(skills) <= n {
		return skills
	}
	return skills[:n]
}
