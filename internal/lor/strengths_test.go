package lor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cgpa(v float64) *float64 {
	return &v
}

func TestDeriveStrengths_AcademicThreshold(t *testing.T) {
	assert.Contains(t, DeriveStrengths(StudentProfile{CGPA: cgpa(8.0)}), StrengthAcademic)
	assert.Contains(t, DeriveStrengths(StudentProfile{CGPA: cgpa(9.7)}), StrengthAcademic)
	assert.NotContains(t, DeriveStrengths(StudentProfile{CGPA: cgpa(7.99)}), StrengthAcademic)
	assert.NotContains(t, DeriveStrengths(StudentProfile{}), StrengthAcademic)
}

func TestDeriveStrengths_TechnicalThreshold(t *testing.T) {
	assert.Contains(t, DeriveStrengths(StudentProfile{Skills: []string{"Go", "SQL", "Docker"}}), StrengthTechnical)
	assert.NotContains(t, DeriveStrengths(StudentProfile{Skills: []string{"Go", "SQL"}}), StrengthTechnical)
	assert.NotContains(t, DeriveStrengths(StudentProfile{}), StrengthTechnical)
}

func TestDeriveStrengths_LeadershipMarkers(t *testing.T) {
	tests := []struct {
		name        string
		achievement string
		want        bool
	}{
		{"lead substring", "Team Lead of robotics club", true},
		{"organizer", "Organized the annual tech fest", true},
		{"head", "Head of the coding society", true},
		{"volunteer", "Volunteered at NSS camp", true},
		{"coordinator", "Event coordinator, cultural fest", true},
		{"case insensitive", "TEAM LEAD", true},
		{"no marker", "Won first prize in hackathon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := DeriveStrengths(StudentProfile{Achievements: []string{tt.achievement}})
			assert.Equal(t, tt.want, HasStrength(tags, StrengthLeadership))
		})
	}
}

func TestDeriveStrengths_Practical(t *testing.T) {
	withIntern := StudentProfile{Internships: []Internship{{Company: "Acme", Position: "Intern"}}}
	assert.Contains(t, DeriveStrengths(withIntern), StrengthPractical)
	assert.NotContains(t, DeriveStrengths(StudentProfile{}), StrengthPractical)
}

func TestDeriveStrengths_EmptyProfile(t *testing.T) {
	assert.Empty(t, DeriveStrengths(StudentProfile{}))
}

func TestDeriveStrengths_FixedOrder(t *testing.T) {
	profile := StudentProfile{
		CGPA:         cgpa(9.2),
		Skills:       []string{"Java", "React", "Node"},
		Achievements: []string{"Team Lead of robotics club"},
		Internships:  []Internship{{Company: "Acme", Position: "SDE Intern"}},
	}

	tags := DeriveStrengths(profile)
	assert.Equal(t, []StrengthTag{StrengthAcademic, StrengthTechnical, StrengthLeadership, StrengthPractical}, tags)
}

func TestPrimaryField_SkillMatches(t *testing.T) {
	profile := StudentProfile{
		Department: "Computer Science",
		Skills:     []string{"React", "Node", "HTML"},
	}

	assert.Equal(t, "web development", PrimaryField(profile))
}

func TestPrimaryField_InternshipsWeighHeavier(t *testing.T) {
	// One web skill (1 point) vs one security internship (2 points).
	profile := StudentProfile{
		Department:  "Computer Science",
		Skills:      []string{"React"},
		Internships: []Internship{{Company: "SecureCo", Position: "Network Security Intern"}},
	}

	assert.Equal(t, "cybersecurity", PrimaryField(profile))
}

func TestPrimaryField_TieKeepsCatalogOrder(t *testing.T) {
	// "machine learning" is a keyword of both data science and ai/ml; data
	// science is declared first.
	profile := StudentProfile{
		Department: "Computer Science",
		Skills:     []string{"Machine Learning"},
	}

	assert.Equal(t, "data science", PrimaryField(profile))
}

func TestPrimaryField_DefaultsToDepartment(t *testing.T) {
	profile := StudentProfile{
		Department: "Mechanical Engineering",
		Skills:     []string{"AutoCAD", "Thermodynamics"},
	}

	assert.Equal(t, "Mechanical Engineering", PrimaryField(profile))
}

func TestPrimaryField_EmptyProfile(t *testing.T) {
	assert.Equal(t, "", PrimaryField(StudentProfile{}))
}
