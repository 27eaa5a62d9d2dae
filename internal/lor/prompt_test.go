package lor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_StudentBlock(t *testing.T) {
	profile := StudentProfile{Name: "Asha Rao", RollNo: "CS-104", Department: "CSE", CGPA: cgpa(8.4)}
	req := LetterRequest{Purpose: "Masters", University: "CMU", Program: "Robotics"}

	prompt := BuildPrompt(profile, req, "")

	assert.Contains(t, prompt, "Name: Asha Rao\n")
	assert.Contains(t, prompt, "Roll No: CS-104\n")
	assert.Contains(t, prompt, "Department: CSE\n")
	assert.Contains(t, prompt, "CGPA: 8.4\n")
	assert.Contains(t, prompt, "Purpose: Masters\n")
	assert.Contains(t, prompt, "University / Organization: CMU\n")
	assert.Contains(t, prompt, "Program / Position: Robotics\n")
	assert.Contains(t, prompt, "Output only the final letter.")
}

func TestBuildPrompt_MissingLiteralsRenderNA(t *testing.T) {
	prompt := BuildPrompt(StudentProfile{Name: "Asha"}, LetterRequest{}, "")

	assert.Contains(t, prompt, "Roll No: N/A\n")
	assert.Contains(t, prompt, "Department: N/A\n")
	assert.Contains(t, prompt, "CGPA: N/A\n")
}

func TestBuildPrompt_InternshipBullets(t *testing.T) {
	profile := StudentProfile{
		Name: "Asha",
		Internships: []Internship{
			{Company: "Acme", Duration: "6 months", Status: "Completed"},
			{Company: "Globex", StartDate: "2025-01-01", EndDate: "2025-06-30", Status: "Ongoing"},
			{},
		},
	}

	prompt := BuildPrompt(profile, LetterRequest{}, "")

	assert.Contains(t, prompt, "- Acme (6 months) - Completed")
	assert.Contains(t, prompt, "- Globex (2025-01-01 - 2025-06-30) - Ongoing")
	assert.Contains(t, prompt, "- Company (Start) - Status")
}

func TestBuildPrompt_EmptyCollections(t *testing.T) {
	prompt := BuildPrompt(StudentProfile{Name: "Asha"}, LetterRequest{}, "")

	assert.Contains(t, prompt, "Internships:\nNone listed.")
	assert.Contains(t, prompt, "Placements:\nNone recorded.")
}

func TestBuildPrompt_PlacementLines(t *testing.T) {
	profile := StudentProfile{
		Name: "Asha",
		Placements: []Placement{
			{Company: "Initech", Package: "12 LPA"},
			{Company: "Umbrella"},
		},
	}

	prompt := BuildPrompt(profile, LetterRequest{}, "")

	assert.Contains(t, prompt, "Initech - Package: 12 LPA")
	assert.Contains(t, prompt, "Umbrella - Package: N/A")
}

func TestBuildPrompt_StyleReference(t *testing.T) {
	withRef := BuildPrompt(StudentProfile{Name: "Asha"}, LetterRequest{}, "Dear Committee, {{name}} ...")
	withoutRef := BuildPrompt(StudentProfile{Name: "Asha"}, LetterRequest{}, "")

	assert.Contains(t, withRef, "Style Reference (do not output placeholders literally):\nDear Committee, {{name}} ...")
	assert.NotContains(t, withoutRef, "Style Reference")
}

func TestNormalizePlacements(t *testing.T) {
	list := []Placement{{Company: "Initech", Package: "12 LPA"}}
	single := &Placement{Company: "Umbrella", Package: "8 LPA"}

	assert.Len(t, NormalizePlacements(list, single), 2)
	assert.Len(t, NormalizePlacements(list, nil), 1)
	assert.Len(t, NormalizePlacements(nil, single), 1)
	assert.Empty(t, NormalizePlacements(nil, &Placement{}))
}
