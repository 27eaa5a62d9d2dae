package lor

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the natural-language prompt for the generation
// provider. styleRef, when non-empty, is appended as a style reference with
// an instruction not to echo its placeholder tokens.
func BuildPrompt(p StudentProfile, req LetterRequest, styleRef string) string {
	var b strings.Builder

	b.WriteString("You are an assistant generating a professional Letter of Recommendation.\n\n")

	b.WriteString("Student:\n")
	fmt.Fprintf(&b, "Name: %s\n", orNA(p.Name))
	fmt.Fprintf(&b, "Roll No: %s\n", orNA(p.RollNo))
	fmt.Fprintf(&b, "Department: %s\n", orNA(p.Department))
	fmt.Fprintf(&b, "CGPA: %s\n\n", p.CGPAString())

	b.WriteString("Internships:\n")
	b.WriteString(internshipBullets(p.Internships))
	b.WriteString("\n\n")

	b.WriteString("Placements:\n")
	b.WriteString(placementLines(p.Placements))
	b.WriteString("\n\n")

	b.WriteString("Target:\n")
	fmt.Fprintf(&b, "Purpose: %s\n", req.Purpose)
	fmt.Fprintf(&b, "University / Organization: %s\n", req.University)
	fmt.Fprintf(&b, "Program / Position: %s\n\n", req.Program)

	b.WriteString("Guidelines:\n")
	b.WriteString("- Formal, specific, factual (no invented data).\n")
	b.WriteString("- Link strengths to target program.\n")
	b.WriteString("- 4-6 paragraphs, strong closing.\n")

	if styleRef != "" {
		fmt.Fprintf(&b, "Style Reference (do not output placeholders literally):\n%s\n", styleRef)
	}

	b.WriteString("\nOutput only the final letter.\n")

	return b.String()
}

// internshipBullets renders each internship as a "- {company} ({span}) -
// {status}" bullet, or "None listed." for an empty sequence.
func internshipBullets(internships []Internship) string {
	if len(internships) == 0 {
		return "None listed."
	}
	lines := make([]string, 0, len(internships))
	for _, in := range internships {
		span := in.Duration
		if span == "" {
			span = in.StartDate
		}
		if span == "" {
			span = "Start"
		}
		if in.EndDate != "" {
			span += " - " + in.EndDate
		}
		lines = append(lines, fmt.Sprintf("- %s (%s) - %s",
			orDefault(in.Company, "Company"), span, orDefault(in.Status, "Status")))
	}
	return strings.Join(lines, "\n")
}

// placementLines renders each placement as "{company} - Package: {package}",
// or "None recorded." for an empty sequence.
func placementLines(placements []Placement) string {
	if len(placements) == 0 {
		return "None recorded."
	}
	lines := make([]string, 0, len(placements))
	for _, pl := range placements {
		lines = append(lines, fmt.Sprintf("%s - Package: %s",
			orDefault(pl.Company, "Company"), orNA(pl.Package)))
	}
	return strings.Join(lines, "\n")
}
