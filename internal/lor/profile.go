// Package lor implements the letter-of-recommendation engine: strength
// analysis, template selection, placeholder rendering and prompt building.
// Everything in this package is pure and safe for concurrent use.
package lor

import (
	"strconv"
	"strings"
)

// Internship is one internship entry of a student profile.
type Internship struct {
	Company   string
	Position  string
	Duration  string
	Status    string
	StartDate string
	EndDate   string
}

// Placement is one placement offer of a student profile.
type Placement struct {
	Company string
	Package string
}

// StudentProfile is the read-only input to the engine.
type StudentProfile struct {
	Name         string
	RollNo       string
	Department   string
	CGPA         *float64 // 0-10 scale, nil when not recorded
	Skills       []string
	Achievements []string
	Internships  []Internship
	Placements   []Placement
}

// LetterRequest carries the target of the letter. All three fields are
// mandatory; validation happens at the transport layer.
type LetterRequest struct {
	Purpose    string
	University string
	Program    string
}

// Faculty identifies the signing faculty member.
type Faculty struct {
	Name       string
	Department string
}

// NormalizePlacements merges the legacy single-placement shape with the
// placements collection into one sequence. Entries without a company are
// dropped.
func NormalizePlacements(list []Placement, single *Placement) []Placement {
	out := make([]Placement, 0, len(list)+1)
	out = append(out, list...)
	if single != nil && single.Company != "" {
		out = append(out, *single)
	}
	return out
}

// CGPAString renders the CGPA for substitution, "N/A" when not recorded.
func (p StudentProfile) CGPAString() string {
	if p.CGPA == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*p.CGPA, 'f', -1, 64)
}

// orNA substitutes "N/A" for absent literal values so placeholder
// substitution stays total.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// orDefault returns fallback when s is blank.
func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
