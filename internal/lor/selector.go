package lor

import "strings"

// Template is one letter skeleton from the catalog. Body may contain
// {{placeholder}} tokens; unknown tokens survive rendering verbatim.
type Template struct {
	ID        string
	Title     string
	Body      string
	IsDefault bool
}

// Selection weights. Title matches outrank body matches.
const (
	fieldTitleScore   = 3
	fieldBodyScore    = 2
	purposeTitleScore = 3
	purposeBodyScore  = 2
	programBodyScore  = 2
)

// ScoreTemplate computes the match score of a single template against the
// request and the student's primary field. All matches are case-insensitive
// substring checks.
func ScoreTemplate(t Template, req LetterRequest, primaryField string) int {
	title := strings.ToLower(t.Title)
	body := strings.ToLower(t.Body)
	field := strings.ToLower(primaryField)
	purpose := strings.ToLower(req.Purpose)
	program := strings.ToLower(req.Program)

	score := 0
	if field != "" && strings.Contains(title, field) {
		score += fieldTitleScore
	}
	if field != "" && strings.Contains(body, field) {
		score += fieldBodyScore
	}
	if purpose != "" && strings.Contains(title, purpose) {
		score += purposeTitleScore
	}
	if purpose != "" && strings.Contains(body, purpose) {
		score += purposeBodyScore
	}
	if program != "" && strings.Contains(body, program) {
		score += programBodyScore
	}
	return score
}

// SelectTemplate picks the best-matching template from the catalog, the first
// default template when nothing scores above zero, or nil when the catalog
// has no match and no default. Catalog order breaks ties.
func SelectTemplate(catalog []Template, req LetterRequest, primaryField string) *Template {
	var best *Template
	bestScore := 0
	for i := range catalog {
		score := ScoreTemplate(catalog[i], req, primaryField)
		if score > bestScore {
			bestScore = score
			best = &catalog[i]
		}
	}
	if best != nil {
		return best
	}
	for i := range catalog {
		if catalog[i].IsDefault {
			return &catalog[i]
		}
	}
	return nil
}
