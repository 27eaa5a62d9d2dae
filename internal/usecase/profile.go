package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/campushub/lor-service/internal/lor"
	"github.com/campushub/lor-service/internal/model"
	"github.com/campushub/lor-service/internal/service"
	"github.com/google/uuid"
)

// buildProfile normalizes a stored student into the engine's profile shape.
// The legacy single placement offer and the placements table are merged into
// one sequence.
func buildProfile(student *model.Student) lor.StudentProfile {
	internships := make([]lor.Internship, 0, len(student.Internships))
	for _, in := range student.Internships {
		internships = append(internships, lor.Internship{
			Company:   in.Company,
			Position:  in.Position,
			Duration:  in.Duration,
			Status:    in.Status,
			StartDate: formatDate(in.StartDate),
			EndDate:   formatDate(in.EndDate),
		})
	}

	placements := make([]lor.Placement, 0, len(student.Placements))
	for _, pl := range student.Placements {
		placements = append(placements, lor.Placement{Company: pl.Company, Package: pl.Package})
	}
	var single *lor.Placement
	if student.PlacementCompany != "" {
		single = &lor.Placement{Company: student.PlacementCompany, Package: student.PlacementPackage}
	}

	return lor.StudentProfile{
		Name:         student.Name,
		RollNo:       student.RollNo,
		Department:   student.Department,
		CGPA:         student.CGPA,
		Skills:       student.Skills,
		Achievements: student.Achievements,
		Internships:  internships,
		Placements:   lor.NormalizePlacements(placements, single),
	}
}

func toCoreTemplate(t *model.LORTemplate) lor.Template {
	return lor.Template{
		ID:        t.ID.String(),
		Title:     t.Title,
		Body:      t.Content,
		IsDefault: t.IsDefault,
	}
}

func toCoreCatalog(templates []model.LORTemplate) []lor.Template {
	catalog := make([]lor.Template, 0, len(templates))
	for i := range templates {
		catalog = append(catalog, toCoreTemplate(&templates[i]))
	}
	return catalog
}

func newLORRequest(student *model.Student, letter lor.LetterRequest, fac lor.Faculty) *model.LORRequest {
	return &model.LORRequest{
		StudentID:         student.ID,
		Purpose:           letter.Purpose,
		University:        letter.University,
		Program:           letter.Program,
		Deadline:          time.Now().Add(requestDeadline),
		Status:            "approved",
		FacultyName:       fac.Name,
		FacultyDepartment: fac.Department,
	}
}

func parseTemplateID(id string) (*uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func marshalAttemptErrors(errs []service.AttemptError) string {
	if len(errs) == 0 {
		return "[]"
	}
	data, err := json.Marshal(errs)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func joinComma(items []string) string {
	return strings.Join(items, ", ")
}
