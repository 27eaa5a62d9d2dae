package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/campushub/lor-service/internal/dto"
	"github.com/campushub/lor-service/internal/lor"
	"github.com/campushub/lor-service/internal/model"
	"github.com/campushub/lor-service/internal/repository"
	"github.com/campushub/lor-service/internal/service"
	"gorm.io/gorm"
)

var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrRequestNotFound    = errors.New("lor request not found")
	ErrNoSuitableTemplate = errors.New("no suitable template found")
)

// fallbackTemplateBody is the deterministic letter used when every AI attempt
// fails. It goes through the same renderer as catalog templates, so the user
// always receives a complete letter.
const fallbackTemplateBody = `To Whom It May Concern,

I am writing to recommend {{name}}, a student of the {{department}} department (Roll No: {{rollNo}}), for the {{program}} at {{university}}.

{{name}} has maintained a CGPA of {{cgpa}} and demonstrated proficiency in {{skills}}. Their record includes {{achievements}}, along with practical exposure through {{internships}}.

{{strengths}}

I am confident {{name}} will be a valuable addition to your program. Please feel free to contact me for any further information.

Sincerely,
{{facultyName}}
{{facultyDepartment}}
{{date}}`

const requestDeadline = 30 * 24 * time.Hour

type LORUsecase struct {
	students  repository.StudentRepositoryInterface
	templates repository.LORTemplateRepositoryInterface
	requests  repository.LORRequestRepositoryInterface
	generator service.GeneratorServiceInterface
}

func NewLORUsecase(
	students repository.StudentRepositoryInterface,
	templates repository.LORTemplateRepositoryInterface,
	requests repository.LORRequestRepositoryInterface,
	generator service.GeneratorServiceInterface,
) *LORUsecase {
	return &LORUsecase{students: students, templates: templates, requests: requests, generator: generator}
}

// GenerateFromTemplate renders a letter through the deterministic template
// engine. An explicit templateID pins the template; otherwise the selector
// picks the best match for the student's primary field and the request.
func (uc *LORUsecase) GenerateFromTemplate(studentID string, letter lor.LetterRequest, fac lor.Faculty, templateID string) (*model.LORRequest, error) {
	student, err := uc.findStudent(studentID)
	if err != nil {
		return nil, err
	}
	profile := buildProfile(student)

	var selected *lor.Template
	if templateID != "" {
		tmpl, err := uc.templates.FindByID(templateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTemplateNotFound
			}
			return nil, fmt.Errorf("could not load template: %w", err)
		}
		t := toCoreTemplate(tmpl)
		selected = &t
	} else {
		catalog, err := uc.templates.FindAll()
		if err != nil {
			return nil, fmt.Errorf("could not load template catalog: %w", err)
		}
		selected = lor.SelectTemplate(toCoreCatalog(catalog), letter, lor.PrimaryField(profile))
		if selected == nil {
			return nil, ErrNoSuitableTemplate
		}
	}

	content := lor.RenderLetter(*selected, profile, letter, fac)

	request := newLORRequest(student, letter, fac)
	request.GeneratedContent = content
	request.Source = service.SourceTemplate
	if id, err := parseTemplateID(selected.ID); err == nil {
		request.TemplateUsed = id
	}

	if err := uc.requests.Create(request); err != nil {
		return nil, fmt.Errorf("could not save lor request: %w", err)
	}
	return request, nil
}

// GenerateWithAI asks the generation gateway for a letter. A circuit-open
// rejection propagates to the caller; a terminal generation failure degrades
// to the deterministic fallback letter so the request still completes.
func (uc *LORUsecase) GenerateWithAI(ctx context.Context, studentID string, letter lor.LetterRequest, fac lor.Faculty, styleTemplateID string) (*model.LORRequest, error) {
	student, err := uc.findStudent(studentID)
	if err != nil {
		return nil, err
	}
	profile := buildProfile(student)

	styleRef := ""
	if styleTemplateID != "" {
		tmpl, err := uc.templates.FindByID(styleTemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTemplateNotFound
			}
			return nil, fmt.Errorf("could not load style template: %w", err)
		}
		styleRef = tmpl.Content
	}

	prompt := lor.BuildPrompt(profile, letter, styleRef)
	request := newLORRequest(student, letter, fac)

	result, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		var genErr *service.GenerationError
		if !errors.As(err, &genErr) {
			// Circuit open, cancellation: the caller decides what to do.
			return nil, err
		}

		// Every attempt failed; fall back to the deterministic letter and
		// keep the attempt log as provenance.
		log.Printf("AI generation failed for student %s, using fallback letter: %v", studentID, err)
		request.GeneratedContent = lor.RenderLetter(
			lor.Template{ID: "fallback", Title: "Fallback", Body: fallbackTemplateBody},
			profile, letter, fac,
		)
		request.Source = service.SourceFallback
		request.Attempts = len(genErr.Errors)
		request.GenerationErrors = marshalAttemptErrors(genErr.Errors)
	} else {
		request.GeneratedContent = result.Text
		request.Source = result.Source
		request.ModelUsed = result.ModelUsed
		request.Attempts = result.Attempts
		request.GenerationErrors = marshalAttemptErrors(result.Errors)
	}

	if err := uc.requests.Create(request); err != nil {
		return nil, fmt.Errorf("could not save lor request: %w", err)
	}
	return request, nil
}

// Recommendations analyzes a student's record and suggests letter angles to
// emphasize.
func (uc *LORUsecase) Recommendations(studentID string) (string, []lor.StrengthTag, []dto.RecommendationDTO, error) {
	student, err := uc.findStudent(studentID)
	if err != nil {
		return "", nil, nil, err
	}
	profile := buildProfile(student)
	tags := lor.DeriveStrengths(profile)

	var recs []dto.RecommendationDTO
	if lor.HasStrength(tags, lor.StrengthAcademic) {
		recs = append(recs, dto.RecommendationDTO{
			Area:         "Academic Excellence",
			Suggestion:   fmt.Sprintf("Emphasize the student's academic performance with CGPA of %s", profile.CGPAString()),
			TemplateType: "Academic Focused",
		})
	}
	if lor.HasStrength(tags, lor.StrengthTechnical) {
		top := profile.Skills
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, dto.RecommendationDTO{
			Area:         "Technical Skills",
			Suggestion:   fmt.Sprintf("Highlight proficiency in %s", joinComma(top)),
			TemplateType: "Technical Expertise",
		})
	}
	if lor.HasStrength(tags, lor.StrengthLeadership) {
		recs = append(recs, dto.RecommendationDTO{
			Area:         "Leadership",
			Suggestion:   "Focus on leadership qualities and soft skills demonstrated through activities",
			TemplateType: "Character & Leadership",
		})
	}
	if lor.HasStrength(tags, lor.StrengthPractical) {
		recs = append(recs, dto.RecommendationDTO{
			Area:         "Practical Experience",
			Suggestion:   "Emphasize internship experience and practical application of skills",
			TemplateType: "Industry Readiness",
		})
	}

	return student.Name, tags, recs, nil
}

func (uc *LORUsecase) GetRequest(id string) (*model.LORRequest, error) {
	request, err := uc.requests.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

func (uc *LORUsecase) ListRequestsByStudent(studentID string) ([]model.LORRequest, error) {
	if _, err := uc.findStudent(studentID); err != nil {
		return nil, err
	}
	return uc.requests.FindByStudent(studentID)
}

func (uc *LORUsecase) GetStudent(id string) (*model.Student, error) {
	return uc.findStudent(id)
}

func (uc *LORUsecase) findStudent(id string) (*model.Student, error) {
	student, err := uc.students.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("could not load student: %w", err)
	}
	return student, nil
}
