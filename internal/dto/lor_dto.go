package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerateLORRequest is the body of both the template and the AI generation
// endpoints. Purpose, university and program are mandatory; template_id
// optionally pins a template (template path) or supplies a style reference
// (AI path).
type GenerateLORRequest struct {
	StudentID         string `json:"student_id" validate:"required,uuid"`
	Purpose           string `json:"purpose" validate:"required"`
	University        string `json:"university" validate:"required"`
	Program           string `json:"program" validate:"required"`
	TemplateID        string `json:"template_id" validate:"omitempty,uuid"`
	FacultyName       string `json:"faculty_name" validate:"required"`
	FacultyDepartment string `json:"faculty_department"`
}

type CreateTemplateRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	IsDefault bool   `json:"is_default"`
}

type UpdateTemplateRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsDefault *bool  `json:"is_default"`
}

type LORRequestDTO struct {
	ID                uuid.UUID       `json:"id"`
	StudentID         uuid.UUID       `json:"student_id"`
	Purpose           string          `json:"purpose"`
	University        string          `json:"university"`
	Program           string          `json:"program"`
	Status            string          `json:"status"`
	Deadline          time.Time       `json:"deadline"`
	GeneratedContent  string          `json:"generated_content"`
	TemplateUsed      *uuid.UUID      `json:"template_used,omitempty"`
	FacultyName       string          `json:"faculty_name"`
	FacultyDepartment string          `json:"faculty_department"`
	Source            string          `json:"source"`
	ModelUsed         string          `json:"model_used,omitempty"`
	Attempts          int             `json:"attempts"`
	GenerationErrors  json.RawMessage `json:"generation_errors,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// RecommendationDTO is one suggested letter angle from the strengths
// analysis.
type RecommendationDTO struct {
	Area         string `json:"area"`
	Suggestion   string `json:"suggestion"`
	TemplateType string `json:"template_type"`
}
