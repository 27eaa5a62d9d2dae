package model

import (
	"time"

	"github.com/google/uuid"
)

type LORRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;index" json:"student_id"`

	Purpose    string    `gorm:"type:varchar(200)" json:"purpose"`
	University string    `gorm:"type:varchar(200)" json:"university"`
	Program    string    `gorm:"type:varchar(200)" json:"program"`
	Deadline   time.Time `json:"deadline"`
	Status     string    `gorm:"type:varchar(20)" json:"status"` // pending, approved, rejected, completed
	Remarks    string    `gorm:"type:text" json:"remarks"`

	GeneratedContent string     `gorm:"type:text" json:"generated_content"`
	TemplateUsed     *uuid.UUID `gorm:"type:uuid" json:"template_used"`

	FacultyName       string `gorm:"type:varchar(120)" json:"faculty_name"`
	FacultyDepartment string `gorm:"type:varchar(120)" json:"faculty_department"`

	// Generation metadata: where the text came from and what it took.
	Source           string `gorm:"type:varchar(20)" json:"source"` // template, ai, fallback
	ModelUsed        string `gorm:"type:varchar(100)" json:"model_used"`
	Attempts         int    `json:"attempts"`
	GenerationErrors string `gorm:"type:jsonb" json:"generation_errors"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
