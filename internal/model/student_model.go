package model

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(120)" json:"name"`
	RollNo       string    `gorm:"type:varchar(50);uniqueIndex" json:"roll_no"`
	Email        string    `gorm:"type:varchar(120)" json:"email"`
	Department   string    `gorm:"type:varchar(120)" json:"department"`
	Semester     int       `json:"semester"`
	Program      string    `gorm:"type:varchar(120)" json:"program"`
	CGPA         *float64  `gorm:"type:numeric(4,2)" json:"cgpa"` // 0-10 scale
	Skills       []string  `gorm:"serializer:json;type:jsonb" json:"skills"`
	Achievements []string  `gorm:"serializer:json;type:jsonb" json:"achievements"`

	// Legacy single placement offer; older records carry it instead of rows
	// in the placements table. Both shapes are merged when building the
	// letter profile.
	PlacementCompany string `gorm:"type:varchar(120)" json:"placement_company"`
	PlacementPackage string `gorm:"type:varchar(50)" json:"placement_package"`

	Internships []Internship `gorm:"foreignKey:StudentID" json:"internships"`
	Placements  []Placement  `gorm:"foreignKey:StudentID" json:"placements"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Internship struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID uuid.UUID  `gorm:"type:uuid;index" json:"student_id"`
	Company   string     `gorm:"type:varchar(120)" json:"company"`
	Position  string     `gorm:"type:varchar(120)" json:"position"`
	Duration  string     `gorm:"type:varchar(50)" json:"duration"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Stipend   float64    `json:"stipend"`
	Status    string     `gorm:"type:varchar(20)" json:"status"` // Applied, Ongoing, Completed, Terminated
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Placement struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID     uuid.UUID  `gorm:"type:uuid;index" json:"student_id"`
	Company       string     `gorm:"type:varchar(120)" json:"company"`
	Position      string     `gorm:"type:varchar(120)" json:"position"`
	Package       string     `gorm:"type:varchar(50)" json:"package"`
	PlacementDate *time.Time `json:"placement_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
