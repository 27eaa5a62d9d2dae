package repository

import (
	"github.com/campushub/lor-service/internal/model"
	"gorm.io/gorm"
)

type StudentRepositoryInterface interface {
	FindByID(id string) (*model.Student, error)
	Create(student *model.Student) error
	Update(student *model.Student) error
}

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db}
}

// FindByID loads a student with internships and placements attached.
func (r *StudentRepository) FindByID(id string) (*model.Student, error) {
	var student model.Student
	err := r.db.
		Preload("Internships").
		Preload("Placements").
		First(&student, "id = ?", id).Error
	return &student, err
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *StudentRepository) Update(student *model.Student) error {
	return r.db.Save(student).Error
}
