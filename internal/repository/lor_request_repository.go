package repository

import (
	"github.com/campushub/lor-service/internal/model"
	"gorm.io/gorm"
)

type LORRequestRepositoryInterface interface {
	Create(request *model.LORRequest) error
	Update(request *model.LORRequest) error
	FindByID(id string) (*model.LORRequest, error)
	FindByStudent(studentID string) ([]model.LORRequest, error)
}

type LORRequestRepository struct {
	db *gorm.DB
}

func NewLORRequestRepository(db *gorm.DB) *LORRequestRepository {
	return &LORRequestRepository{db}
}

func (r *LORRequestRepository) Create(request *model.LORRequest) error {
	return r.db.Create(request).Error
}

func (r *LORRequestRepository) Update(request *model.LORRequest) error {
	return r.db.Save(request).Error
}

func (r *LORRequestRepository) FindByID(id string) (*model.LORRequest, error) {
	var request model.LORRequest
	err := r.db.First(&request, "id = ?", id).Error
	return &request, err
}

func (r *LORRequestRepository) FindByStudent(studentID string) ([]model.LORRequest, error) {
	var requests []model.LORRequest
	err := r.db.Order("created_at desc").Find(&requests, "student_id = ?", studentID).Error
	return requests, err
}
