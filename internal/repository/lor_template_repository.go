package repository

import (
	"math"

	"github.com/campushub/lor-service/internal/model"
	"github.com/campushub/lor-service/internal/response"
	"gorm.io/gorm"
)

type LORTemplateRepositoryInterface interface {
	FindAll() ([]model.LORTemplate, error)
	FindPage(page, pageSize int) ([]model.LORTemplate, *response.Pagination, error)
	FindByID(id string) (*model.LORTemplate, error)
	Create(template *model.LORTemplate) error
	Update(template *model.LORTemplate) error
	Delete(id string) error
	SeedDefaults() error
}

type LORTemplateRepository struct {
	db *gorm.DB
}

func NewLORTemplateRepository(db *gorm.DB) *LORTemplateRepository {
	return &LORTemplateRepository{db}
}

// FindAll returns the whole catalog in insertion order, the order the
// selector uses to break score ties.
func (r *LORTemplateRepository) FindAll() ([]model.LORTemplate, error) {
	var templates []model.LORTemplate
	err := r.db.Order("created_at asc").Find(&templates).Error
	return templates, err
}

func (r *LORTemplateRepository) FindPage(page, pageSize int) ([]model.LORTemplate, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.Model(&model.LORTemplate{}).Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var templates []model.LORTemplate
	offset := (page - 1) * pageSize
	err := r.db.Order("created_at asc").Offset(offset).Limit(pageSize).Find(&templates).Error
	if err != nil {
		return nil, nil, err
	}

	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int64(math.Ceil(float64(total) / float64(pageSize))),
		TotalItems: total,
		HasMore:    int64(offset+len(templates)) < total,
		From:       offset + 1,
		To:         offset + len(templates),
	}
	return templates, pagination, nil
}

func (r *LORTemplateRepository) FindByID(id string) (*model.LORTemplate, error) {
	var template model.LORTemplate
	err := r.db.First(&template, "id = ?", id).Error
	return &template, err
}

func (r *LORTemplateRepository) Create(template *model.LORTemplate) error {
	return r.db.Create(template).Error
}

func (r *LORTemplateRepository) Update(template *model.LORTemplate) error {
	return r.db.Save(template).Error
}

func (r *LORTemplateRepository) Delete(id string) error {
	return r.db.Delete(&model.LORTemplate{}, "id = ?", id).Error
}

// SeedDefaults inserts the stock template catalog when the table is empty.
func (r *LORTemplateRepository) SeedDefaults() error {
	var count int64
	if err := r.db.Model(&model.LORTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	templates := defaultTemplates()
	return r.db.Create(&templates).Error
}
