package usecase

import (
	"errors"
	"fmt"

	"github.com/campushub/lor-service/internal/model"
	"github.com/campushub/lor-service/internal/repository"
	"github.com/campushub/lor-service/internal/response"
	"gorm.io/gorm"
)

type TemplateUsecase struct {
	templates repository.LORTemplateRepositoryInterface
}

func NewTemplateUsecase(templates repository.LORTemplateRepositoryInterface) *TemplateUsecase {
	return &TemplateUsecase{templates: templates}
}

func (uc *TemplateUsecase) List(page, pageSize int) ([]model.LORTemplate, *response.Pagination, error) {
	return uc.templates.FindPage(page, pageSize)
}

func (uc *TemplateUsecase) Get(id string) (*model.LORTemplate, error) {
	template, err := uc.templates.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("could not load template: %w", err)
	}
	return template, nil
}

func (uc *TemplateUsecase) Create(title, content string, isDefault bool) (*model.LORTemplate, error) {
	template := &model.LORTemplate{
		Title:     title,
		Content:   content,
		IsDefault: isDefault,
	}
	if err := uc.templates.Create(template); err != nil {
		return nil, fmt.Errorf("could not create template: %w", err)
	}
	return template, nil
}

func (uc *TemplateUsecase) Update(id, title, content string, isDefault *bool) (*model.LORTemplate, error) {
	template, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	if title != "" {
		template.Title = title
	}
	if content != "" {
		template.Content = content
	}
	if isDefault != nil {
		template.IsDefault = *isDefault
	}
	if err := uc.templates.Update(template); err != nil {
		return nil, fmt.Errorf("could not update template: %w", err)
	}
	return template, nil
}

func (uc *TemplateUsecase) Delete(id string) error {
	if _, err := uc.Get(id); err != nil {
		return err
	}
	if err := uc.templates.Delete(id); err != nil {
		return fmt.Errorf("could not delete template: %w", err)
	}
	return nil
}
