package handler

import (
	"errors"

	"github.com/campushub/lor-service/internal/dto"
	"github.com/campushub/lor-service/internal/usecase"
	"github.com/campushub/lor-service/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type LORTemplateHandler struct {
	uc       *usecase.TemplateUsecase
	validate *validator.Validate
}

func NewLORTemplateHandler(uc *usecase.TemplateUsecase) *LORTemplateHandler {
	return &LORTemplateHandler{uc: uc, validate: validator.New()}
}

func (h *LORTemplateHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/templates")
	api.Get("/", h.List)
	api.Get("/:id", h.Get)
	api.Post("/", h.Create)
	api.Put("/:id", h.Update)
	api.Delete("/:id", h.Delete)
}

func (h *LORTemplateHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	templates, pagination, err := h.uc.List(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list templates",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get templates",
		Data:       templates,
		Pagination: pagination,
	})
}

func (h *LORTemplateHandler) Get(c *fiber.Ctx) error {
	template, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return h.templateError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get template",
		Data:    template,
	})
}

func (h *LORTemplateHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "validation failed",
			Details: validationDetails(err),
		})
	}

	template, err := h.uc.Create(req.Title, req.Content, req.IsDefault)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create template",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create template",
		Data:    template,
	})
}

func (h *LORTemplateHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	template, err := h.uc.Update(c.Params("id"), req.Title, req.Content, req.IsDefault)
	if err != nil {
		return h.templateError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update template",
		Data:    template,
	})
}

func (h *LORTemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return h.templateError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success delete template",
	})
}

func (h *LORTemplateHandler) templateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrTemplateNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "template not found",
		})
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "template operation failed",
	}, err)
}
