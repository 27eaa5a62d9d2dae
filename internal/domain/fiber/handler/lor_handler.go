package handler

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/campushub/lor-service/internal/dto"
	"github.com/campushub/lor-service/internal/lor"
	"github.com/campushub/lor-service/internal/middleware"
	"github.com/campushub/lor-service/internal/model"
	"github.com/campushub/lor-service/internal/service"
	"github.com/campushub/lor-service/internal/usecase"
	"github.com/campushub/lor-service/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type LORHandler struct {
	uc       *usecase.LORUsecase
	validate *validator.Validate
}

func NewLORHandler(uc *usecase.LORUsecase) *LORHandler {
	return &LORHandler{uc: uc, validate: validator.New()}
}

func (h *LORHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/lor/generate", middleware.RateLimiter(20, 1*time.Minute), h.Generate)
	api.Post("/lor/generate-ai", middleware.RateLimiter(5, 1*time.Minute), h.GenerateAI)
	api.Get("/lor/recommendations/:studentId", h.Recommendations)
	api.Get("/lor/student/:studentId", h.ListByStudent)
	api.Get("/lor/:id", h.GetRequest)
	api.Get("/students/:id", h.GetStudent)
}

func (h *LORHandler) ListByStudent(c *fiber.Ctx) error {
	requests, err := h.uc.ListRequestsByStudent(c.Params("studentId"))
	if err != nil {
		return h.generationError(c, err)
	}

	data := make([]dto.LORRequestDTO, 0, len(requests))
	for i := range requests {
		data = append(data, toRequestDTO(&requests[i]))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get lor requests",
		Data:    data,
	})
}

func (h *LORHandler) GetStudent(c *fiber.Ctx) error {
	student, err := h.uc.GetStudent(c.Params("id"))
	if err != nil {
		return h.generationError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get student",
		Data:    student,
	})
}

func (h *LORHandler) Generate(c *fiber.Ctx) error {
	req, ok := h.parseGenerateBody(c)
	if !ok {
		return nil
	}

	request, err := h.uc.GenerateFromTemplate(req.StudentID, letterRequest(req), faculty(req), req.TemplateID)
	if err != nil {
		return h.generationError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Letter generated",
		Data:    toRequestDTO(request),
	})
}

func (h *LORHandler) GenerateAI(c *fiber.Ctx) error {
	req, ok := h.parseGenerateBody(c)
	if !ok {
		return nil
	}

	request, err := h.uc.GenerateWithAI(c.UserContext(), req.StudentID, letterRequest(req), faculty(req), req.TemplateID)
	if err != nil {
		return h.generationError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Letter generated",
		Data:    toRequestDTO(request),
	})
}

func (h *LORHandler) Recommendations(c *fiber.Ctx) error {
	name, tags, recs, err := h.uc.Recommendations(c.Params("studentId"))
	if err != nil {
		return h.generationError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get recommendations",
		Data: fiber.Map{
			"student_name":    name,
			"strengths":       tags,
			"recommendations": recs,
		},
	})
}

func (h *LORHandler) GetRequest(c *fiber.Ctx) error {
	request, err := h.uc.GetRequest(c.Params("id"))
	if err != nil {
		return h.generationError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get lor request",
		Data:    toRequestDTO(request),
	})
}

func (h *LORHandler) parseGenerateBody(c *fiber.Ctx) (*dto.GenerateLORRequest, bool) {
	var req dto.GenerateLORRequest
	if err := c.BodyParser(&req); err != nil {
		_ = util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
		return nil, false
	}
	if err := h.validate.Struct(&req); err != nil {
		_ = util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "validation failed",
			Details: validationDetails(err),
		})
		return nil, false
	}
	return &req, true
}

func (h *LORHandler) generationError(c *fiber.Ctx, err error) error {
	var openErr *service.CircuitOpenError
	switch {
	case errors.Is(err, usecase.ErrStudentNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "student not found",
		})
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "template not found",
		})
	case errors.Is(err, usecase.ErrRequestNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "lor request not found",
		})
	case errors.Is(err, usecase.ErrNoSuitableTemplate):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "no suitable template found",
		})
	case errors.As(err, &openErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusServiceUnavailable,
			Message: "letter generation temporarily unavailable",
			Details: fiber.Map{"retry_after_ms": openErr.RetryAfter.Milliseconds()},
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to generate letter",
		}, err)
	}
}

func letterRequest(req *dto.GenerateLORRequest) lor.LetterRequest {
	return lor.LetterRequest{
		Purpose:    req.Purpose,
		University: req.University,
		Program:    req.Program,
	}
}

func faculty(req *dto.GenerateLORRequest) lor.Faculty {
	return lor.Faculty{
		Name:       req.FacultyName,
		Department: req.FacultyDepartment,
	}
}

func toRequestDTO(request *model.LORRequest) dto.LORRequestDTO {
	out := dto.LORRequestDTO{
		ID:                request.ID,
		StudentID:         request.StudentID,
		Purpose:           request.Purpose,
		University:        request.University,
		Program:           request.Program,
		Status:            request.Status,
		Deadline:          request.Deadline,
		GeneratedContent:  request.GeneratedContent,
		TemplateUsed:      request.TemplateUsed,
		FacultyName:       request.FacultyName,
		FacultyDepartment: request.FacultyDepartment,
		Source:            request.Source,
		ModelUsed:         request.ModelUsed,
		Attempts:          request.Attempts,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}
	if request.GenerationErrors != "" {
		out.GenerationErrors = json.RawMessage(request.GenerationErrors)
	}
	return out
}

func validationDetails(err error) map[string]string {
	details := map[string]string{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
	}
	return details
}
