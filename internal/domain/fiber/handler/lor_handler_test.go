package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campushub/lor-service/internal/model"
	"github.com/campushub/lor-service/internal/response"
	"github.com/campushub/lor-service/internal/service"
	"github.com/campushub/lor-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStudentRepo struct {
	students map[string]*model.Student
}

func (r *fakeStudentRepo) FindByID(id string) (*model.Student, error) {
	if s, ok := r.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) Create(*model.Student) error { return nil }
func (r *fakeStudentRepo) Update(*model.Student) error { return nil }

type fakeTemplateRepo struct {
	templates []model.LORTemplate
}

func (r *fakeTemplateRepo) FindAll() ([]model.LORTemplate, error) { return r.templates, nil }

func (r *fakeTemplateRepo) FindPage(int, int) ([]model.LORTemplate, *response.Pagination, error) {
	return r.templates, &response.Pagination{Page: 1, PageSize: 20}, nil
}

func (r *fakeTemplateRepo) FindByID(id string) (*model.LORTemplate, error) {
	for i := range r.templates {
		if r.templates[i].ID.String() == id {
			return &r.templates[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTemplateRepo) Create(t *model.LORTemplate) error {
	t.ID = uuid.New()
	r.templates = append(r.templates, *t)
	return nil
}

func (r *fakeTemplateRepo) Update(*model.LORTemplate) error { return nil }
func (r *fakeTemplateRepo) Delete(string) error             { return nil }
func (r *fakeTemplateRepo) SeedDefaults() error             { return nil }

type fakeRequestRepo struct{}

func (r *fakeRequestRepo) Create(req *model.LORRequest) error { return nil }
func (r *fakeRequestRepo) Update(*model.LORRequest) error     { return nil }

func (r *fakeRequestRepo) FindByID(string) (*model.LORRequest, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRequestRepo) FindByStudent(string) ([]model.LORRequest, error) { return nil, nil }

type fakeGenerator struct {
	err error
}

func (g *fakeGenerator) Generate(context.Context, string) (*service.GenerationResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &service.GenerationResult{Text: "letter", Source: service.SourceAI, ModelUsed: "m", Attempts: 1}, nil
}

func newTestApp(student *model.Student, templates []model.LORTemplate, genErr error) *fiber.App {
	students := &fakeStudentRepo{students: map[string]*model.Student{}}
	if student != nil {
		students.students[student.ID.String()] = student
	}
	uc := usecase.NewLORUsecase(students, &fakeTemplateRepo{templates: templates}, &fakeRequestRepo{}, &fakeGenerator{err: genErr})

	app := fiber.New()
	NewLORHandler(uc).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func sampleStudent() *model.Student {
	c := 8.5
	return &model.Student{
		ID:         uuid.New(),
		Name:       "Priya Sharma",
		RollNo:     "EC-2021-007",
		Department: "Electronics",
		CGPA:       &c,
		Skills:     []string{"Python", "SQL"},
	}
}

func generateBody(studentID string) map[string]any {
	return map[string]any{
		"student_id":   studentID,
		"purpose":      "Masters Program",
		"university":   "Stanford",
		"program":      "EE",
		"faculty_name": "Dr. Rao",
	}
}

func TestGenerate_ValidationFailure(t *testing.T) {
	app := newTestApp(nil, nil, nil)

	resp := postJSON(t, app, "/api/lor/generate", map[string]any{"purpose": "Masters"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "StudentID")
	assert.Contains(t, details, "University")
}

func TestGenerate_StudentNotFound(t *testing.T) {
	app := newTestApp(nil, nil, nil)

	resp := postJSON(t, app, "/api/lor/generate", generateBody(uuid.NewString()))

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "student not found", body["message"])
}

func TestGenerate_Success(t *testing.T) {
	student := sampleStudent()
	templates := []model.LORTemplate{
		{ID: uuid.New(), Title: "General", Content: "Letter for {{name}} of {{department}}.", IsDefault: true},
	}
	app := newTestApp(student, templates, nil)

	resp := postJSON(t, app, "/api/lor/generate", generateBody(student.ID.String()))

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "template", data["source"])
	assert.Equal(t, "Letter for Priya Sharma of Electronics.", data["generated_content"])
}

func TestGenerateAI_CircuitOpenMapsTo503(t *testing.T) {
	student := sampleStudent()
	app := newTestApp(student, nil, &service.CircuitOpenError{RetryAfter: 42 * time.Second})

	resp := postJSON(t, app, "/api/lor/generate-ai", generateBody(student.ID.String()))

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	body := decodeBody(t, resp)
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42000), details["retry_after_ms"])
}

func TestGenerateAI_Success(t *testing.T) {
	student := sampleStudent()
	app := newTestApp(student, nil, nil)

	resp := postJSON(t, app, "/api/lor/generate-ai", generateBody(student.ID.String()))

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ai", data["source"])
	assert.Equal(t, "letter", data["generated_content"])
}

func TestRecommendations_UnknownStudent(t *testing.T) {
	app := newTestApp(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/lor/recommendations/"+uuid.NewString(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
