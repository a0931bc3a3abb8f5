package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/devalimotahari/uni-schedule-form/internal/domain"
	"github.com/devalimotahari/uni-schedule-form/internal/middleware"
	"github.com/devalimotahari/uni-schedule-form/internal/validation"
)

const (
	msgSubmitSuccess = "اطلاعات با موفقیت ثبت شد."
	msgSubmitFailure = "متاسفانه مشکلی در ذخیره اطلاعات پیش آمده است."
	msgFormInvalid   = "لطفا خطاهای فرم را برطرف نمایید."
	msgBadPayload    = "فرمت اطلاعات ارسالی صحیح نمی‌باشد."
)

// ProfessorStore is the persistence surface the professor handlers need.
type ProfessorStore interface {
	CreateProfessor(ctx context.Context, professor *domain.Professor) error
	ListProfessors(ctx context.Context) ([]domain.Professor, error)
	GetCoursesByIDs(ctx context.Context, ids []string) ([]domain.Course, error)
}

type submitResponse struct {
	domain.SubmitResult
	Errors map[string][]string `json:"errors,omitempty"`
}

type listResponse struct {
	Fetched    int                           `json:"fetched"`
	DurationMS int64                         `json:"duration_ms"`
	Professors []domain.ProfessorWithCourses `json:"professors"`
}

func SetupProfessorRoutes(e *echo.Echo, storage ProfessorStore, logger *zap.Logger, listSecret string) {
	e.POST("/api/professors", SubmitProfessor(storage, logger))
	e.GET("/api/list/:secret", ListProfessors(storage, logger), middleware.ListSecret(listSecret))
}

// SubmitProfessor godoc
// @Summary Register a professor
// @Description Validate a professor submission and persist it
// @Tags professors
// @Accept mpfd
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Professor name"
// @Param nationalCode formData string false "National code, exactly 10 characters when present"
// @Param mobile formData string false "Mobile number, exactly 11 characters when present"
// @Param days formData string true "JSON array of schedule entries"
// @Param preferDays formData string true "JSON array of day codes, or repeated scalar field"
// @Param courses formData string true "JSON array of course ids, or repeated scalar field"
// @Success 200 {object} domain.SubmitResult
// @Failure 400 {object} domain.SubmitResult
// @Failure 500 {object} domain.SubmitResult
// @Router /professors [post]
func SubmitProfessor(storage ProfessorStore, logger *zap.Logger) echo.HandlerFunc {
	professorValidator := validation.NewProfessor()

	return func(c echo.Context) error {
		sub, fieldErrs := parseSubmission(c)
		if fieldErrs == nil {
			fieldErrs = professorValidator.Validate(sub)
		}

		if fieldErrs != nil {
			return c.JSON(http.StatusBadRequest, submitResponse{
				SubmitResult: domain.SubmitResult{Success: false, Message: msgFormInvalid},
				Errors:       fieldErrs,
			})
		}

		professor := &domain.Professor{
			ID:           uuid.NewString(),
			Name:         sub.Name,
			NationalCode: optional(sub.NationalCode),
			Mobile:       optional(sub.Mobile),
			PreferDays:   sub.PreferDays,
			Days:         sub.Days,
			Courses:      sub.Courses,
		}

		if err := storage.CreateProfessor(c.Request().Context(), professor); err != nil {
			logger.Error("failed to save professor",
				zap.Error(err),
				zap.String("professor_id", professor.ID),
			)
			return c.JSON(http.StatusInternalServerError, submitResponse{
				SubmitResult: domain.SubmitResult{Success: false, Message: msgSubmitFailure},
			})
		}

		return c.JSON(http.StatusOK, submitResponse{
			SubmitResult: domain.SubmitResult{Success: true, Message: msgSubmitSuccess},
		})
	}
}

// ListProfessors godoc
// @Summary List registered professors
// @Description All professors with their course details, gated by the list secret
// @Tags professors
// @Produce json
// @Param secret path string true "List secret"
// @Success 200 {object} listResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /list/{secret} [get]
func ListProfessors(storage ProfessorStore, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		professors, err := storage.ListProfessors(c.Request().Context())
		if err != nil {
			logger.Error("failed to fetch professors", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch professors"})
		}

		list := make([]domain.ProfessorWithCourses, 0, len(professors))
		for _, professor := range professors {
			courses, err := storage.GetCoursesByIDs(c.Request().Context(), professor.Courses)
			if err != nil {
				logger.Error("failed to fetch courses for professor",
					zap.Error(err),
					zap.String("professor_id", professor.ID),
				)
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch professors"})
			}

			list = append(list, domain.ProfessorWithCourses{
				Professor:   professor,
				CourseItems: courses,
			})
		}

		return c.JSON(http.StatusOK, listResponse{
			Fetched:    len(list),
			DurationMS: time.Since(start).Milliseconds(),
			Professors: list,
		})
	}
}

// parseSubmission turns the form field bag into a submission. Array fields
// arrive either JSON-encoded or as repeated scalars; both forms are accepted.
func parseSubmission(c echo.Context) (*domain.ProfessorSubmission, map[string][]string) {
	sub := &domain.ProfessorSubmission{
		Name:         c.FormValue("name"),
		NationalCode: c.FormValue("nationalCode"),
		Mobile:       c.FormValue("mobile"),
	}

	fieldErrs := map[string][]string{}

	if raw := c.FormValue("days"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &sub.Days); err != nil {
			fieldErrs["days"] = append(fieldErrs["days"], msgBadPayload)
		}
	}

	preferDays, ok := dayCodeField(c, "preferDays")
	if !ok {
		fieldErrs["preferDays"] = append(fieldErrs["preferDays"], msgBadPayload)
	}
	sub.PreferDays = preferDays

	courses, ok := stringField(c, "courses")
	if !ok {
		fieldErrs["courses"] = append(fieldErrs["courses"], msgBadPayload)
	}
	sub.Courses = courses

	if len(fieldErrs) == 0 {
		return sub, nil
	}
	return sub, fieldErrs
}

func stringField(c echo.Context, name string) ([]string, bool) {
	params, err := c.FormParams()
	if err != nil {
		return nil, false
	}

	raw := params[name]
	if len(raw) == 1 && strings.HasPrefix(strings.TrimSpace(raw[0]), "[") {
		var values []string
		if err := json.Unmarshal([]byte(raw[0]), &values); err != nil {
			return nil, false
		}
		return values, true
	}

	return raw, true
}

func dayCodeField(c echo.Context, name string) ([]domain.DayCode, bool) {
	params, err := c.FormParams()
	if err != nil {
		return nil, false
	}

	raw := params[name]
	if len(raw) == 1 && strings.HasPrefix(strings.TrimSpace(raw[0]), "[") {
		var values []domain.DayCode
		if err := json.Unmarshal([]byte(raw[0]), &values); err != nil {
			return nil, false
		}
		return values, true
	}

	values := make([]domain.DayCode, 0, len(raw))
	for _, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, false
		}
		values = append(values, domain.DayCode(n))
	}
	return values, true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
