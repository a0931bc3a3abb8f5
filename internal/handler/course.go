package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devalimotahari/uni-schedule-form/internal/domain"
)

// CourseStore is the persistence surface the course handlers need.
type CourseStore interface {
	GetAllCourses(ctx context.Context) ([]domain.Course, error)
}

func SetupCourseRoutes(e *echo.Echo, storage CourseStore) {
	e.GET("/api/courses", GetCourses(storage))
}

// GetCourses godoc
// @Summary Get all courses
// @Description Get the course catalog the registration form offers
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {array} domain.Course
// @Failure 500 {object} map[string]string
// @Router /courses [get]
func GetCourses(storage CourseStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		courses, err := storage.GetAllCourses(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch courses"})
		}

		return c.JSON(http.StatusOK, courses)
	}
}
