package handler

import (
	"speak-byte/internal/domain"
	"speak-byte/internal/middleware"
	"speak-byte/internal/service"
	"speak-byte/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PointsHandler handles course point HTTP requests. Routes are expected to
// run behind ValidateCourseID so the course id is already checked.
type PointsHandler struct {
	service service.PointsService
}

// NewPointsHandler creates a new PointsHandler instance
func NewPointsHandler(service service.PointsService) *PointsHandler {
	return &PointsHandler{service: service}
}

// GetMyPoints godoc
// @Summary Get my course points
// @Description Returns the weighted point breakdown of the caller in a course
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.PointsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /courses/{courseId}/points/me [get]
func (h *PointsHandler) GetMyPoints(c *fiber.Ctx) error {
	userID, courseID, err := userAndCourse(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetUserPoints(c.UserContext(), userID, courseID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SyncMyPoints godoc
// @Summary Persist my course points
// @Description Recomputes the caller's total, stores it and refreshes the course leaderboard
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.SyncPointsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /courses/{courseId}/points/me/sync [post]
func (h *PointsHandler) SyncMyPoints(c *fiber.Ctx) error {
	userID, courseID, err := userAndCourse(c)
	if err != nil {
		return err
	}

	resp, err := h.service.SyncUserPoints(c.UserContext(), userID, courseID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetTeamPoints godoc
// @Summary Get team points
// @Description Sums the points of every active student of a course
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.TeamPointsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /courses/{courseId}/team-points [get]
func (h *PointsHandler) GetTeamPoints(c *fiber.Ctx) error {
	resp, err := h.service.GetTeamPoints(c.UserContext(), courseID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetRanking godoc
// @Summary Get course ranking
// @Description Returns the top students of a course by persisted points
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param limit query int false "Number of entries (1-100)" default(10)
// @Success 200 {object} dto.RankingResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /courses/{courseId}/ranking [get]
func (h *PointsHandler) GetRanking(c *fiber.Ctx) error {
	limit, ok := c.Locals(middleware.LimitKey).(int)
	if !ok {
		limit = validation.DefaultRankingLimit
	}

	resp, err := h.service.GetRanking(c.UserContext(), courseID(c), limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func courseID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.CourseIDKey).(string); ok {
		return id
	}
	return c.Params("courseId")
}

func userAndCourse(c *fiber.Ctx) (string, string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", "", domain.NewUnauthorizedError("User not authenticated")
	}
	return userID, courseID(c), nil
}
