package middleware

import (
	"speak-byte/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	CourseIDKey = "validated_course_id"
	LimitKey    = "validated_limit"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	if v == nil {
		v = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: v}
}

// ValidateCourseID validates the courseId path parameter
func (vm *ValidationMiddleware) ValidateCourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Params("courseId")
		if errs := vm.validator.ValidateCourseID(courseID); len(errs) > 0 {
			return errs // handled by ErrorHandler
		}
		c.Locals(CourseIDKey, courseID)
		return c.Next()
	}
}

// ValidateRankingLimit validates the optional limit query parameter
func (vm *ValidationMiddleware) ValidateRankingLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, errs := vm.validator.ValidateRankingLimit(c.Query("limit"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(LimitKey, limit)
		return c.Next()
	}
}
