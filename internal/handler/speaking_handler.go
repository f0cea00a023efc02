package handler

import (
	"speak-byte/internal/domain"
	"speak-byte/internal/dto"
	"speak-byte/internal/middleware"
	"speak-byte/internal/service"
	"speak-byte/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SpeakingHandler handles speaking-practice HTTP requests
type SpeakingHandler struct {
	service   service.SpeakingService
	validator *validation.Validator
}

// NewSpeakingHandler creates a new SpeakingHandler instance
func NewSpeakingHandler(service service.SpeakingService, validator *validation.Validator) *SpeakingHandler {
	return &SpeakingHandler{
		service:   service,
		validator: validator,
	}
}

// Compare godoc
// @Summary Compare a transcript with a sentence
// @Description Judges a spoken transcript against an ad-hoc reference sentence without recording anything
// @Tags speaking
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Transcript and reference"
// @Success 200 {object} dto.SpeakingResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /speaking/compare [post]
func (h *SpeakingHandler) Compare(c *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidArgumentError("Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return err
	}

	resp, err := h.service.Compare(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CheckSpeaking godoc
// @Summary Check a spoken sentence
// @Description Judges a transcript against a stored sentence, records the attempt and reveals the answer when correct
// @Tags speaking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckSpeakingRequest true "Sentence number and transcript"
// @Success 200 {object} dto.SpeakingResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /speaking/check [post]
func (h *SpeakingHandler) CheckSpeaking(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("User not authenticated")
	}

	var req dto.CheckSpeakingRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidArgumentError("Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return err
	}

	resp, err := h.service.CheckSpeaking(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
