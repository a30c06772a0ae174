package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/service"
)

// CoachHandler holds the healthlifting service dependency.
type CoachHandler struct {
	healthliftingService service.HealthliftingService
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(healthliftingService service.HealthliftingService) *CoachHandler {
	return &CoachHandler{healthliftingService: healthliftingService}
}

// --- DTOs ---

type CreateCoachRequest struct {
	PersonalInformation PersonalInformationRequest `json:"personalInformation" binding:"required"`
}

type ReplaceCoachRequest struct {
	PersonalInformation PersonalInformationRequest `json:"personalInformation" binding:"required"`
	AppointmentIDs      []string                   `json:"appointmentIds"`
	TrainingSheetIDs    []string                   `json:"trainingSheetIds"`
}

type PatchCoachRequest struct {
	PersonalInformation *domain.PersonalInformationPatch `json:"personalInformation"`
}

type CoachResponse struct {
	ID                  string                     `json:"id"`
	PersonalInformation domain.PersonalInformation `json:"personalInformation"`
	AppointmentIDs      []string                   `json:"appointmentIds"`
	TrainingSheetIDs    []string                   `json:"trainingSheetIds"`
}

// MapCoachToResponse converts a domain.Coach to CoachResponse DTO.
func MapCoachToResponse(coach *domain.Coach) CoachResponse {
	if coach == nil {
		return CoachResponse{}
	}
	return CoachResponse{
		ID:                  coach.ID.Hex(),
		PersonalInformation: coach.PersonalInformation,
		AppointmentIDs:      idsToHex(coach.AppointmentIDs),
		TrainingSheetIDs:    idsToHex(coach.TrainingSheetIDs),
	}
}

// --- Handler Methods ---

// CreateCoach handles POST /coaches.
func (h *CoachHandler) CreateCoach(c *gin.Context) {
	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coach := &domain.Coach{
		PersonalInformation: req.PersonalInformation.toDomain(),
	}

	id, err := h.healthliftingService.CreateCoach(c.Request.Context(), coach)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	coach.ID = id
	c.JSON(http.StatusCreated, MapCoachToResponse(coach))
}

// GetCoach handles GET /coaches/{id}. A missing or soft-deleted coach yields
// 204, not 404.
func (h *CoachHandler) GetCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	coach, err := h.healthliftingService.GetCoach(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if coach == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, MapCoachToResponse(coach))
}

// GetCoachByDocument handles GET /coaches/document/{document}.
func (h *CoachHandler) GetCoachByDocument(c *gin.Context) {
	coach, err := h.healthliftingService.FindCoachByDocument(c.Request.Context(), c.Param("document"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if coach == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, MapCoachToResponse(coach))
}

// GetCoaches handles GET /coaches with page/size/sort query parameters.
func (h *CoachHandler) GetCoaches(c *gin.Context) {
	page, err := h.healthliftingService.GetCoaches(c.Request.Context(), parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapCoachToResponse))
}

// PatchCoach handles PATCH /coaches/{id}.
func (h *CoachHandler) PatchCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PatchCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patch := domain.CoachPatch{
		ID:                  id,
		PersonalInformation: req.PersonalInformation,
	}
	if err := h.healthliftingService.PatchCoach(c.Request.Context(), patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceCoach handles PUT /coaches/{id}.
func (h *CoachHandler) ReplaceCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ReplaceCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	appointmentIDs, err := hexToIDs(req.AppointmentIDs)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid appointment id in appointmentIds.")
		return
	}
	trainingSheetIDs, err := hexToIDs(req.TrainingSheetIDs)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid training sheet id in trainingSheetIds.")
		return
	}

	coach := &domain.Coach{
		ID:                  id,
		PersonalInformation: req.PersonalInformation.toDomain(),
		AppointmentIDs:      appointmentIDs,
		TrainingSheetIDs:    trainingSheetIDs,
	}
	if err := h.healthliftingService.ReplaceCoach(c.Request.Context(), coach); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCoach handles DELETE /coaches/{id} (soft delete).
func (h *CoachHandler) DeleteCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.healthliftingService.DeleteCoach(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
