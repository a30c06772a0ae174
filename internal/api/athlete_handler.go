package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/service"
)

// AthleteHandler holds the healthlifting service dependency.
type AthleteHandler struct {
	healthliftingService service.HealthliftingService
}

// NewAthleteHandler creates a new AthleteHandler.
func NewAthleteHandler(healthliftingService service.HealthliftingService) *AthleteHandler {
	return &AthleteHandler{healthliftingService: healthliftingService}
}

// --- DTOs for API (Data Transfer Objects) ---

// PersonalInformationRequest carries the identity data of a person.
type PersonalInformationRequest struct {
	Name         string `json:"name" binding:"required"`
	Surname      string `json:"surname" binding:"required"`
	DocumentType string `json:"documentType" binding:"required,oneof=DNI NIE PASSPORT"`
	Document     string `json:"document" binding:"required"`
}

func (r PersonalInformationRequest) toDomain() domain.PersonalInformation {
	return domain.PersonalInformation{
		Name:         r.Name,
		Surname:      r.Surname,
		DocumentType: domain.DocumentType(r.DocumentType),
		Document:     r.Document,
	}
}

// CreateAthleteRequest defines the expected JSON for creating an athlete.
type CreateAthleteRequest struct {
	Age                 int                        `json:"age" binding:"omitempty,gte=0"`
	Height              string                     `json:"height"`
	PersonalInformation PersonalInformationRequest `json:"personalInformation" binding:"required"`
}

// ReplaceAthleteRequest is the full-resource form used by PUT. Fields left
// out of the body are persisted at their zero value, the id lists included.
type ReplaceAthleteRequest struct {
	Age                 int                        `json:"age" binding:"omitempty,gte=0"`
	Height              string                     `json:"height"`
	PersonalInformation PersonalInformationRequest `json:"personalInformation" binding:"required"`
	AppointmentIDs      []string                   `json:"appointmentIds"`
	TrainingSheetIDs    []string                   `json:"trainingSheetIds"`
}

// PatchAthleteRequest carries a partial update; absent fields are left
// untouched.
type PatchAthleteRequest struct {
	Age                 *int                             `json:"age"`
	Height              *string                          `json:"height"`
	PersonalInformation *domain.PersonalInformationPatch `json:"personalInformation"`
}

// AthleteResponse is the DTO for returning athlete details.
type AthleteResponse struct {
	ID                  string                     `json:"id"`
	Age                 int                        `json:"age"`
	Height              string                     `json:"height,omitempty"`
	PersonalInformation domain.PersonalInformation `json:"personalInformation"`
	AppointmentIDs      []string                   `json:"appointmentIds"`
	TrainingSheetIDs    []string                   `json:"trainingSheetIds"`
}

// MapAthleteToResponse converts a domain.Athlete to AthleteResponse DTO.
func MapAthleteToResponse(athlete *domain.Athlete) AthleteResponse {
	if athlete == nil {
		return AthleteResponse{}
	}
	return AthleteResponse{
		ID:                  athlete.ID.Hex(),
		Age:                 athlete.Age,
		Height:              athlete.Height,
		PersonalInformation: athlete.PersonalInformation,
		AppointmentIDs:      idsToHex(athlete.AppointmentIDs),
		TrainingSheetIDs:    idsToHex(athlete.TrainingSheetIDs),
	}
}

// --- Handler Methods ---

// CreateAthlete godoc
// @Summary Register a new athlete
// @Tags Athletes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param athlete body CreateAthleteRequest true "Athlete details"
// @Success 201 {object} AthleteResponse "Athlete created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /athletes [post]
func (h *AthleteHandler) CreateAthlete(c *gin.Context) {
	var req CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	athlete := &domain.Athlete{
		Age:                 req.Age,
		Height:              req.Height,
		PersonalInformation: req.PersonalInformation.toDomain(),
	}

	id, err := h.healthliftingService.CreateAthlete(c.Request.Context(), athlete)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	athlete.ID = id
	c.JSON(http.StatusCreated, MapAthleteToResponse(athlete))
}

// GetAthlete godoc
// @Summary Get an athlete by id
// @Tags Athletes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AthleteResponse
// @Success 204 "No athlete with that id"
// @Router /athletes/{id} [get]
func (h *AthleteHandler) GetAthlete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	athlete, err := h.healthliftingService.GetAthlete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if athlete == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, MapAthleteToResponse(athlete))
}

// GetAthleteByDocument handles GET /athletes/document/{document}.
func (h *AthleteHandler) GetAthleteByDocument(c *gin.Context) {
	athlete, err := h.healthliftingService.FindAthleteByDocument(c.Request.Context(), c.Param("document"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if athlete == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, MapAthleteToResponse(athlete))
}

// GetAthletes handles GET /athletes with page/size/sort query parameters.
func (h *AthleteHandler) GetAthletes(c *gin.Context) {
	page, err := h.healthliftingService.GetAthletes(c.Request.Context(), parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapAthleteToResponse))
}

// PatchAthlete handles PATCH /athletes/{id}. Only the fields present in the
// body are updated.
func (h *AthleteHandler) PatchAthlete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PatchAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patch := domain.AthletePatch{
		ID:                  id,
		Age:                 req.Age,
		Height:              req.Height,
		PersonalInformation: req.PersonalInformation,
	}
	if err := h.healthliftingService.PatchAthlete(c.Request.Context(), patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceAthlete handles PUT /athletes/{id}, overwriting the stored record.
func (h *AthleteHandler) ReplaceAthlete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ReplaceAthleteRequest
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

	athlete := &domain.Athlete{
		ID:                  id,
		Age:                 req.Age,
		Height:              req.Height,
		PersonalInformation: req.PersonalInformation.toDomain(),
		AppointmentIDs:      appointmentIDs,
		TrainingSheetIDs:    trainingSheetIDs,
	}
	if err := h.healthliftingService.ReplaceAthlete(c.Request.Context(), athlete); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAthlete handles DELETE /athletes/{id} (soft delete).
func (h *AthleteHandler) DeleteAthlete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.healthliftingService.DeleteAthlete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
