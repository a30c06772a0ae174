package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/service"
)

// appointmentDateLayout is the wire format for appointment dates, a local
// date-time without zone offset.
const appointmentDateLayout = "2006-01-02T15:04:05"

// AppointmentHandler holds the healthlifting service dependency.
type AppointmentHandler struct {
	healthliftingService service.HealthliftingService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(healthliftingService service.HealthliftingService) *AppointmentHandler {
	return &AppointmentHandler{healthliftingService: healthliftingService}
}

// --- DTOs ---

type TrainingTypeRecordRequest struct {
	TrainingType string `json:"trainingType" binding:"required,oneof=STRENGTH HYPERTROPHY ENDURANCE MOBILITY"`
	Description  string `json:"description"`
}

func (r TrainingTypeRecordRequest) toDomain() domain.TrainingTypeRecord {
	return domain.TrainingTypeRecord{
		TrainingType: domain.TrainingType(r.TrainingType),
		Description:  r.Description,
	}
}

// CreateAppointmentRequest carries only the references and the session data;
// the person name/surname/document snapshot is filled in server side from the
// referenced records.
type CreateAppointmentRequest struct {
	Date               string                    `json:"date" binding:"required"`
	CoachID            string                    `json:"coachId" binding:"required"`
	AthleteID          string                    `json:"athleteId" binding:"required"`
	TrainingTypeRecord TrainingTypeRecordRequest `json:"trainingTypeRecord" binding:"required"`
}

type PatchAppointmentRequest struct {
	Date               *string                         `json:"date"`
	TrainingTypeRecord *domain.TrainingTypeRecordPatch `json:"trainingTypeRecord"`
}

type AppointmentResponse struct {
	ID                 string                    `json:"id"`
	Date               string                    `json:"date"`
	CoachID            string                    `json:"coachId"`
	CoachName          string                    `json:"coachName"`
	CoachSurname       string                    `json:"coachSurname"`
	CoachDocument      string                    `json:"coachDocument"`
	AthleteID          string                    `json:"athleteId"`
	AthleteName        string                    `json:"athleteName"`
	AthleteSurname     string                    `json:"athleteSurname"`
	AthleteDocument    string                    `json:"athleteDocument"`
	TrainingTypeRecord domain.TrainingTypeRecord `json:"trainingTypeRecord"`
}

// MapAppointmentToResponse converts a domain.Appointment to its DTO.
func MapAppointmentToResponse(a *domain.Appointment) AppointmentResponse {
	if a == nil {
		return AppointmentResponse{}
	}
	return AppointmentResponse{
		ID:                 a.ID.Hex(),
		Date:               a.Date.Format(appointmentDateLayout),
		CoachID:            a.CoachID.Hex(),
		CoachName:          a.CoachName,
		CoachSurname:       a.CoachSurname,
		CoachDocument:      a.CoachDocument,
		AthleteID:          a.AthleteID.Hex(),
		AthleteName:        a.AthleteName,
		AthleteSurname:     a.AthleteSurname,
		AthleteDocument:    a.AthleteDocument,
		TrainingTypeRecord: a.TrainingTypeRecord,
	}
}

// --- Handler Methods ---

// CreateAppointment handles POST /appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	date, err := time.Parse(appointmentDateLayout, req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date format, expected "+appointmentDateLayout+".")
		return
	}
	coachID, ok := parseIDString(c, req.CoachID, "coachId")
	if !ok {
		return
	}
	athleteID, ok := parseIDString(c, req.AthleteID, "athleteId")
	if !ok {
		return
	}

	appointment := &domain.Appointment{
		Date:               date,
		CoachID:            coachID,
		AthleteID:          athleteID,
		TrainingTypeRecord: req.TrainingTypeRecord.toDomain(),
	}

	id, err := h.healthliftingService.CreateAppointment(c.Request.Context(), appointment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	appointment.ID = id
	c.JSON(http.StatusCreated, MapAppointmentToResponse(appointment))
}

// GetAppointment handles GET /appointments/{id}.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	appointment, err := h.healthliftingService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if appointment == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, MapAppointmentToResponse(appointment))
}

// GetAppointments handles GET /appointments.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	page, err := h.healthliftingService.GetAppointments(c.Request.Context(), parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapAppointmentToResponse))
}

// GetAppointmentsByCoach handles GET /coaches/{id}/appointments.
func (h *AppointmentHandler) GetAppointmentsByCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, err := h.healthliftingService.GetAppointmentsByCoachID(c.Request.Context(), id, parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapAppointmentToResponse))
}

// GetAppointmentsByAthlete handles GET /athletes/{id}/appointments.
func (h *AppointmentHandler) GetAppointmentsByAthlete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, err := h.healthliftingService.GetAppointmentsByAthleteID(c.Request.Context(), id, parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapAppointmentToResponse))
}

// GetAppointmentsByCoachDocument handles
// GET /coaches/document/{document}/appointments.
func (h *AppointmentHandler) GetAppointmentsByCoachDocument(c *gin.Context) {
	page, err := h.healthliftingService.GetAppointmentsByCoachDocument(c.Request.Context(), c.Param("document"), parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapAppointmentToResponse))
}

// GetAppointmentsByAthleteDocument handles
// GET /athletes/document/{document}/appointments.
func (h *AppointmentHandler) GetAppointmentsByAthleteDocument(c *gin.Context) {
	page, err := h.healthliftingService.GetAppointmentsByAthleteDocument(c.Request.Context(), c.Param("document"), parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapAppointmentToResponse))
}

// PatchAppointment handles PATCH /appointments/{id}. Only the date and the
// training type record may be patched; the person snapshot is immutable
// through this endpoint.
func (h *AppointmentHandler) PatchAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PatchAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patch := domain.AppointmentPatch{
		ID:                 id,
		TrainingTypeRecord: req.TrainingTypeRecord,
	}
	if req.Date != nil {
		date, err := time.Parse(appointmentDateLayout, *req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date format, expected "+appointmentDateLayout+".")
			return
		}
		patch.Date = &date
	}

	if err := h.healthliftingService.PatchAppointment(c.Request.Context(), patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceAppointment handles PUT /appointments/{id}. The full record is
// overwritten with the body, snapshot fields included.
func (h *AppointmentHandler) ReplaceAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Date               string                    `json:"date" binding:"required"`
		CoachID            string                    `json:"coachId" binding:"required"`
		CoachName          string                    `json:"coachName"`
		CoachSurname       string                    `json:"coachSurname"`
		CoachDocument      string                    `json:"coachDocument"`
		AthleteID          string                    `json:"athleteId" binding:"required"`
		AthleteName        string                    `json:"athleteName"`
		AthleteSurname     string                    `json:"athleteSurname"`
		AthleteDocument    string                    `json:"athleteDocument"`
		TrainingTypeRecord TrainingTypeRecordRequest `json:"trainingTypeRecord" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	date, err := time.Parse(appointmentDateLayout, req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date format, expected "+appointmentDateLayout+".")
		return
	}
	coachID, ok := parseIDString(c, req.CoachID, "coachId")
	if !ok {
		return
	}
	athleteID, ok := parseIDString(c, req.AthleteID, "athleteId")
	if !ok {
		return
	}

	appointment := &domain.Appointment{
		ID:                 id,
		Date:               date,
		CoachID:            coachID,
		CoachName:          req.CoachName,
		CoachSurname:       req.CoachSurname,
		CoachDocument:      req.CoachDocument,
		AthleteID:          athleteID,
		AthleteName:        req.AthleteName,
		AthleteSurname:     req.AthleteSurname,
		AthleteDocument:    req.AthleteDocument,
		TrainingTypeRecord: req.TrainingTypeRecord.toDomain(),
	}
	if err := h.healthliftingService.ReplaceAppointment(c.Request.Context(), appointment); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAppointment handles DELETE /appointments/{id} (soft delete).
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.healthliftingService.DeleteAppointment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
