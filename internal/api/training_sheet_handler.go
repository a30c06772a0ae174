package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/service"
)

// TrainingSheetHandler holds the training sheet service dependency.
type TrainingSheetHandler struct {
	trainingSheetService service.TrainingSheetService
}

// NewTrainingSheetHandler creates a new TrainingSheetHandler.
func NewTrainingSheetHandler(trainingSheetService service.TrainingSheetService) *TrainingSheetHandler {
	return &TrainingSheetHandler{trainingSheetService: trainingSheetService}
}

// --- DTOs ---

type CreateTrainingSheetRequest struct {
	TrainingTypeRecord TrainingTypeRecordRequest `json:"trainingTypeRecord" binding:"required"`
	Observations       string                    `json:"observations"`
	AthleteID          string                    `json:"athleteId" binding:"required"`
	CoachID            string                    `json:"coachId"`
	AppointmentID      string                    `json:"appointmentId"`
}

type PatchTrainingSheetRequest struct {
	TrainingTypeRecord *domain.TrainingTypeRecordPatch `json:"trainingTypeRecord"`
	Observations       *string                         `json:"observations"`
}

type TrainingSheetResponse struct {
	ID                 string                    `json:"id"`
	TrainingTypeRecord domain.TrainingTypeRecord `json:"trainingTypeRecord"`
	Observations       string                    `json:"observations,omitempty"`
	AthleteID          string                    `json:"athleteId"`
	CoachID            string                    `json:"coachId,omitempty"`
	AppointmentID      string                    `json:"appointmentId,omitempty"`
	HasAttachment      bool                      `json:"hasAttachment"`
}

// RequestUploadRequest asks for a presigned upload slot for the sheet's
// attachment.
type RequestUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type AttachmentURLResponse struct {
	URL string `json:"url"`
}

// MapTrainingSheetToResponse converts a domain.TrainingSheet to its DTO.
func MapTrainingSheetToResponse(sheet *domain.TrainingSheet) TrainingSheetResponse {
	if sheet == nil {
		return TrainingSheetResponse{}
	}
	resp := TrainingSheetResponse{
		ID:                 sheet.ID.Hex(),
		TrainingTypeRecord: sheet.TrainingTypeRecord,
		Observations:       sheet.Observations,
		AthleteID:          sheet.AthleteID.Hex(),
		HasAttachment:      sheet.AttachmentKey != "",
	}
	if !sheet.CoachID.IsZero() {
		resp.CoachID = sheet.CoachID.Hex()
	}
	if !sheet.AppointmentID.IsZero() {
		resp.AppointmentID = sheet.AppointmentID.Hex()
	}
	return resp
}

// --- Handler Methods ---

// CreateTrainingSheet handles POST /training-sheets.
func (h *TrainingSheetHandler) CreateTrainingSheet(c *gin.Context) {
	var req CreateTrainingSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	athleteID, ok := parseIDString(c, req.AthleteID, "athleteId")
	if !ok {
		return
	}

	sheet := &domain.TrainingSheet{
		TrainingTypeRecord: req.TrainingTypeRecord.toDomain(),
		Observations:       req.Observations,
		AthleteID:          athleteID,
	}
	if req.CoachID != "" {
		coachID, ok := parseIDString(c, req.CoachID, "coachId")
		if !ok {
			return
		}
		sheet.CoachID = coachID
	}
	if req.AppointmentID != "" {
		appointmentID, ok := parseIDString(c, req.AppointmentID, "appointmentId")
		if !ok {
			return
		}
		sheet.AppointmentID = appointmentID
	}

	id, err := h.trainingSheetService.CreateTrainingSheet(c.Request.Context(), sheet)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	sheet.ID = id
	c.JSON(http.StatusCreated, MapTrainingSheetToResponse(sheet))
}

// GetTrainingSheet handles GET /training-sheets/{id}.
func (h *TrainingSheetHandler) GetTrainingSheet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sheet, err := h.trainingSheetService.GetTrainingSheet(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if sheet == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, MapTrainingSheetToResponse(sheet))
}

// GetTrainingSheets handles GET /training-sheets.
func (h *TrainingSheetHandler) GetTrainingSheets(c *gin.Context) {
	page, err := h.trainingSheetService.GetTrainingSheets(c.Request.Context(), parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapTrainingSheetToResponse))
}

// GetTrainingSheetsByAthlete handles GET /athletes/{id}/training-sheets.
func (h *TrainingSheetHandler) GetTrainingSheetsByAthlete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, err := h.trainingSheetService.GetTrainingSheetsByAthleteID(c.Request.Context(), id, parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapTrainingSheetToResponse))
}

// GetTrainingSheetsByCoach handles GET /coaches/{id}/training-sheets.
func (h *TrainingSheetHandler) GetTrainingSheetsByCoach(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, err := h.trainingSheetService.GetTrainingSheetsByCoachID(c.Request.Context(), id, parsePageable(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, MapTrainingSheetToResponse))
}

// PatchTrainingSheet handles PATCH /training-sheets/{id}.
func (h *TrainingSheetHandler) PatchTrainingSheet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PatchTrainingSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patch := domain.TrainingSheetPatch{
		ID:                 id,
		TrainingTypeRecord: req.TrainingTypeRecord,
		Observations:       req.Observations,
	}
	if err := h.trainingSheetService.PatchTrainingSheet(c.Request.Context(), patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceTrainingSheet handles PUT /training-sheets/{id}.
func (h *TrainingSheetHandler) ReplaceTrainingSheet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateTrainingSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	athleteID, ok := parseIDString(c, req.AthleteID, "athleteId")
	if !ok {
		return
	}

	sheet := &domain.TrainingSheet{
		ID:                 id,
		TrainingTypeRecord: req.TrainingTypeRecord.toDomain(),
		Observations:       req.Observations,
		AthleteID:          athleteID,
	}
	if req.CoachID != "" {
		coachID, ok := parseIDString(c, req.CoachID, "coachId")
		if !ok {
			return
		}
		sheet.CoachID = coachID
	}
	if req.AppointmentID != "" {
		appointmentID, ok := parseIDString(c, req.AppointmentID, "appointmentId")
		if !ok {
			return
		}
		sheet.AppointmentID = appointmentID
	}

	if err := h.trainingSheetService.ReplaceTrainingSheet(c.Request.Context(), sheet); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteTrainingSheet handles DELETE /training-sheets/{id} (soft delete).
func (h *TrainingSheetHandler) DeleteTrainingSheet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.trainingSheetService.DeleteTrainingSheet(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestAttachmentUpload handles POST /training-sheets/{id}/attachment.
// It returns a presigned URL the client PUTs the file to directly.
func (h *TrainingSheetHandler) RequestAttachmentUpload(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	url, err := h.trainingSheetService.RequestAttachmentUpload(c.Request.Context(), id, req.ContentType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, AttachmentURLResponse{URL: url})
}

// GetAttachmentDownloadURL handles GET /training-sheets/{id}/attachment.
func (h *TrainingSheetHandler) GetAttachmentDownloadURL(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.trainingSheetService.AttachmentDownloadURL(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, AttachmentURLResponse{URL: url})
}
