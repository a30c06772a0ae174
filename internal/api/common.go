package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/service"
)

const defaultPageSize = 20

// parseIDParam reads a path parameter and converts it to an ObjectID.
func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// parseIDString converts an id carried in a request body to an ObjectID.
func parseIDString(c *gin.Context, hex, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// parsePageable builds a page request from the page/size/sort query
// parameters. Malformed numbers fall back to the defaults; the size ceiling
// is enforced by the services, not here.
func parsePageable(c *gin.Context) domain.Pageable {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}
	return domain.Pageable{
		Page: page,
		Size: size,
		Sort: c.Query("sort"),
	}
}

// PageResponse is the JSON envelope for paginated results.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
}

// mapPage converts a domain page into its response form element by element.
func mapPage[T any, R any](page domain.Page[T], mapFn func(*T) R) PageResponse[R] {
	content := make([]R, len(page.Content))
	for i := range page.Content {
		content[i] = mapFn(&page.Content[i])
	}
	return PageResponse[R]{
		Content:       content,
		Number:        page.Number,
		Size:          page.Size,
		TotalElements: page.TotalElements,
	}
}

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonNotFound),
		errors.Is(err, service.ErrAppointmentNotFound),
		errors.Is(err, service.ErrTrainingSheetNotFound),
		errors.Is(err, service.ErrNoTrainingSheets),
		errors.Is(err, service.ErrNoAttachment):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMaxPageSizeExceeded),
		errors.Is(err, service.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

// idsToHex converts a list of ObjectIDs to their hex form for responses.
func idsToHex(ids []primitive.ObjectID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Hex()
	}
	return out
}

// hexToIDs converts hex strings to ObjectIDs, failing on the first bad one.
func hexToIDs(hexes []string) ([]primitive.ObjectID, error) {
	if hexes == nil {
		return nil, nil
	}
	out := make([]primitive.ObjectID, len(hexes))
	for i, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}
