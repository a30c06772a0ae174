package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/service"
)

func newSheetService(sheets *MockTrainingSheetRepository, athletes *MockAthleteRepository, coaches *MockCoachRepository, store *MockFileStorage) service.TrainingSheetService {
	return service.NewTrainingSheetService(sheets, athletes, coaches, store, zerolog.Nop())
}

func TestCreateTrainingSheet_AppendsToAthleteList(t *testing.T) {
	athleteID := primitive.NewObjectID()
	sheetID := primitive.NewObjectID()

	athletes := &MockAthleteRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			return testAthlete(athleteID), nil
		},
	}
	sheets := &MockTrainingSheetRepository{
		CreateFunc: func(ctx context.Context, sheet *domain.TrainingSheet) (primitive.ObjectID, error) {
			return sheetID, nil
		},
	}
	svc := newSheetService(sheets, athletes, &MockCoachRepository{}, &MockFileStorage{})

	id, err := svc.CreateTrainingSheet(context.Background(), &domain.TrainingSheet{
		AthleteID: athleteID,
		TrainingTypeRecord: domain.TrainingTypeRecord{
			TrainingType: domain.TrainingTypeStrength,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, sheetID, id)
	require.Len(t, athletes.Updated, 1)
	assert.Equal(t, []primitive.ObjectID{sheetID}, athletes.Updated[0].TrainingSheetIDs)
}

func TestCreateTrainingSheet_MissingAthlete(t *testing.T) {
	sheets := &MockTrainingSheetRepository{}
	svc := newSheetService(sheets, &MockAthleteRepository{}, &MockCoachRepository{}, &MockFileStorage{})

	_, err := svc.CreateTrainingSheet(context.Background(), &domain.TrainingSheet{
		AthleteID: primitive.NewObjectID(),
	})

	assert.ErrorIs(t, err, service.ErrPersonNotFound)
	assert.Empty(t, sheets.Created, "nothing must be persisted")
}

func TestCreateTrainingSheet_NilInput(t *testing.T) {
	svc := newSheetService(&MockTrainingSheetRepository{}, &MockAthleteRepository{}, &MockCoachRepository{}, &MockFileStorage{})

	_, err := svc.CreateTrainingSheet(context.Background(), nil)

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestGetTrainingSheetsByAthleteID_EmptyListIsBusinessError(t *testing.T) {
	athleteID := primitive.NewObjectID()
	athletes := &MockAthleteRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			return testAthlete(athleteID), nil // empty TrainingSheetIDs
		},
	}
	svc := newSheetService(&MockTrainingSheetRepository{}, athletes, &MockCoachRepository{}, &MockFileStorage{})

	_, err := svc.GetTrainingSheetsByAthleteID(context.Background(), athleteID, domain.Pageable{Size: 10})

	assert.ErrorIs(t, err, service.ErrNoTrainingSheets)
}

func TestGetTrainingSheetsByAthleteID_PagesOverList(t *testing.T) {
	athleteID := primitive.NewObjectID()
	refs := []primitive.ObjectID{primitive.NewObjectID()}

	athletes := &MockAthleteRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			a := testAthlete(athleteID)
			a.TrainingSheetIDs = refs
			return a, nil
		},
	}
	var pagedIDs []primitive.ObjectID
	sheets := &MockTrainingSheetRepository{
		GetPageByIDsFunc: func(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
			pagedIDs = ids
			return domain.Page[domain.TrainingSheet]{TotalElements: 1}, nil
		},
	}
	svc := newSheetService(sheets, athletes, &MockCoachRepository{}, &MockFileStorage{})

	page, err := svc.GetTrainingSheetsByAthleteID(context.Background(), athleteID, domain.Pageable{Size: 10})

	require.NoError(t, err)
	assert.Equal(t, refs, pagedIDs)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestGetTrainingSheetsByCoachID_MissingCoach(t *testing.T) {
	svc := newSheetService(&MockTrainingSheetRepository{}, &MockAthleteRepository{}, &MockCoachRepository{}, &MockFileStorage{})

	_, err := svc.GetTrainingSheetsByCoachID(context.Background(), primitive.NewObjectID(), domain.Pageable{Size: 10})

	assert.ErrorIs(t, err, service.ErrPersonNotFound)
}

func TestGetTrainingSheets_PageSizeExceeded(t *testing.T) {
	svc := newSheetService(&MockTrainingSheetRepository{}, &MockAthleteRepository{}, &MockCoachRepository{}, &MockFileStorage{})

	_, err := svc.GetTrainingSheets(context.Background(), domain.Pageable{Size: service.MaxPageSize})

	assert.ErrorIs(t, err, service.ErrMaxPageSizeExceeded)
}

func TestPatchTrainingSheet_NotFound(t *testing.T) {
	svc := newSheetService(&MockTrainingSheetRepository{}, &MockAthleteRepository{}, &MockCoachRepository{}, &MockFileStorage{})

	err := svc.PatchTrainingSheet(context.Background(), domain.TrainingSheetPatch{ID: primitive.NewObjectID()})

	assert.ErrorIs(t, err, service.ErrTrainingSheetNotFound)
}

func TestDeleteTrainingSheet_SetsRemovedFlag(t *testing.T) {
	sheetID := primitive.NewObjectID()
	sheets := &MockTrainingSheetRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error) {
			return &domain.TrainingSheet{ID: sheetID}, nil
		},
	}
	svc := newSheetService(sheets, &MockAthleteRepository{}, &MockCoachRepository{}, &MockFileStorage{})

	err := svc.DeleteTrainingSheet(context.Background(), sheetID)

	require.NoError(t, err)
	require.Len(t, sheets.Updated, 1)
	assert.True(t, sheets.Updated[0].Removed)
}

func TestRequestAttachmentUpload_StoresObjectKey(t *testing.T) {
	sheetID := primitive.NewObjectID()
	sheets := &MockTrainingSheetRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error) {
			return &domain.TrainingSheet{ID: sheetID}, nil
		},
	}
	var requestedKey, requestedContentType string
	store := &MockFileStorage{
		UploadURLFunc: func(ctx context.Context, objectKey, contentType string, _ time.Duration) (string, error) {
			requestedKey = objectKey
			requestedContentType = contentType
			return "https://storage.example.com/put/" + objectKey, nil
		},
	}
	svc := newSheetService(sheets, &MockAthleteRepository{}, &MockCoachRepository{}, store)

	url, err := svc.RequestAttachmentUpload(context.Background(), sheetID, "image/png")

	require.NoError(t, err)
	assert.NotEmpty(t, url)
	assert.Equal(t, "image/png", requestedContentType)
	assert.True(t, strings.HasPrefix(requestedKey, "training-sheets/"+sheetID.Hex()+"/"))
	require.Len(t, sheets.Updated, 1)
	assert.Equal(t, requestedKey, sheets.Updated[0].AttachmentKey)
}

func TestAttachmentDownloadURL_NoAttachment(t *testing.T) {
	sheetID := primitive.NewObjectID()
	sheets := &MockTrainingSheetRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error) {
			return &domain.TrainingSheet{ID: sheetID}, nil // no AttachmentKey
		},
	}
	svc := newSheetService(sheets, &MockAthleteRepository{}, &MockCoachRepository{}, &MockFileStorage{})

	_, err := svc.AttachmentDownloadURL(context.Background(), sheetID)

	assert.ErrorIs(t, err, service.ErrNoAttachment)
}

func TestAttachmentDownloadURL_ReturnsPresignedURL(t *testing.T) {
	sheetID := primitive.NewObjectID()
	sheets := &MockTrainingSheetRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error) {
			return &domain.TrainingSheet{ID: sheetID, AttachmentKey: "training-sheets/abc/file"}, nil
		},
	}
	svc := newSheetService(sheets, &MockAthleteRepository{}, &MockCoachRepository{}, &MockFileStorage{})

	url, err := svc.AttachmentDownloadURL(context.Background(), sheetID)

	require.NoError(t, err)
	assert.Contains(t, url, "training-sheets/abc/file")
}
