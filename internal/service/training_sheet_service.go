package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/repository"
	"mgarcia/healthlifting-app/internal/storage"
)

// attachmentURLExpiry bounds how long a presigned attachment URL stays valid.
const attachmentURLExpiry = 15 * time.Minute

// TrainingSheetService owns the training sheet business operations.
type TrainingSheetService interface {
	CreateTrainingSheet(ctx context.Context, sheet *domain.TrainingSheet) (primitive.ObjectID, error)
	GetTrainingSheet(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error)
	GetTrainingSheets(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error)
	GetTrainingSheetsByAthleteID(ctx context.Context, id primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error)
	GetTrainingSheetsByCoachID(ctx context.Context, id primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error)
	PatchTrainingSheet(ctx context.Context, patch domain.TrainingSheetPatch) error
	ReplaceTrainingSheet(ctx context.Context, sheet *domain.TrainingSheet) error
	DeleteTrainingSheet(ctx context.Context, id primitive.ObjectID) error

	// RequestAttachmentUpload generates a presigned upload URL for the
	// sheet's media and stores the object key on the sheet.
	RequestAttachmentUpload(ctx context.Context, id primitive.ObjectID, contentType string) (string, error)
	// AttachmentDownloadURL generates a presigned download URL for the
	// sheet's stored attachment.
	AttachmentDownloadURL(ctx context.Context, id primitive.ObjectID) (string, error)
}

type trainingSheetService struct {
	sheetRepo   repository.TrainingSheetRepository
	athleteRepo repository.AthleteRepository
	coachRepo   repository.CoachRepository
	fileStorage storage.FileStorage
	log         zerolog.Logger
}

// NewTrainingSheetService creates a new instance of trainingSheetService.
func NewTrainingSheetService(
	sheetRepo repository.TrainingSheetRepository,
	athleteRepo repository.AthleteRepository,
	coachRepo repository.CoachRepository,
	fileStorage storage.FileStorage,
	log zerolog.Logger,
) TrainingSheetService {
	return &trainingSheetService{
		sheetRepo:   sheetRepo,
		athleteRepo: athleteRepo,
		coachRepo:   coachRepo,
		fileStorage: fileStorage,
		log:         log.With().Str("service", "trainingSheet").Logger(),
	}
}

// CreateTrainingSheet validates the referenced athlete, persists the sheet
// and appends its id to the athlete's training sheet list. The coach fields,
// if present, are stored as supplied: no coach existence check and no
// snapshot is performed on this path.
func (s *trainingSheetService) CreateTrainingSheet(ctx context.Context, sheet *domain.TrainingSheet) (primitive.ObjectID, error) {
	s.log.Debug().Msg("createTrainingSheet")
	if sheet == nil {
		return primitive.NilObjectID, ErrInvalidInput
	}

	athlete, err := s.athleteRepo.GetByID(ctx, sheet.AthleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debug().Str("athleteId", sheet.AthleteID.Hex()).Msg("athlete not found")
			return primitive.NilObjectID, ErrPersonNotFound
		}
		return primitive.NilObjectID, err
	}

	id, err := s.sheetRepo.Create(ctx, sheet)
	if err != nil {
		return primitive.NilObjectID, err
	}

	athlete.TrainingSheetIDs = append(athlete.TrainingSheetIDs, id)
	if err := s.athleteRepo.Update(ctx, athlete); err != nil {
		return primitive.NilObjectID, err
	}

	s.log.Debug().Str("trainingSheetId", id.Hex()).Msg("training sheet created")
	return id, nil
}

// GetTrainingSheet returns the sheet or an empty result when absent.
func (s *trainingSheetService) GetTrainingSheet(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error) {
	s.log.Debug().Msg("getTrainingSheet")

	sheet, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sheet, nil
}

func (s *trainingSheetService) GetTrainingSheets(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
	s.log.Debug().Msg("getTrainingSheets")

	if pageable.Size >= MaxPageSize {
		return domain.Page[domain.TrainingSheet]{}, ErrMaxPageSizeExceeded
	}
	return s.sheetRepo.GetPage(ctx, pageable)
}

// GetTrainingSheetsByAthleteID resolves the athlete and pages over the
// sheets whose id is in the athlete's training sheet list. An athlete with
// an empty list is a business failure, not an empty page.
func (s *trainingSheetService) GetTrainingSheetsByAthleteID(ctx context.Context, id primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
	s.log.Debug().Msg("getTrainingSheetsByAthleteId")

	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Page[domain.TrainingSheet]{}, ErrPersonNotFound
		}
		return domain.Page[domain.TrainingSheet]{}, err
	}
	if len(athlete.TrainingSheetIDs) == 0 {
		return domain.Page[domain.TrainingSheet]{}, ErrNoTrainingSheets
	}
	return s.sheetRepo.GetPageByIDs(ctx, athlete.TrainingSheetIDs, pageable)
}

// GetTrainingSheetsByCoachID is the coach counterpart of
// GetTrainingSheetsByAthleteID.
func (s *trainingSheetService) GetTrainingSheetsByCoachID(ctx context.Context, id primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
	s.log.Debug().Msg("getTrainingSheetsByCoachId")

	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Page[domain.TrainingSheet]{}, ErrPersonNotFound
		}
		return domain.Page[domain.TrainingSheet]{}, err
	}
	if len(coach.TrainingSheetIDs) == 0 {
		return domain.Page[domain.TrainingSheet]{}, ErrNoTrainingSheets
	}
	return s.sheetRepo.GetPageByIDs(ctx, coach.TrainingSheetIDs, pageable)
}

// PatchTrainingSheet merges the set fields of the patch onto the stored
// sheet.
func (s *trainingSheetService) PatchTrainingSheet(ctx context.Context, patch domain.TrainingSheetPatch) error {
	s.log.Debug().Msg("patchTrainingSheet")

	sheet, err := s.sheetRepo.GetByID(ctx, patch.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainingSheetNotFound
		}
		return err
	}

	patch.Apply(sheet)
	return s.sheetRepo.Update(ctx, sheet)
}

// ReplaceTrainingSheet overwrites the stored sheet with the input verbatim.
func (s *trainingSheetService) ReplaceTrainingSheet(ctx context.Context, sheet *domain.TrainingSheet) error {
	s.log.Debug().Msg("replaceTrainingSheet")
	if sheet == nil {
		return ErrInvalidInput
	}

	if _, err := s.sheetRepo.GetByID(ctx, sheet.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainingSheetNotFound
		}
		return err
	}
	return s.sheetRepo.Update(ctx, sheet)
}

// DeleteTrainingSheet marks the sheet as removed. The athlete's training
// sheet list is not cleaned up.
func (s *trainingSheetService) DeleteTrainingSheet(ctx context.Context, id primitive.ObjectID) error {
	s.log.Debug().Msg("deleteTrainingSheet")

	sheet, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainingSheetNotFound
		}
		return err
	}

	sheet.Removed = true
	return s.sheetRepo.Update(ctx, sheet)
}

// RequestAttachmentUpload assigns a fresh object key to the sheet and
// returns a presigned PUT URL for it. Re-requesting replaces the key, so the
// previous attachment becomes unreachable from the sheet.
func (s *trainingSheetService) RequestAttachmentUpload(ctx context.Context, id primitive.ObjectID, contentType string) (string, error) {
	s.log.Debug().Msg("requestAttachmentUpload")

	sheet, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrTrainingSheetNotFound
		}
		return "", err
	}

	objectKey := "training-sheets/" + id.Hex() + "/" + uuid.NewString()
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, attachmentURLExpiry)
	if err != nil {
		return "", err
	}

	sheet.AttachmentKey = objectKey
	if err := s.sheetRepo.Update(ctx, sheet); err != nil {
		return "", err
	}
	return url, nil
}

// AttachmentDownloadURL returns a presigned GET URL for the sheet's stored
// attachment.
func (s *trainingSheetService) AttachmentDownloadURL(ctx context.Context, id primitive.ObjectID) (string, error) {
	s.log.Debug().Msg("attachmentDownloadURL")

	sheet, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrTrainingSheetNotFound
		}
		return "", err
	}
	if sheet.AttachmentKey == "" {
		return "", ErrNoAttachment
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, sheet.AttachmentKey, attachmentURLExpiry)
}
