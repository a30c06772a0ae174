package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AthleteRepository defines the interface for interacting with athlete data.
//
// GetByID and FindByDocument exclude soft-deleted records; GetByIDAny is the
// raw lookup without the removed filter, used by appointment creation.
// Soft deletion is performed by the service layer through Update, there is no
// dedicated delete call.
type AthleteRepository interface {
	Create(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error)
	GetByIDAny(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error)
	GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Athlete], error)
	Update(ctx context.Context, athlete *domain.Athlete) error
	FindByDocument(ctx context.Context, document string) (*domain.Athlete, error)
}

// CoachRepository defines the interface for interacting with coach data.
type CoachRepository interface {
	Create(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error)
	GetByIDAny(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error)
	GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Coach], error)
	Update(ctx context.Context, coach *domain.Coach) error
	FindByDocument(ctx context.Context, document string) (*domain.Coach, error)
}

// AppointmentRepository defines the interface for interacting with
// appointment data. GetPageByIDs pages over the appointments whose id is in
// the given list (a person's reverse-reference list); GetPageByCoachID and
// GetPageByAthleteID page over the appointments referencing the person
// directly. All page queries exclude soft-deleted records.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error)
	GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetPageByIDs(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetPageByCoachID(ctx context.Context, coachID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetPageByAthleteID(ctx context.Context, athleteID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	Update(ctx context.Context, appointment *domain.Appointment) error
}

// TrainingSheetRepository defines the interface for interacting with
// training sheet data.
type TrainingSheetRepository interface {
	Create(ctx context.Context, sheet *domain.TrainingSheet) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error)
	GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error)
	GetPageByIDs(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error)
	Update(ctx context.Context, sheet *domain.TrainingSheet) error
}

// UserRepository defines the interface for interacting with staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}
