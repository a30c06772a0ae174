package service_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/repository"
)

// Func-field test doubles for the repository ports. A nil func falls back to
// a not-found style default so tests only wire what they care about.

type MockAthleteRepository struct {
	CreateFunc         func(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error)
	GetByIDFunc        func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error)
	GetByIDAnyFunc     func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error)
	GetPageFunc        func(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Athlete], error)
	UpdateFunc         func(ctx context.Context, athlete *domain.Athlete) error
	FindByDocumentFunc func(ctx context.Context, document string) (*domain.Athlete, error)

	Updated []*domain.Athlete // records every Update call
}

func (m *MockAthleteRepository) Create(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, athlete)
	}
	return primitive.NewObjectID(), nil
}

func (m *MockAthleteRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockAthleteRepository) GetByIDAny(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	if m.GetByIDAnyFunc != nil {
		return m.GetByIDAnyFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockAthleteRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Athlete], error) {
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, pageable)
	}
	return domain.Page[domain.Athlete]{}, nil
}

func (m *MockAthleteRepository) Update(ctx context.Context, athlete *domain.Athlete) error {
	m.Updated = append(m.Updated, athlete)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, athlete)
	}
	return nil
}

func (m *MockAthleteRepository) FindByDocument(ctx context.Context, document string) (*domain.Athlete, error) {
	if m.FindByDocumentFunc != nil {
		return m.FindByDocumentFunc(ctx, document)
	}
	return nil, repository.ErrNotFound
}

type MockCoachRepository struct {
	CreateFunc         func(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error)
	GetByIDFunc        func(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error)
	GetByIDAnyFunc     func(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error)
	GetPageFunc        func(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Coach], error)
	UpdateFunc         func(ctx context.Context, coach *domain.Coach) error
	FindByDocumentFunc func(ctx context.Context, document string) (*domain.Coach, error)

	Updated []*domain.Coach
}

func (m *MockCoachRepository) Create(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, coach)
	}
	return primitive.NewObjectID(), nil
}

func (m *MockCoachRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockCoachRepository) GetByIDAny(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	if m.GetByIDAnyFunc != nil {
		return m.GetByIDAnyFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockCoachRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Coach], error) {
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, pageable)
	}
	return domain.Page[domain.Coach]{}, nil
}

func (m *MockCoachRepository) Update(ctx context.Context, coach *domain.Coach) error {
	m.Updated = append(m.Updated, coach)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, coach)
	}
	return nil
}

func (m *MockCoachRepository) FindByDocument(ctx context.Context, document string) (*domain.Coach, error) {
	if m.FindByDocumentFunc != nil {
		return m.FindByDocumentFunc(ctx, document)
	}
	return nil, repository.ErrNotFound
}

type MockAppointmentRepository struct {
	CreateFunc             func(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error)
	GetByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error)
	GetPageFunc            func(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetPageByIDsFunc       func(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetPageByCoachIDFunc   func(ctx context.Context, coachID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetPageByAthleteIDFunc func(ctx context.Context, athleteID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	UpdateFunc             func(ctx context.Context, appointment *domain.Appointment) error

	Created []*domain.Appointment
	Updated []*domain.Appointment
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error) {
	m.Created = append(m.Created, appointment)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return primitive.NewObjectID(), nil
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockAppointmentRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, pageable)
	}
	return domain.Page[domain.Appointment]{}, nil
}

func (m *MockAppointmentRepository) GetPageByIDs(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	if m.GetPageByIDsFunc != nil {
		return m.GetPageByIDsFunc(ctx, ids, pageable)
	}
	return domain.Page[domain.Appointment]{}, nil
}

func (m *MockAppointmentRepository) GetPageByCoachID(ctx context.Context, coachID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	if m.GetPageByCoachIDFunc != nil {
		return m.GetPageByCoachIDFunc(ctx, coachID, pageable)
	}
	return domain.Page[domain.Appointment]{}, nil
}

func (m *MockAppointmentRepository) GetPageByAthleteID(ctx context.Context, athleteID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	if m.GetPageByAthleteIDFunc != nil {
		return m.GetPageByAthleteIDFunc(ctx, athleteID, pageable)
	}
	return domain.Page[domain.Appointment]{}, nil
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	m.Updated = append(m.Updated, appointment)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appointment)
	}
	return nil
}

type MockTrainingSheetRepository struct {
	CreateFunc       func(ctx context.Context, sheet *domain.TrainingSheet) (primitive.ObjectID, error)
	GetByIDFunc      func(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error)
	GetPageFunc      func(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error)
	GetPageByIDsFunc func(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error)
	UpdateFunc       func(ctx context.Context, sheet *domain.TrainingSheet) error

	Created []*domain.TrainingSheet
	Updated []*domain.TrainingSheet
}

func (m *MockTrainingSheetRepository) Create(ctx context.Context, sheet *domain.TrainingSheet) (primitive.ObjectID, error) {
	m.Created = append(m.Created, sheet)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sheet)
	}
	return primitive.NewObjectID(), nil
}

func (m *MockTrainingSheetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockTrainingSheetRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, pageable)
	}
	return domain.Page[domain.TrainingSheet]{}, nil
}

func (m *MockTrainingSheetRepository) GetPageByIDs(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
	if m.GetPageByIDsFunc != nil {
		return m.GetPageByIDsFunc(ctx, ids, pageable)
	}
	return domain.Page[domain.TrainingSheet]{}, nil
}

func (m *MockTrainingSheetRepository) Update(ctx context.Context, sheet *domain.TrainingSheet) error {
	m.Updated = append(m.Updated, sheet)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sheet)
	}
	return nil
}

// MockFileStorage is a test double for the attachment storage.
type MockFileStorage struct {
	UploadURLFunc   func(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)
	DownloadURLFunc func(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	DeleteFunc      func(ctx context.Context, objectKey string) error
}

func (m *MockFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	if m.UploadURLFunc != nil {
		return m.UploadURLFunc(ctx, objectKey, contentType, expires)
	}
	return "https://storage.example.com/upload/" + objectKey, nil
}

func (m *MockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if m.DownloadURLFunc != nil {
		return m.DownloadURLFunc(ctx, objectKey, expires)
	}
	return "https://storage.example.com/download/" + objectKey, nil
}

func (m *MockFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, objectKey)
	}
	return nil
}

type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	Created []*domain.User // records every Create call
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	m.Created = append(m.Created, user)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return primitive.NewObjectID(), nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
