package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/repository"
	"mgarcia/healthlifting-app/internal/service"
)

func newTestService(athletes *MockAthleteRepository, coaches *MockCoachRepository, appointments *MockAppointmentRepository) service.HealthliftingService {
	return service.NewHealthliftingService(athletes, coaches, appointments, zerolog.Nop())
}

func testAthlete(id primitive.ObjectID) *domain.Athlete {
	return &domain.Athlete{
		ID:  id,
		Age: 28,
		PersonalInformation: domain.PersonalInformation{
			Name:         "Marta",
			Surname:      "Garcia",
			DocumentType: domain.DocumentTypeDNI,
			Document:     "X1",
		},
		AppointmentIDs:   []primitive.ObjectID{},
		TrainingSheetIDs: []primitive.ObjectID{},
	}
}

func testCoach(id primitive.ObjectID) *domain.Coach {
	return &domain.Coach{
		ID: id,
		PersonalInformation: domain.PersonalInformation{
			Name:         "Jordi",
			Surname:      "Puig",
			DocumentType: domain.DocumentTypeNIE,
			Document:     "Y1",
		},
		AppointmentIDs:   []primitive.ObjectID{},
		TrainingSheetIDs: []primitive.ObjectID{},
	}
}

func TestCreateAthlete_InitializesEmptyLists(t *testing.T) {
	var created *domain.Athlete
	athletes := &MockAthleteRepository{
		CreateFunc: func(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error) {
			created = athlete
			return primitive.NewObjectID(), nil
		},
	}
	svc := newTestService(athletes, &MockCoachRepository{}, &MockAppointmentRepository{})

	_, err := svc.CreateAthlete(context.Background(), &domain.Athlete{
		Age:            30,
		AppointmentIDs: []primitive.ObjectID{primitive.NewObjectID()}, // caller-supplied, must be discarded
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotNil(t, created.AppointmentIDs)
	assert.Empty(t, created.AppointmentIDs)
	assert.NotNil(t, created.TrainingSheetIDs)
	assert.Empty(t, created.TrainingSheetIDs)
	assert.False(t, created.Removed)
}

func TestCreateAppointment_SnapshotOverwritesCallerValues(t *testing.T) {
	athleteID := primitive.NewObjectID()
	coachID := primitive.NewObjectID()

	athletes := &MockAthleteRepository{
		GetByIDAnyFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			return testAthlete(athleteID), nil
		},
	}
	coaches := &MockCoachRepository{
		GetByIDAnyFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
			return testCoach(coachID), nil
		},
	}
	appointments := &MockAppointmentRepository{}
	svc := newTestService(athletes, coaches, appointments)

	input := &domain.Appointment{
		Date:      time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		AthleteID: athleteID,
		CoachID:   coachID,
		// Stale caller-supplied snapshot, must be replaced from the store.
		AthleteName: "Wrong",
		CoachName:   "AlsoWrong",
	}

	_, err := svc.CreateAppointment(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, appointments.Created, 1)
	stored := appointments.Created[0]
	assert.Equal(t, "Marta", stored.AthleteName)
	assert.Equal(t, "Garcia", stored.AthleteSurname)
	assert.Equal(t, "X1", stored.AthleteDocument)
	assert.Equal(t, "Jordi", stored.CoachName)
	assert.Equal(t, "Puig", stored.CoachSurname)
	assert.Equal(t, "Y1", stored.CoachDocument)
}

func TestCreateAppointment_AppendsToBothPersonLists(t *testing.T) {
	athleteID := primitive.NewObjectID()
	coachID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()

	athletes := &MockAthleteRepository{
		GetByIDAnyFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			return testAthlete(athleteID), nil
		},
	}
	coaches := &MockCoachRepository{
		GetByIDAnyFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
			return testCoach(coachID), nil
		},
	}
	appointments := &MockAppointmentRepository{
		CreateFunc: func(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error) {
			return appointmentID, nil
		},
	}
	svc := newTestService(athletes, coaches, appointments)

	id, err := svc.CreateAppointment(context.Background(), &domain.Appointment{
		AthleteID: athleteID,
		CoachID:   coachID,
	})

	require.NoError(t, err)
	assert.Equal(t, appointmentID, id)
	require.Len(t, athletes.Updated, 1)
	assert.Equal(t, []primitive.ObjectID{appointmentID}, athletes.Updated[0].AppointmentIDs)
	require.Len(t, coaches.Updated, 1)
	assert.Equal(t, []primitive.ObjectID{appointmentID}, coaches.Updated[0].AppointmentIDs)
}

func TestCreateAppointment_MissingAthleteSkipsCoachLookup(t *testing.T) {
	coachLookedUp := false

	athletes := &MockAthleteRepository{} // defaults to not found
	coaches := &MockCoachRepository{
		GetByIDAnyFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
			coachLookedUp = true
			return testCoach(id), nil
		},
	}
	appointments := &MockAppointmentRepository{}
	svc := newTestService(athletes, coaches, appointments)

	_, err := svc.CreateAppointment(context.Background(), &domain.Appointment{
		AthleteID: primitive.NewObjectID(),
		CoachID:   primitive.NewObjectID(),
	})

	assert.ErrorIs(t, err, service.ErrPersonNotFound)
	assert.False(t, coachLookedUp, "coach lookup must not happen when the athlete is missing")
	assert.Empty(t, appointments.Created, "nothing must be persisted")
}

func TestCreateAppointment_MissingCoachLeavesAthleteListUntouched(t *testing.T) {
	athleteID := primitive.NewObjectID()

	athletes := &MockAthleteRepository{
		GetByIDAnyFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			return testAthlete(athleteID), nil
		},
	}
	coaches := &MockCoachRepository{} // defaults to not found
	appointments := &MockAppointmentRepository{}
	svc := newTestService(athletes, coaches, appointments)

	_, err := svc.CreateAppointment(context.Background(), &domain.Appointment{
		AthleteID: athleteID,
		CoachID:   primitive.NewObjectID(),
	})

	assert.ErrorIs(t, err, service.ErrPersonNotFound)
	assert.Empty(t, appointments.Created)
	assert.Empty(t, athletes.Updated)
}

func TestCreateAppointment_NilInput(t *testing.T) {
	svc := newTestService(&MockAthleteRepository{}, &MockCoachRepository{}, &MockAppointmentRepository{})

	_, err := svc.CreateAppointment(context.Background(), nil)

	assert.ErrorIs(t, err, service.ErrAppointmentNotFound)
}

func TestGetAthlete_MissReturnsEmptyResult(t *testing.T) {
	svc := newTestService(&MockAthleteRepository{}, &MockCoachRepository{}, &MockAppointmentRepository{})

	athlete, err := svc.GetAthlete(context.Background(), primitive.NewObjectID())

	require.NoError(t, err)
	assert.Nil(t, athlete)
}

func TestGetAthlete_PropagatesUnexpectedErrors(t *testing.T) {
	boom := errors.New("connection reset")
	athletes := &MockAthleteRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			return nil, boom
		},
	}
	svc := newTestService(athletes, &MockCoachRepository{}, &MockAppointmentRepository{})

	_, err := svc.GetAthlete(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, boom)
}

func TestGetAthletes_PageSizeBoundary(t *testing.T) {
	var requested domain.Pageable
	athletes := &MockAthleteRepository{
		GetPageFunc: func(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Athlete], error) {
			requested = pageable
			return domain.Page[domain.Athlete]{Size: pageable.Size}, nil
		},
	}
	svc := newTestService(athletes, &MockCoachRepository{}, &MockAppointmentRepository{})

	// One below the ceiling passes through.
	_, err := svc.GetAthletes(context.Background(), domain.Pageable{Size: service.MaxPageSize - 1})
	require.NoError(t, err)
	assert.Equal(t, service.MaxPageSize-1, requested.Size)

	// The ceiling itself is rejected.
	_, err = svc.GetAthletes(context.Background(), domain.Pageable{Size: service.MaxPageSize})
	assert.ErrorIs(t, err, service.ErrMaxPageSizeExceeded)
}

func TestGetAppointments_PageSizeExceeded(t *testing.T) {
	svc := newTestService(&MockAthleteRepository{}, &MockCoachRepository{}, &MockAppointmentRepository{})

	_, err := svc.GetAppointments(context.Background(), domain.Pageable{Size: service.MaxPageSize + 50})

	assert.ErrorIs(t, err, service.ErrMaxPageSizeExceeded)
}

func TestGetAppointmentsByCoachDocument(t *testing.T) {
	coachID := primitive.NewObjectID()
	coaches := &MockCoachRepository{
		FindByDocumentFunc: func(ctx context.Context, document string) (*domain.Coach, error) {
			if document != "Y1" {
				return nil, repository.ErrNotFound
			}
			return testCoach(coachID), nil
		},
	}
	var pagedCoachID primitive.ObjectID
	appointments := &MockAppointmentRepository{
		GetPageByCoachIDFunc: func(ctx context.Context, id primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
			pagedCoachID = id
			return domain.Page[domain.Appointment]{TotalElements: 2}, nil
		},
	}
	svc := newTestService(&MockAthleteRepository{}, coaches, appointments)

	page, err := svc.GetAppointmentsByCoachDocument(context.Background(), "Y1", domain.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, coachID, pagedCoachID)
	assert.Equal(t, int64(2), page.TotalElements)

	_, err = svc.GetAppointmentsByCoachDocument(context.Background(), "unknown", domain.Pageable{Size: 10})
	assert.ErrorIs(t, err, service.ErrPersonNotFound)
}

func TestGetAppointmentsByAthleteID_UsesReverseReferenceList(t *testing.T) {
	athleteID := primitive.NewObjectID()
	refs := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	athletes := &MockAthleteRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			a := testAthlete(athleteID)
			a.AppointmentIDs = refs
			return a, nil
		},
	}
	var pagedIDs []primitive.ObjectID
	appointments := &MockAppointmentRepository{
		GetPageByIDsFunc: func(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
			pagedIDs = ids
			return domain.Page[domain.Appointment]{}, nil
		},
	}
	svc := newTestService(athletes, &MockCoachRepository{}, appointments)

	_, err := svc.GetAppointmentsByAthleteID(context.Background(), athleteID, domain.Pageable{Size: 10})

	require.NoError(t, err)
	assert.Equal(t, refs, pagedIDs)
}

func TestPatchAthlete_MergesOnlySetFields(t *testing.T) {
	athleteID := primitive.NewObjectID()
	athletes := &MockAthleteRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			return testAthlete(athleteID), nil
		},
	}
	svc := newTestService(athletes, &MockCoachRepository{}, &MockAppointmentRepository{})

	newSurname := "Lopez"
	err := svc.PatchAthlete(context.Background(), domain.AthletePatch{
		ID: athleteID,
		PersonalInformation: &domain.PersonalInformationPatch{
			Surname: &newSurname,
		},
	})

	require.NoError(t, err)
	require.Len(t, athletes.Updated, 1)
	got := athletes.Updated[0]
	assert.Equal(t, "Lopez", got.PersonalInformation.Surname)
	assert.Equal(t, "Marta", got.PersonalInformation.Name, "unset fields keep their stored value")
	assert.Equal(t, 28, got.Age)
}

func TestPatchAthlete_NotFound(t *testing.T) {
	svc := newTestService(&MockAthleteRepository{}, &MockCoachRepository{}, &MockAppointmentRepository{})

	err := svc.PatchAthlete(context.Background(), domain.AthletePatch{ID: primitive.NewObjectID()})

	assert.ErrorIs(t, err, service.ErrPersonNotFound)
}

func TestPatchAppointment_NotFound(t *testing.T) {
	svc := newTestService(&MockAthleteRepository{}, &MockCoachRepository{}, &MockAppointmentRepository{})

	err := svc.PatchAppointment(context.Background(), domain.AppointmentPatch{ID: primitive.NewObjectID()})

	assert.ErrorIs(t, err, service.ErrAppointmentNotFound)
}

func TestReplaceAthlete_OverwritesVerbatim(t *testing.T) {
	athleteID := primitive.NewObjectID()
	athletes := &MockAthleteRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			return testAthlete(athleteID), nil
		},
	}
	svc := newTestService(athletes, &MockCoachRepository{}, &MockAppointmentRepository{})

	replacement := &domain.Athlete{ID: athleteID, Age: 31} // everything else zeroed
	err := svc.ReplaceAthlete(context.Background(), replacement)

	require.NoError(t, err)
	require.Len(t, athletes.Updated, 1)
	assert.Same(t, replacement, athletes.Updated[0])
	assert.Empty(t, athletes.Updated[0].PersonalInformation.Name)
}

func TestReplaceAthlete_NilInput(t *testing.T) {
	svc := newTestService(&MockAthleteRepository{}, &MockCoachRepository{}, &MockAppointmentRepository{})

	err := svc.ReplaceAthlete(context.Background(), nil)

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestDeleteAthlete_SetsRemovedFlag(t *testing.T) {
	athleteID := primitive.NewObjectID()
	athletes := &MockAthleteRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
			return testAthlete(athleteID), nil
		},
	}
	svc := newTestService(athletes, &MockCoachRepository{}, &MockAppointmentRepository{})

	err := svc.DeleteAthlete(context.Background(), athleteID)

	require.NoError(t, err)
	require.Len(t, athletes.Updated, 1)
	assert.True(t, athletes.Updated[0].Removed)
}

func TestDeleteAthlete_AlreadyRemoved(t *testing.T) {
	// A soft-deleted athlete is invisible to the filtered lookup, so deleting
	// it again fails the same way as deleting a nonexistent one.
	svc := newTestService(&MockAthleteRepository{}, &MockCoachRepository{}, &MockAppointmentRepository{})

	err := svc.DeleteAthlete(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, service.ErrPersonNotFound)
}

func TestDeleteAppointment_SetsRemovedFlag(t *testing.T) {
	appointmentID := primitive.NewObjectID()
	appointments := &MockAppointmentRepository{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error) {
			return &domain.Appointment{ID: appointmentID}, nil
		},
	}
	svc := newTestService(&MockAthleteRepository{}, &MockCoachRepository{}, appointments)

	err := svc.DeleteAppointment(context.Background(), appointmentID)

	require.NoError(t, err)
	require.Len(t, appointments.Updated, 1)
	assert.True(t, appointments.Updated[0].Removed)
}
