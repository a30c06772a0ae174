package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/repository"
)

// HealthliftingService owns the athlete, coach and appointment business
// operations, including the cross-reference bookkeeping between them.
type HealthliftingService interface {
	CreateAthlete(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error)
	CreateCoach(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error)
	CreateAppointment(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error)

	GetAthlete(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error)
	GetCoach(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error)
	GetAppointment(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error)
	FindAthleteByDocument(ctx context.Context, document string) (*domain.Athlete, error)
	FindCoachByDocument(ctx context.Context, document string) (*domain.Coach, error)

	GetAthletes(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Athlete], error)
	GetCoaches(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Coach], error)
	GetAppointments(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetAppointmentsByCoachDocument(ctx context.Context, document string, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetAppointmentsByAthleteDocument(ctx context.Context, document string, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetAppointmentsByCoachID(ctx context.Context, id primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error)
	GetAppointmentsByAthleteID(ctx context.Context, id primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error)

	PatchAthlete(ctx context.Context, patch domain.AthletePatch) error
	PatchCoach(ctx context.Context, patch domain.CoachPatch) error
	PatchAppointment(ctx context.Context, patch domain.AppointmentPatch) error
	ReplaceAthlete(ctx context.Context, athlete *domain.Athlete) error
	ReplaceCoach(ctx context.Context, coach *domain.Coach) error
	ReplaceAppointment(ctx context.Context, appointment *domain.Appointment) error

	DeleteAthlete(ctx context.Context, id primitive.ObjectID) error
	DeleteCoach(ctx context.Context, id primitive.ObjectID) error
	DeleteAppointment(ctx context.Context, id primitive.ObjectID) error
}

// healthliftingService implements HealthliftingService on top of the three
// repository ports. It holds no state of its own: every operation re-fetches
// the records it mutates.
type healthliftingService struct {
	athleteRepo     repository.AthleteRepository
	coachRepo       repository.CoachRepository
	appointmentRepo repository.AppointmentRepository
	log             zerolog.Logger
}

// NewHealthliftingService creates a new instance of healthliftingService.
func NewHealthliftingService(
	athleteRepo repository.AthleteRepository,
	coachRepo repository.CoachRepository,
	appointmentRepo repository.AppointmentRepository,
	log zerolog.Logger,
) HealthliftingService {
	return &healthliftingService{
		athleteRepo:     athleteRepo,
		coachRepo:       coachRepo,
		appointmentRepo: appointmentRepo,
		log:             log.With().Str("service", "healthlifting").Logger(),
	}
}

// === Creation ===

// CreateAthlete persists a new athlete with both reverse-reference lists
// initialized to empty. There are no required references, so nothing is
// checked.
func (s *healthliftingService) CreateAthlete(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error) {
	s.log.Debug().Msg("createAthlete")
	if athlete == nil {
		return primitive.NilObjectID, ErrInvalidInput
	}

	athlete.AppointmentIDs = []primitive.ObjectID{}
	athlete.TrainingSheetIDs = []primitive.ObjectID{}
	athlete.Removed = false

	return s.athleteRepo.Create(ctx, athlete)
}

// CreateCoach is symmetric to CreateAthlete.
func (s *healthliftingService) CreateCoach(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error) {
	s.log.Debug().Msg("createCoach")
	if coach == nil {
		return primitive.NilObjectID, ErrInvalidInput
	}

	coach.AppointmentIDs = []primitive.ObjectID{}
	coach.TrainingSheetIDs = []primitive.ObjectID{}
	coach.Removed = false

	return s.coachRepo.Create(ctx, coach)
}

// CreateAppointment validates the referenced athlete and coach, rebuilds the
// denormalized snapshot fields from the freshly loaded records (whatever the
// caller supplied is discarded), persists the appointment and appends its id
// to both persons' appointment lists.
//
// The athlete is looked up before the coach; if the athlete is missing the
// coach lookup never happens. The two list updates after the insert are a
// best-effort sequence without rollback: a failure between them leaves the
// athlete's list updated and the coach's not, a known inconsistency window.
func (s *healthliftingService) CreateAppointment(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error) {
	s.log.Debug().Msg("createAppointment")
	if appointment == nil {
		return primitive.NilObjectID, ErrAppointmentNotFound
	}

	athlete, err := s.athleteRepo.GetByIDAny(ctx, appointment.AthleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debug().Str("athleteId", appointment.AthleteID.Hex()).Msg("athlete not found")
			return primitive.NilObjectID, ErrPersonNotFound
		}
		return primitive.NilObjectID, err
	}

	coach, err := s.coachRepo.GetByIDAny(ctx, appointment.CoachID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debug().Str("coachId", appointment.CoachID.Hex()).Msg("coach not found")
			return primitive.NilObjectID, ErrPersonNotFound
		}
		return primitive.NilObjectID, err
	}

	appointment.AthleteID = athlete.ID
	appointment.AthleteName = athlete.PersonalInformation.Name
	appointment.AthleteSurname = athlete.PersonalInformation.Surname
	appointment.AthleteDocument = athlete.PersonalInformation.Document

	appointment.CoachID = coach.ID
	appointment.CoachName = coach.PersonalInformation.Name
	appointment.CoachSurname = coach.PersonalInformation.Surname
	appointment.CoachDocument = coach.PersonalInformation.Document

	id, err := s.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	athlete.AppointmentIDs = append(athlete.AppointmentIDs, id)
	if err := s.athleteRepo.Update(ctx, athlete); err != nil {
		return primitive.NilObjectID, err
	}

	coach.AppointmentIDs = append(coach.AppointmentIDs, id)
	if err := s.coachRepo.Update(ctx, coach); err != nil {
		return primitive.NilObjectID, err
	}

	s.log.Debug().Str("appointmentId", id.Hex()).Msg("appointment created")
	return id, nil
}

// === Queries ===
//
// Query-style reads return an empty result on a miss, never an error; only
// command-style operations fail with a typed error when the record is absent.

func (s *healthliftingService) GetAthlete(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	s.log.Debug().Msg("getAthlete")

	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return athlete, nil
}

func (s *healthliftingService) GetCoach(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	s.log.Debug().Msg("getCoach")

	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return coach, nil
}

func (s *healthliftingService) GetAppointment(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error) {
	s.log.Debug().Msg("getAppointment")

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return appointment, nil
}

// FindAthleteByDocument looks up an athlete by their document natural key,
// excluding soft-deleted records.
func (s *healthliftingService) FindAthleteByDocument(ctx context.Context, document string) (*domain.Athlete, error) {
	s.log.Debug().Msg("findAthleteByDocument")

	athlete, err := s.athleteRepo.FindByDocument(ctx, document)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return athlete, nil
}

// FindCoachByDocument looks up a coach by their document natural key,
// excluding soft-deleted records.
func (s *healthliftingService) FindCoachByDocument(ctx context.Context, document string) (*domain.Coach, error) {
	s.log.Debug().Msg("findCoachByDocument")

	coach, err := s.coachRepo.FindByDocument(ctx, document)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return coach, nil
}

func (s *healthliftingService) GetAthletes(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Athlete], error) {
	s.log.Debug().Msg("getAthletes")

	if pageable.Size >= MaxPageSize {
		return domain.Page[domain.Athlete]{}, ErrMaxPageSizeExceeded
	}
	return s.athleteRepo.GetPage(ctx, pageable)
}

func (s *healthliftingService) GetCoaches(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Coach], error) {
	s.log.Debug().Msg("getCoaches")

	if pageable.Size >= MaxPageSize {
		return domain.Page[domain.Coach]{}, ErrMaxPageSizeExceeded
	}
	return s.coachRepo.GetPage(ctx, pageable)
}

func (s *healthliftingService) GetAppointments(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	s.log.Debug().Msg("getAppointments")

	if pageable.Size >= MaxPageSize {
		return domain.Page[domain.Appointment]{}, ErrMaxPageSizeExceeded
	}
	return s.appointmentRepo.GetPage(ctx, pageable)
}

// GetAppointmentsByCoachDocument resolves the coach by document first and
// then pages over the appointments referencing the coach's id.
func (s *healthliftingService) GetAppointmentsByCoachDocument(ctx context.Context, document string, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	s.log.Debug().Msg("getAppointmentsByCoachDocument")

	coach, err := s.coachRepo.FindByDocument(ctx, document)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Page[domain.Appointment]{}, ErrPersonNotFound
		}
		return domain.Page[domain.Appointment]{}, err
	}
	return s.appointmentRepo.GetPageByCoachID(ctx, coach.ID, pageable)
}

// GetAppointmentsByAthleteDocument is the athlete counterpart of
// GetAppointmentsByCoachDocument.
func (s *healthliftingService) GetAppointmentsByAthleteDocument(ctx context.Context, document string, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	s.log.Debug().Msg("getAppointmentsByAthleteDocument")

	athlete, err := s.athleteRepo.FindByDocument(ctx, document)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Page[domain.Appointment]{}, ErrPersonNotFound
		}
		return domain.Page[domain.Appointment]{}, err
	}
	return s.appointmentRepo.GetPageByAthleteID(ctx, athlete.ID, pageable)
}

// GetAppointmentsByCoachID resolves the coach by id and pages over the
// active appointments whose id is in the coach's appointment list.
func (s *healthliftingService) GetAppointmentsByCoachID(ctx context.Context, id primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	s.log.Debug().Msg("getAppointmentsByCoachId")

	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Page[domain.Appointment]{}, ErrPersonNotFound
		}
		return domain.Page[domain.Appointment]{}, err
	}
	return s.appointmentRepo.GetPageByIDs(ctx, coach.AppointmentIDs, pageable)
}

// GetAppointmentsByAthleteID is the athlete counterpart of
// GetAppointmentsByCoachID.
func (s *healthliftingService) GetAppointmentsByAthleteID(ctx context.Context, id primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	s.log.Debug().Msg("getAppointmentsByAthleteId")

	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Page[domain.Appointment]{}, ErrPersonNotFound
		}
		return domain.Page[domain.Appointment]{}, err
	}
	return s.appointmentRepo.GetPageByIDs(ctx, athlete.AppointmentIDs, pageable)
}

// === Updates ===

// PatchAthlete merges the set fields of the patch onto the stored athlete.
// Unset fields are left untouched.
func (s *healthliftingService) PatchAthlete(ctx context.Context, patch domain.AthletePatch) error {
	s.log.Debug().Msg("patchAthlete")

	athlete, err := s.athleteRepo.GetByID(ctx, patch.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return err
	}

	patch.Apply(athlete)
	return s.athleteRepo.Update(ctx, athlete)
}

func (s *healthliftingService) PatchCoach(ctx context.Context, patch domain.CoachPatch) error {
	s.log.Debug().Msg("patchCoach")

	coach, err := s.coachRepo.GetByID(ctx, patch.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return err
	}

	patch.Apply(coach)
	return s.coachRepo.Update(ctx, coach)
}

func (s *healthliftingService) PatchAppointment(ctx context.Context, patch domain.AppointmentPatch) error {
	s.log.Debug().Msg("patchAppointment")

	appointment, err := s.appointmentRepo.GetByID(ctx, patch.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	patch.Apply(appointment)
	return s.appointmentRepo.Update(ctx, appointment)
}

// ReplaceAthlete overwrites the stored athlete with the input verbatim;
// fields the input leaves at their zero value are persisted as such.
func (s *healthliftingService) ReplaceAthlete(ctx context.Context, athlete *domain.Athlete) error {
	s.log.Debug().Msg("replaceAthlete")
	if athlete == nil {
		return ErrInvalidInput
	}

	if _, err := s.athleteRepo.GetByID(ctx, athlete.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return err
	}
	return s.athleteRepo.Update(ctx, athlete)
}

func (s *healthliftingService) ReplaceCoach(ctx context.Context, coach *domain.Coach) error {
	s.log.Debug().Msg("replaceCoach")
	if coach == nil {
		return ErrInvalidInput
	}

	if _, err := s.coachRepo.GetByID(ctx, coach.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return err
	}
	return s.coachRepo.Update(ctx, coach)
}

func (s *healthliftingService) ReplaceAppointment(ctx context.Context, appointment *domain.Appointment) error {
	s.log.Debug().Msg("replaceAppointment")
	if appointment == nil {
		return ErrInvalidInput
	}

	if _, err := s.appointmentRepo.GetByID(ctx, appointment.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}
	return s.appointmentRepo.Update(ctx, appointment)
}

// === Deletion ===

// DeleteAthlete marks the athlete as removed. The record stays in the store
// and references to it on appointments or coaches are not cleaned up.
func (s *healthliftingService) DeleteAthlete(ctx context.Context, id primitive.ObjectID) error {
	s.log.Debug().Msg("deleteAthlete")

	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return err
	}

	athlete.Removed = true
	return s.athleteRepo.Update(ctx, athlete)
}

func (s *healthliftingService) DeleteCoach(ctx context.Context, id primitive.ObjectID) error {
	s.log.Debug().Msg("deleteCoach")

	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return err
	}

	coach.Removed = true
	return s.coachRepo.Update(ctx, coach)
}

func (s *healthliftingService) DeleteAppointment(ctx context.Context, id primitive.ObjectID) error {
	s.log.Debug().Msg("deleteAppointment")

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	appointment.Removed = true
	return s.appointmentRepo.Update(ctx, appointment)
}
