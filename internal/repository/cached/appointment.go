package cached

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/cache"
	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/repository"
)

// appointmentRepository decorates a repository.AppointmentRepository with
// the cache-aside policy of the "appointments" namespace.
type appointmentRepository struct {
	inner repository.AppointmentRepository
	cacheHelper
}

// NewAppointmentRepository wraps inner with caching.
func NewAppointmentRepository(inner repository.AppointmentRepository, c cache.Cache, log zerolog.Logger) repository.AppointmentRepository {
	return &appointmentRepository{inner: inner, cacheHelper: newCacheHelper(c, nsAppointments, log)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error) {
	id, err := r.inner.Create(ctx, appointment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	r.invalidate(ctx)
	return id, nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error) {
	var cachedAppointment domain.Appointment
	if r.lookup(ctx, idKey(id), &cachedAppointment) {
		return &cachedAppointment, nil
	}
	appointment, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, idKey(id), appointment)
	return appointment, nil
}

func (r *appointmentRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	key := pageKey("page", pageable)
	var cachedPage domain.Page[domain.Appointment]
	if r.lookup(ctx, key, &cachedPage) {
		return cachedPage, nil
	}
	page, err := r.inner.GetPage(ctx, pageable)
	if err != nil {
		return page, err
	}
	r.store(ctx, key, page)
	return page, nil
}

func (r *appointmentRepository) GetPageByIDs(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	key := idsPageKey(ids, pageable)
	var cachedPage domain.Page[domain.Appointment]
	if r.lookup(ctx, key, &cachedPage) {
		return cachedPage, nil
	}
	page, err := r.inner.GetPageByIDs(ctx, ids, pageable)
	if err != nil {
		return page, err
	}
	r.store(ctx, key, page)
	return page, nil
}

func (r *appointmentRepository) GetPageByCoachID(ctx context.Context, coachID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	key := "coach:" + coachID.Hex() + ":" + pageKey("page", pageable)
	var cachedPage domain.Page[domain.Appointment]
	if r.lookup(ctx, key, &cachedPage) {
		return cachedPage, nil
	}
	page, err := r.inner.GetPageByCoachID(ctx, coachID, pageable)
	if err != nil {
		return page, err
	}
	r.store(ctx, key, page)
	return page, nil
}

func (r *appointmentRepository) GetPageByAthleteID(ctx context.Context, athleteID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	key := "athlete:" + athleteID.Hex() + ":" + pageKey("page", pageable)
	var cachedPage domain.Page[domain.Appointment]
	if r.lookup(ctx, key, &cachedPage) {
		return cachedPage, nil
	}
	page, err := r.inner.GetPageByAthleteID(ctx, athleteID, pageable)
	if err != nil {
		return page, err
	}
	r.store(ctx, key, page)
	return page, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	if err := r.inner.Update(ctx, appointment); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}
