package cached

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/cache"
	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/repository"
)

// athleteRepository decorates a repository.AthleteRepository with the
// cache-aside policy of the "athletes" namespace.
type athleteRepository struct {
	inner repository.AthleteRepository
	cacheHelper
}

// NewAthleteRepository wraps inner with caching.
func NewAthleteRepository(inner repository.AthleteRepository, c cache.Cache, log zerolog.Logger) repository.AthleteRepository {
	return &athleteRepository{inner: inner, cacheHelper: newCacheHelper(c, nsAthletes, log)}
}

func (r *athleteRepository) Create(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error) {
	id, err := r.inner.Create(ctx, athlete)
	if err != nil {
		return primitive.NilObjectID, err
	}
	r.invalidate(ctx)
	return id, nil
}

func (r *athleteRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	var cachedAthlete domain.Athlete
	if r.lookup(ctx, idKey(id), &cachedAthlete) {
		return &cachedAthlete, nil
	}
	athlete, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, idKey(id), athlete)
	return athlete, nil
}

// GetByIDAny bypasses the cache: the raw lookup may return soft-deleted
// records, which must not shadow the filtered by-id entries.
func (r *athleteRepository) GetByIDAny(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	return r.inner.GetByIDAny(ctx, id)
}

func (r *athleteRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Athlete], error) {
	key := pageKey("page", pageable)
	var cachedPage domain.Page[domain.Athlete]
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

func (r *athleteRepository) Update(ctx context.Context, athlete *domain.Athlete) error {
	if err := r.inner.Update(ctx, athlete); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *athleteRepository) FindByDocument(ctx context.Context, document string) (*domain.Athlete, error) {
	var cachedAthlete domain.Athlete
	if r.lookup(ctx, documentKey(document), &cachedAthlete) {
		return &cachedAthlete, nil
	}
	athlete, err := r.inner.FindByDocument(ctx, document)
	if err != nil {
		return nil, err
	}
	r.store(ctx, documentKey(document), athlete)
	return athlete, nil
}
