package cached

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/cache"
	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/repository"
)

// coachRepository decorates a repository.CoachRepository with the
// cache-aside policy of the "coaches" namespace.
type coachRepository struct {
	inner repository.CoachRepository
	cacheHelper
}

// NewCoachRepository wraps inner with caching.
func NewCoachRepository(inner repository.CoachRepository, c cache.Cache, log zerolog.Logger) repository.CoachRepository {
	return &coachRepository{inner: inner, cacheHelper: newCacheHelper(c, nsCoaches, log)}
}

func (r *coachRepository) Create(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error) {
	id, err := r.inner.Create(ctx, coach)
	if err != nil {
		return primitive.NilObjectID, err
	}
	r.invalidate(ctx)
	return id, nil
}

func (r *coachRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	var cachedCoach domain.Coach
	if r.lookup(ctx, idKey(id), &cachedCoach) {
		return &cachedCoach, nil
	}
	coach, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, idKey(id), coach)
	return coach, nil
}

// GetByIDAny bypasses the cache, same as the athlete decorator.
func (r *coachRepository) GetByIDAny(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	return r.inner.GetByIDAny(ctx, id)
}

func (r *coachRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Coach], error) {
	key := pageKey("page", pageable)
	var cachedPage domain.Page[domain.Coach]
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

func (r *coachRepository) Update(ctx context.Context, coach *domain.Coach) error {
	if err := r.inner.Update(ctx, coach); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *coachRepository) FindByDocument(ctx context.Context, document string) (*domain.Coach, error) {
	var cachedCoach domain.Coach
	if r.lookup(ctx, documentKey(document), &cachedCoach) {
		return &cachedCoach, nil
	}
	coach, err := r.inner.FindByDocument(ctx, document)
	if err != nil {
		return nil, err
	}
	r.store(ctx, documentKey(document), coach)
	return coach, nil
}
