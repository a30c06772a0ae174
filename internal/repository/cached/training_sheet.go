package cached

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/cache"
	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/repository"
)

// trainingSheetRepository decorates a repository.TrainingSheetRepository
// with the cache-aside policy of the "training_sheets" namespace.
type trainingSheetRepository struct {
	inner repository.TrainingSheetRepository
	cacheHelper
}

// NewTrainingSheetRepository wraps inner with caching.
func NewTrainingSheetRepository(inner repository.TrainingSheetRepository, c cache.Cache, log zerolog.Logger) repository.TrainingSheetRepository {
	return &trainingSheetRepository{inner: inner, cacheHelper: newCacheHelper(c, nsTrainingSheets, log)}
}

func (r *trainingSheetRepository) Create(ctx context.Context, sheet *domain.TrainingSheet) (primitive.ObjectID, error) {
	id, err := r.inner.Create(ctx, sheet)
	if err != nil {
		return primitive.NilObjectID, err
	}
	r.invalidate(ctx)
	return id, nil
}

func (r *trainingSheetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error) {
	var cachedSheet domain.TrainingSheet
	if r.lookup(ctx, idKey(id), &cachedSheet) {
		return &cachedSheet, nil
	}
	sheet, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, idKey(id), sheet)
	return sheet, nil
}

func (r *trainingSheetRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
	key := pageKey("page", pageable)
	var cachedPage domain.Page[domain.TrainingSheet]
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

func (r *trainingSheetRepository) GetPageByIDs(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
	key := idsPageKey(ids, pageable)
	var cachedPage domain.Page[domain.TrainingSheet]
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

func (r *trainingSheetRepository) Update(ctx context.Context, sheet *domain.TrainingSheet) error {
	if err := r.inner.Update(ctx, sheet); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}
