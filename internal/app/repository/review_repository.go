package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/store"
)

const reviewsPath = "reviews"

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]model.Review, error)
	Create(ctx context.Context, review model.Review) (string, error)
	Delete(ctx context.Context, id string) error
}

type reviewRepository struct {
	store store.Store
}

func NewReviewRepository(s store.Store) ReviewRepository {
	return &reviewRepository{store: s}
}

// FindAll returns all reviews sorted newest-createdAt first.
func (r *reviewRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	records := make(map[string]model.ReviewRecord)
	if err := r.store.Get(ctx, reviewsPath, &records); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []model.Review{}, nil
		}
		return nil, err
	}

	reviews := make([]model.Review, 0, len(records))
	for id, record := range records {
		reviews = append(reviews, record.Normalize(id))
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review model.Review) (string, error) {
	return r.store.Push(ctx, reviewsPath, model.NewReviewRecord(review, time.Now()))
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, reviewsPath+"/"+id)
}
