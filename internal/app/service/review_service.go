package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/store"
	"github.com/vitrina-app/vitrina-backend/pkg/logger"
)

type ReviewService interface {
	// ListReviews is fail-soft: fetch failures yield an empty list.
	ListReviews(ctx context.Context) []model.Review

	// SearchReviews filters the full list by a case-insensitive
	// substring match against userName or text.
	SearchReviews(ctx context.Context, query string) []model.Review

	AddReview(ctx context.Context, review model.Review) (string, error)
	DeleteReview(ctx context.Context, id string) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) ListReviews(ctx context.Context) []model.Review {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to fetch reviews", err, nil)
		return []model.Review{}
	}

	logger.Debug("Reviews fetched", map[string]interface{}{
		"count": len(reviews),
	})
	return reviews
}

func (s *reviewService) SearchReviews(ctx context.Context, query string) []model.Review {
	return FilterReviews(s.ListReviews(ctx), query)
}

func (s *reviewService) AddReview(ctx context.Context, review model.Review) (string, error) {
	logger.Info("Creating new review", map[string]interface{}{
		"user_name":   review.UserName,
		"image_count": len(review.Images),
	})

	id, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		logger.Error("Failed to create review", err, map[string]interface{}{
			"user_name": review.UserName,
		})
		if errors.Is(err, store.ErrPermissionDenied) {
			return "", ErrPermissionDenied
		}
		return "", err
	}

	logger.Info("Review created successfully", map[string]interface{}{
		"review_id": id,
	})
	return id, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id string) error {
	logger.Info("Deleting review", map[string]interface{}{
		"review_id": id,
	})

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete review", err, map[string]interface{}{
			"review_id": id,
		})
		return err
	}
	return nil
}

// FilterReviews keeps reviews whose userName or text contains the query,
// case-insensitively. An empty query returns the input unchanged.
func FilterReviews(reviews []model.Review, query string) []model.Review {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return reviews
	}

	filtered := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		if strings.Contains(strings.ToLower(r.UserName), q) ||
			strings.Contains(strings.ToLower(r.Text), q) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
