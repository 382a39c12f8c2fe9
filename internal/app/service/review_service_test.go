package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/store"
)

func setupReviewServiceTest(t *testing.T) (ReviewService, *store.Memory) {
	mem := store.NewMemory()
	reviewRepo := repository.NewReviewRepository(mem)
	return NewReviewService(reviewRepo), mem
}

func seedReview(t *testing.T, mem *store.Memory, id string, record model.ReviewRecord) {
	t.Helper()
	require.NoError(t, mem.Set(context.Background(), "reviews/"+id, record))
}

func TestReviewService_ListReviews_SortedNewestFirst(t *testing.T) {
	reviewService, mem := setupReviewServiceTest(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedReview(t, mem, "r1", model.ReviewRecord{
		UserName:  "Maria",
		Text:      "First",
		CreatedAt: model.FormatTimestamp(base),
	})
	seedReview(t, mem, "r2", model.ReviewRecord{
		UserName:  "Jonas",
		Text:      "Second",
		CreatedAt: model.FormatTimestamp(base.Add(time.Hour)),
	})

	reviews := reviewService.ListReviews(context.Background())

	require.Len(t, reviews, 2)
	assert.Equal(t, "Second", reviews[0].Text)
	assert.Equal(t, "First", reviews[1].Text)
	assert.NotNil(t, reviews[0].Images)
}

func TestReviewService_ListReviews_FailSoft(t *testing.T) {
	reviewService, mem := setupReviewServiceTest(t)
	mem.FailReads(errors.New("backend unreachable"))

	reviews := reviewService.ListReviews(context.Background())

	require.NotNil(t, reviews)
	assert.Len(t, reviews, 0)
}

func TestReviewService_SearchReviews(t *testing.T) {
	reviewService, mem := setupReviewServiceTest(t)

	now := time.Now()
	seedReview(t, mem, "r1", model.ReviewRecord{
		UserName:  "Maria",
		Text:      "Lovely mug, fast shipping",
		CreatedAt: model.FormatTimestamp(now),
	})
	seedReview(t, mem, "r2", model.ReviewRecord{
		UserName:  "Jonas",
		Text:      "Great board",
		CreatedAt: model.FormatTimestamp(now.Add(time.Minute)),
	})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "Empty query returns everything", query: "", want: 2},
		{name: "Matches reviewer name", query: "maria", want: 1},
		{name: "Matches review text", query: "BOARD", want: 1},
		{name: "No match", query: "necklace", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := reviewService.SearchReviews(context.Background(), tt.query)
			assert.Len(t, reviews, tt.want)
		})
	}
}

func TestReviewService_AddReview(t *testing.T) {
	reviewService, _ := setupReviewServiceTest(t)

	id, err := reviewService.AddReview(context.Background(), model.Review{
		UserName: "Maria",
		Text:     "Lovely mug",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, id)

	reviews := reviewService.ListReviews(context.Background())
	require.Len(t, reviews, 1)
	assert.Equal(t, id, reviews[0].ID)
	assert.False(t, reviews[0].CreatedAt.IsZero())
}

func TestReviewService_AddReview_PermissionDenied(t *testing.T) {
	reviewService, mem := setupReviewServiceTest(t)
	mem.FailWrites(store.ErrPermissionDenied)

	_, err := reviewService.AddReview(context.Background(), model.Review{UserName: "Maria", Text: "x"})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestReviewService_DeleteReview(t *testing.T) {
	reviewService, mem := setupReviewServiceTest(t)

	seedReview(t, mem, "r1", model.ReviewRecord{
		UserName:  "Maria",
		Text:      "Lovely mug",
		CreatedAt: model.FormatTimestamp(time.Now()),
	})

	require.NoError(t, reviewService.DeleteReview(context.Background(), "r1"))
	assert.Len(t, reviewService.ListReviews(context.Background()), 0)

	// Deleting an absent review is not an error.
	assert.NoError(t, reviewService.DeleteReview(context.Background(), "missing"))
}
