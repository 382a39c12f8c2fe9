package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/service"
	"github.com/vitrina-app/vitrina-backend/internal/errors"
	"github.com/vitrina-app/vitrina-backend/internal/realtime"
)

type ReviewController struct {
	reviewService service.ReviewService
	hub           *realtime.Hub
}

func NewReviewController(reviewService service.ReviewService, hub *realtime.Hub) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		hub:           hub,
	}
}

// ListReviews handles GET /api/v1/reviews
// An optional search param filters by reviewer name or text.
func (ctrl *ReviewController) ListReviews(c *gin.Context) {
	reviews := ctrl.reviewService.SearchReviews(c.Request.Context(), c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// CreateReview handles POST /api/v1/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var review model.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid review payload: "+err.Error())
		return
	}

	if review.UserName == "" || review.Text == "" {
		errors.BadRequest(c, errors.ValidationRequired, "Reviewer name and text are required")
		return
	}

	id, err := ctrl.reviewService.AddReview(c.Request.Context(), review)
	if err != nil {
		errors.HandleStoreWriteError(c, err, "Failed to create review")
		return
	}

	ctrl.hub.Notify("reviews")
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteReview handles DELETE /api/v1/reviews/:id (admin)
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		errors.HandleStoreWriteError(c, err, "Failed to delete review")
		return
	}

	ctrl.hub.Notify("reviews")
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
