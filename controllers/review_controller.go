package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// GetProductReviews godoc
// @Summary Get product reviews
// @Description Get all reviews for a product along with its average rating
// @Tags Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /products/{id}/reviews [get]
func (ctrl *ReviewController) GetProductReviews(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid product ID",
		})
		return
	}

	reviews, err := ctrl.reviewService.GetProductReviews(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false, Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Reviews retrieved",
		Data:    reviews,
	})
}

// CreateReview godoc
// @Summary Create review
// @Description Submit a review for a product. Each user may review a product once.
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.CreateReviewRequest true "Rating and comment"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /products/{id}/reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid product ID",
		})
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid request", Error: err.Error(),
		})
		return
	}

	review, err := ctrl.reviewService.CreateReview(c.Request.Context(), userID, productID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Review submitted",
		Data:    review,
	})
}

// DeleteReview godoc
// @Summary Delete review
// @Description Delete a review. Customers can only delete their own reviews.
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /reviews/{id} [delete]
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	userID := c.GetInt("user_id")

	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid review ID",
		})
		return
	}

	if err := ctrl.reviewService.DeleteReview(c.Request.Context(), reviewID, userID, middleware.IsAdmin(c)); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrReviewNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse{
			Success: false, Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Review deleted"})
}
