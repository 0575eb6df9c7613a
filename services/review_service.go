package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"
)

type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// CreateReview records a review; a user may review a product only once.
func (s *ReviewService) CreateReview(ctx context.Context, userID, productID int, req models.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, ErrProductNotFound
	}

	exists, err := s.reviewRepo.Exists(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ProductReviews is the review listing payload with the average rating.
type ProductReviews struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
}

func (s *ReviewService) GetProductReviews(ctx context.Context, productID int) (*ProductReviews, error) {
	reviews, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	avg, err := s.reviewRepo.AverageRating(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &ProductReviews{Reviews: reviews, AverageRating: avg}, nil
}

// DeleteReview removes a review. Non-admins may only delete their own.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID, userID int, isAdmin bool) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return ErrReviewNotFound
	}
	if !isAdmin && review.UserID != userID {
		return ErrReviewNotFound
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}
