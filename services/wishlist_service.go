package services

import (
	"context"
	"errors"

	"storefront/models"
	"storefront/repositories"
)

var ErrAlreadyInWishlist = errors.New("product already in wishlist")

type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

func (s *WishlistService) AddToWishlist(ctx context.Context, userID, productID int) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil || !product.IsActive {
		return ErrProductNotFound
	}

	added, err := s.wishlistRepo.Add(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !added {
		return ErrAlreadyInWishlist
	}
	return nil
}

func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userID, productID int) error {
	return s.wishlistRepo.Remove(ctx, userID, productID)
}

func (s *WishlistService) GetWishlist(ctx context.Context, userID int) ([]models.WishlistEntry, error) {
	return s.wishlistRepo.List(ctx, userID)
}
