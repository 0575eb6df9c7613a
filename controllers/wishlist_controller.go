package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type WishlistController struct {
	wishlistService *services.WishlistService
}

func NewWishlistController(wishlistService *services.WishlistService) *WishlistController {
	return &WishlistController{wishlistService: wishlistService}
}

// GetWishlist godoc
// @Summary Get wishlist
// @Description Get the current user's wishlist with product details
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	userID := c.GetInt("user_id")

	items, err := ctrl.wishlistService.GetWishlist(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false, Message: "Failed to retrieve wishlist", Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Wishlist retrieved",
		Data:    items,
	})
}

// AddToWishlist godoc
// @Summary Add to wishlist
// @Description Add a product to the wishlist. Adding a product twice is a conflict.
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.WishlistRequest true "Product ID"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /wishlist [post]
func (ctrl *WishlistController) AddToWishlist(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid request", Error: err.Error(),
		})
		return
	}

	if err := ctrl.wishlistService.AddToWishlist(c.Request.Context(), userID, req.ProductID); err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyInWishlist):
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

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Added to wishlist"})
}

// RemoveFromWishlist godoc
// @Summary Remove from wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /wishlist/{productId} [delete]
func (ctrl *WishlistController) RemoveFromWishlist(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid product ID",
		})
		return
	}

	if err := ctrl.wishlistService.RemoveFromWishlist(c.Request.Context(), userID, productID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Removed from wishlist"})
}
