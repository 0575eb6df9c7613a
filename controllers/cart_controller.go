package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current user's cart with line subtotals and total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false, Message: "Failed to retrieve cart", Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    cart,
	})
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Add a product to the cart, incrementing quantity if it already exists
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CartItemRequest true "Product and quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid request", Error: err.Error(),
		})
		return
	}

	if err := ctrl.cartService.AddItem(c.Request.Context(), userID, req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item added to cart"})
}

// UpdateCartItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a cart item. A quantity of zero removes the item.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/{productId} [patch]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid product ID",
		})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid request", Error: err.Error(),
		})
		return
	}

	if err := ctrl.cartService.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart updated"})
}

// RemoveCartItem godoc
// @Summary Remove item from cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/{productId} [delete]
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid product ID",
		})
		return
	}

	if err := ctrl.cartService.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item removed from cart"})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every item from the current user's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := ctrl.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false, Message: "Failed to clear cart", Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared"})
}
