package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type AddressController struct {
	addressService *services.AddressService
}

func NewAddressController(addressService *services.AddressService) *AddressController {
	return &AddressController{addressService: addressService}
}

// GetAddresses godoc
// @Summary Get addresses
// @Description Get the current user's saved addresses
// @Tags Addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /addresses [get]
func (ctrl *AddressController) GetAddresses(c *gin.Context) {
	userID := c.GetInt("user_id")

	addresses, err := ctrl.addressService.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false, Message: "Failed to retrieve addresses", Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Addresses retrieved",
		Data:    addresses,
	})
}

// GetAddressByID godoc
// @Summary Get address detail
// @Tags Addresses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /addresses/{id} [get]
func (ctrl *AddressController) GetAddressByID(c *gin.Context) {
	userID := c.GetInt("user_id")

	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid address ID",
		})
		return
	}

	address, err := ctrl.addressService.GetAddress(c.Request.Context(), userID, addressID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false, Message: "Address not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Address retrieved",
		Data:    address,
	})
}

// CreateAddress godoc
// @Summary Create address
// @Description Add a new address. The first address automatically becomes the default.
// @Tags Addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddressRequest true "Address data"
// @Success 201 {object} models.Response
// @Router /addresses [post]
func (ctrl *AddressController) CreateAddress(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid request", Error: err.Error(),
		})
		return
	}

	address, err := ctrl.addressService.CreateAddress(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false, Message: "Failed to create address", Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Address created",
		Data:    address,
	})
}

// UpdateAddress godoc
// @Summary Update address
// @Tags Addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param request body models.AddressRequest true "Address data"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /addresses/{id} [patch]
func (ctrl *AddressController) UpdateAddress(c *gin.Context) {
	userID := c.GetInt("user_id")

	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid address ID",
		})
		return
	}

	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid request", Error: err.Error(),
		})
		return
	}

	address, err := ctrl.addressService.UpdateAddress(c.Request.Context(), userID, addressID, req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrAddressNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse{
			Success: false, Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Address updated",
		Data:    address,
	})
}

// SetDefaultAddress godoc
// @Summary Set default address
// @Description Mark an address as the default, clearing the flag on all others
// @Tags Addresses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /addresses/{id}/default [patch]
func (ctrl *AddressController) SetDefaultAddress(c *gin.Context) {
	userID := c.GetInt("user_id")

	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid address ID",
		})
		return
	}

	if err := ctrl.addressService.SetDefault(c.Request.Context(), userID, addressID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrAddressNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse{
			Success: false, Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Default address updated"})
}

// DeleteAddress godoc
// @Summary Delete address
// @Tags Addresses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /addresses/{id} [delete]
func (ctrl *AddressController) DeleteAddress(c *gin.Context) {
	userID := c.GetInt("user_id")

	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false, Message: "Invalid address ID",
		})
		return
	}

	if err := ctrl.addressService.DeleteAddress(c.Request.Context(), userID, addressID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrAddressNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse{
			Success: false, Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Address deleted"})
}
