package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"
)

type AddressService struct {
	addressRepo repositories.AddressRepository
}

func NewAddressService(addressRepo repositories.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

func (s *AddressService) ListAddresses(ctx context.Context, userID int) ([]models.Address, error) {
	return s.addressRepo.ListByUser(ctx, userID)
}

func (s *AddressService) GetAddress(ctx context.Context, userID, addressID int) (*models.Address, error) {
	address, err := s.addressRepo.FindByID(ctx, addressID)
	if err != nil || address.UserID != userID {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

func (s *AddressService) CreateAddress(ctx context.Context, userID int, req models.AddressRequest) (*models.Address, error) {
	// The first address a user creates becomes their default.
	existing, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	address := &models.Address{
		UserID:       userID,
		ReceiverName: req.ReceiverName,
		Phone:        req.Phone,
		Street:       req.Street,
		City:         req.City,
		PostalCode:   req.PostalCode,
		IsDefault:    req.IsDefault || len(existing) == 0,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) UpdateAddress(ctx context.Context, userID, addressID int, req models.AddressRequest) (*models.Address, error) {
	address, err := s.GetAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	address.ReceiverName = req.ReceiverName
	address.Phone = req.Phone
	address.Street = req.Street
	address.City = req.City
	address.PostalCode = req.PostalCode
	address.IsDefault = req.IsDefault

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, userID, addressID int) error {
	if _, err := s.GetAddress(ctx, userID, addressID); err != nil {
		return err
	}
	return s.addressRepo.Delete(ctx, addressID)
}

// SetDefault makes the given address the user's single default.
func (s *AddressService) SetDefault(ctx context.Context, userID, addressID int) error {
	if _, err := s.GetAddress(ctx, userID, addressID); err != nil {
		return err
	}
	return s.addressRepo.SetDefault(ctx, userID, addressID)
}
