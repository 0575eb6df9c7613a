package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func TestCreateAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("first address becomes default", func(t *testing.T) {
		repo := new(mockAddressRepo)
		svc := NewAddressService(repo)

		repo.On("ListByUser", ctx, 1).Return([]models.Address{}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(a *models.Address) bool {
			return a.IsDefault
		})).Return(nil)

		_, err := svc.CreateAddress(ctx, 1, models.AddressRequest{
			ReceiverName: "Dewi", Street: "Jl. Sudirman 1", City: "Jakarta",
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("later addresses do not steal the default", func(t *testing.T) {
		repo := new(mockAddressRepo)
		svc := NewAddressService(repo)

		repo.On("ListByUser", ctx, 1).Return([]models.Address{{ID: 1, IsDefault: true}}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(a *models.Address) bool {
			return !a.IsDefault
		})).Return(nil)

		_, err := svc.CreateAddress(ctx, 1, models.AddressRequest{
			ReceiverName: "Dewi", Street: "Jl. Thamrin 2", City: "Jakarta",
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestSetDefaultAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sets default", func(t *testing.T) {
		repo := new(mockAddressRepo)
		svc := NewAddressService(repo)

		repo.On("FindByID", ctx, 4).Return(&models.Address{ID: 4, UserID: 1}, nil)
		repo.On("SetDefault", ctx, 1, 4).Return(nil)

		require.NoError(t, svc.SetDefault(ctx, 1, 4))
		repo.AssertExpectations(t)
	})

	t.Run("another user's address is not found", func(t *testing.T) {
		repo := new(mockAddressRepo)
		svc := NewAddressService(repo)

		repo.On("FindByID", ctx, 4).Return(&models.Address{ID: 4, UserID: 99}, nil)

		err := svc.SetDefault(ctx, 1, 4)
		assert.ErrorIs(t, err, ErrAddressNotFound)
		repo.AssertNotCalled(t, "SetDefault")
	})
}
