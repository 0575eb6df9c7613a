package repositories

import (
	"context"

	"storefront/models"
)

// Repository interfaces let the service layer be tested against mocks; the
// pgx implementations in this package are the only production ones.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindAll(ctx context.Context, page, limit int) ([]models.User, int, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int, hashedPassword string) error
	Delete(ctx context.Context, id int) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id int) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int) error
	CountChildren(ctx context.Context, id int) (int, error)
	CountProducts(ctx context.Context, id int) (int, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id int) (*models.Product, error)
	FindAll(ctx context.Context, page, limit, categoryID int, search string) ([]models.Product, int, error)
	Update(ctx context.Context, product *models.Product) error
	SoftDelete(ctx context.Context, id int) error
}

type CartRepository interface {
	Upsert(ctx context.Context, userID, productID, quantity int) error
	SetQuantity(ctx context.Context, userID, productID, quantity int) error
	Remove(ctx context.Context, userID, productID int) error
	Clear(ctx context.Context, userID int) error
	ListLines(ctx context.Context, userID int) ([]models.CartLine, error)
}

type OrderRepository interface {
	// CreateWithItems inserts the order and its line items, decrements each
	// product's stock (floored at zero) and clears the user's cart, all in
	// one transaction.
	CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindByUser(ctx context.Context, userID, page, limit int, status string) ([]models.Order, int, error)
	FindAll(ctx context.Context, page, limit int, status string) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	// CancelWithRestock marks the order cancelled and restores each involved
	// product's stock from the order's line items, in one transaction.
	CancelWithRestock(ctx context.Context, id int) error
}

type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
	FindByID(ctx context.Context, id int) (*models.Address, error)
	ListByUser(ctx context.Context, userID int) ([]models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id int) error
	// SetDefault clears every other default flag for the user and sets the
	// given address as default, in one transaction.
	SetDefault(ctx context.Context, userID, addressID int) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Exists(ctx context.Context, userID, productID int) (bool, error)
	FindByID(ctx context.Context, id int) (*models.Review, error)
	ListByProduct(ctx context.Context, productID int) ([]models.Review, error)
	AverageRating(ctx context.Context, productID int) (float64, error)
	Delete(ctx context.Context, id int) error
}

type WishlistRepository interface {
	// Add returns false when the product is already on the user's wishlist.
	Add(ctx context.Context, userID, productID int) (bool, error)
	Remove(ctx context.Context, userID, productID int) error
	List(ctx context.Context, userID int) ([]models.WishlistEntry, error)
}
