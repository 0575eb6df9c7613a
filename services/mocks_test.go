package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/models"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	args := m.Called(ctx, phone)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context, page, limit int) ([]models.User, int, error) {
	args := m.Called(ctx, page, limit)
	users, _ := args.Get(0).([]models.User)
	return users, args.Int(1), args.Error(2)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	args := m.Called(ctx, userID, hashedPassword)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id int) (*models.Category, error) {
	args := m.Called(ctx, id)
	cat, _ := args.Get(0).(*models.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]models.Category)
	return cats, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepo) CountChildren(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockCategoryRepo) CountProducts(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id int) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, page, limit, categoryID int, search string) ([]models.Product, int, error) {
	args := m.Called(ctx, page, limit, categoryID, search)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Int(1), args.Error(2)
}

func (m *mockProductRepo) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) SoftDelete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) Upsert(ctx context.Context, userID, productID, quantity int) error {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Error(0)
}

func (m *mockCartRepo) SetQuantity(ctx context.Context, userID, productID, quantity int) error {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Error(0)
}

func (m *mockCartRepo) Remove(ctx context.Context, userID, productID int) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *mockCartRepo) Clear(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockCartRepo) ListLines(ctx context.Context, userID int) ([]models.CartLine, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]models.CartLine)
	return lines, args.Error(1)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id int) (*models.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepo) FindByUser(ctx context.Context, userID, page, limit int, status string) ([]models.Order, int, error) {
	args := m.Called(ctx, userID, page, limit, status)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Int(1), args.Error(2)
}

func (m *mockOrderRepo) FindAll(ctx context.Context, page, limit int, status string) ([]models.Order, int, error) {
	args := m.Called(ctx, page, limit, status)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Int(1), args.Error(2)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockOrderRepo) CancelWithRestock(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAddressRepo struct{ mock.Mock }

func (m *mockAddressRepo) Create(ctx context.Context, address *models.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *mockAddressRepo) FindByID(ctx context.Context, id int) (*models.Address, error) {
	args := m.Called(ctx, id)
	address, _ := args.Get(0).(*models.Address)
	return address, args.Error(1)
}

func (m *mockAddressRepo) ListByUser(ctx context.Context, userID int) ([]models.Address, error) {
	args := m.Called(ctx, userID)
	addresses, _ := args.Get(0).([]models.Address)
	return addresses, args.Error(1)
}

func (m *mockAddressRepo) Update(ctx context.Context, address *models.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *mockAddressRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAddressRepo) SetDefault(ctx context.Context, userID, addressID int) error {
	args := m.Called(ctx, userID, addressID)
	return args.Error(0)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) Exists(ctx context.Context, userID, productID int) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id int) (*models.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepo) ListByProduct(ctx context.Context, productID int) ([]models.Review, error) {
	args := m.Called(ctx, productID)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewRepo) AverageRating(ctx context.Context, productID int) (float64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockWishlistRepo struct{ mock.Mock }

func (m *mockWishlistRepo) Add(ctx context.Context, userID, productID int) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWishlistRepo) Remove(ctx context.Context, userID, productID int) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *mockWishlistRepo) List(ctx context.Context, userID int) ([]models.WishlistEntry, error) {
	args := m.Called(ctx, userID)
	entries, _ := args.Get(0).([]models.WishlistEntry)
	return entries, args.Error(1)
}

type mockSessionStore struct{ mock.Mock }

func (m *mockSessionStore) Create(ctx context.Context, userID int, remember bool) error {
	args := m.Called(ctx, userID, remember)
	return args.Error(0)
}

func (m *mockSessionStore) Validate(ctx context.Context, userID int) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSessionStore) Destroy(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockEmailSender struct{ mock.Mock }

func (m *mockEmailSender) SendTemporaryPassword(toEmail, name, tempPassword string) error {
	args := m.Called(toEmail, name, tempPassword)
	return args.Error(0)
}
