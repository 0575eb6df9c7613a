package services

import "errors"

var (
	ErrCartEmpty          = errors.New("cart empty")
	ErrAlreadyReviewed    = errors.New("already reviewed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPhoneTaken         = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountBanned      = errors.New("account is banned")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrNotCancellable     = errors.New("only pending or confirmed orders can be cancelled")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidOldPassword = errors.New("invalid old password")
	ErrEmailNotConfigured = errors.New("email service not configured")
	ErrEmailSendFailed    = errors.New("failed to send email")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrNegativeStock      = errors.New("stock must not be negative")
)
