package usecase

import "errors"

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrItemUnavailable    = errors.New("item not available")
	ErrSelfPurchase       = errors.New("cannot purchase your own item")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyContent       = errors.New("message content is empty")
)
