package store

import (
	"context"

	"product_catalog/internal/domain"
)

// ProductStore is the persistence surface the product handlers depend on.
type ProductStore interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id uint) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uint) error
}

// UserStore is the persistence surface the auth and admin handlers depend on.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}
