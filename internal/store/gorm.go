package store

import (
	"context" // Request-scoped cancellation
	"errors"  // Error matching

	"gorm.io/gorm" // GORM ORM library

	"product_catalog/internal/domain" // Domain models and errors
)

// GormProductStore persists products through GORM.
type GormProductStore struct {
	db *gorm.DB
}

// NewGormProductStore returns a product store backed by db.
func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

// List returns all products.
func (s *GormProductStore) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns the product with the given id, or domain.ErrNotFound.
func (s *GormProductStore) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// Create inserts p and fills in its assigned id.
func (s *GormProductStore) Create(ctx context.Context, p *domain.Product) error {
	return translate(s.db.WithContext(ctx).Create(p).Error)
}

// Update replaces the stored row for p.ID, or returns domain.ErrNotFound.
func (s *GormProductStore) Update(ctx context.Context, p *domain.Product) error {
	var existing domain.Product
	// Existence check first: Save would upsert a missing row
	if err := s.db.WithContext(ctx).First(&existing, p.ID).Error; err != nil {
		return translate(err)
	}
	return s.db.WithContext(ctx).Save(p).Error
}

// Delete removes the product with the given id, or returns domain.ErrNotFound.
func (s *GormProductStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GormUserStore persists users through GORM.
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore returns a user store backed by db.
func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// GetByUsername returns the user with the exact username, or domain.ErrNotFound.
func (s *GormUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Create inserts u, or returns domain.ErrDuplicate on a username collision.
func (s *GormUserStore) Create(ctx context.Context, u *domain.User) error {
	return translate(s.db.WithContext(ctx).Create(u).Error)
}

// List returns one page of users plus the total count.
func (s *GormUserStore) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := s.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// translate maps GORM errors onto the domain error taxonomy.
// Requires gorm.Config{TranslateError: true} for duplicate detection.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicate
	default:
		return err
	}
}
