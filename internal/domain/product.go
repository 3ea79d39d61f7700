package domain

// Product Model
type Product struct {
	ID    uint    `gorm:"primaryKey" json:"id"`         // Primary key, assigned on creation
	Name  string  `gorm:"size:100;not null" json:"name"` // Product name, at most 100 characters
	Price float64 `gorm:"not null" json:"price"`        // Unit price, in (0, 1000]
	Stock int     `gorm:"not null" json:"stock"`        // Units on hand, never negative
}
