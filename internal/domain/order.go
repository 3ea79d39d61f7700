package domain

// Order and OrderDetail are migrated for schema parity with the original
// catalog database. No exposed operation reads or writes them.

// Order Model
type Order struct {
	ID        uint          `gorm:"primaryKey"`           // Primary key
	UserID    uint          `gorm:"index"`                // Foreign key to User
	Details   []OrderDetail `gorm:"constraint:OnDelete:CASCADE;"` // Line items
	CreatedAt int64         `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}

// OrderDetail Model
type OrderDetail struct {
	ID        uint    `gorm:"primaryKey"` // Primary key
	OrderID   uint    `gorm:"index"`      // Foreign key to Order
	ProductID uint    `gorm:"index"`      // Foreign key to Product
	Quantity  int     // Units ordered
	UnitPrice float64 // Price at order time
}
