package domain

// Role labels asserted inside access tokens
const (
	RoleUser  = "User"  // Regular user, read-only access
	RoleAdmin = "Admin" // Admin, may mutate products and manage users
)

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`              // Primary key
	Username string `gorm:"unique;not null" json:"username"`   // Unique username
	Password string `gorm:"not null" json:"-"`                 // Bcrypt hash, never serialized
	Email    string `json:"email"`                             // Contact email
	Role     string `gorm:"default:User;not null" json:"role"` // Role: User or Admin
}
