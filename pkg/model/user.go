package model

// User is an account created through signup. The password column holds a
// bcrypt hash, never plaintext, and is excluded from JSON responses.
type User struct {
	UserID   int    `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username string `gorm:"column:username;uniqueIndex" json:"username"`
	Email    string `gorm:"column:email;uniqueIndex" json:"email"`
	Password string `gorm:"column:password" json:"-"`
	FullName string `gorm:"column:full_name" json:"full_name"`
	Role     string `gorm:"column:role;default:user" json:"role"`
}

func (User) TableName() string {
	return "users"
}
