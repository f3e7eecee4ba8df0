package models

import "gorm.io/gorm"

// User is a registered account. Password holds the bcrypt hash, never the
// plain text, and is excluded from every JSON response.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Role     Role   `json:"role" gorm:"type:varchar(20);default:citizen"`
}
