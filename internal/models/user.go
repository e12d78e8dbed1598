// internal/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// User is a single account record. Admins and customers share the schema and
// differ only by the role field; role-specific behavior goes through IsAdmin.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	PasswordHash  string             `bson:"password" json:"-"`
	Address       string             `bson:"address" json:"address"`
	Role          UserRole           `bson:"role" json:"role"`
	LoyaltyPoints int                `bson:"loyaltyPoints" json:"loyaltyPoints"`
	Timestamps    `bson:",inline"`
}

func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

func (u *User) AddLoyalty(points int) {
	u.LoyaltyPoints += points
}
