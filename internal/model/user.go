// user.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`

	// Hash bcrypt, nunca se expone. Los DTOs de respuesta lo omiten.
	Password string `bson:"password" json:"-"`

	IsAdmin bool   `bson:"isAdmin" json:"isAdmin"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	Avatar  string `bson:"avatar,omitempty" json:"avatar,omitempty"`

	RefreshToken string `bson:"refresh_token,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SetPassword hashea y guarda la contraseña en el documento.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *User) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// Principal es el usuario autenticado que resuelve el middleware a partir
// del token. Se pasa explícitamente a los servicios, no viaja como estado
// ambiente del request.
type Principal struct {
	ID       string
	Username string
	Email    string
	IsAdmin  bool
}
