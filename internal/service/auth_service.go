package service

import (
	"context"
	"errors"
	"time"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/model"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims del access token. El refresh token solo lleva el id.
type Claims struct {
	UserID  string `json:"id"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users          UserRepository
	secret         []byte
	accessExpires  time.Duration
	refreshExpires time.Duration
}

func NewAuthService(users UserRepository, secret string, accessExpires, refreshExpires time.Duration) *AuthService {
	return &AuthService{
		users:          users,
		secret:         []byte(secret),
		accessExpires:  accessExpires,
		refreshExpires: refreshExpires,
	}
}

func (a *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	if _, err := a.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ruleErr("El email ya está registrado")
	} else if !isNotFound(err) {
		return nil, err
	}

	if _, err := a.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, ruleErr("El nombre de usuario ya existe")
	} else if !isNotFound(err) {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := a.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login valida credenciales y emite el par access/refresh. El refresh token
// queda persistido en el usuario, igual que en el front original.
func (a *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, string, error) {
	user, err := a.users.FindByEmail(ctx, email)
	if isNotFound(err) {
		return nil, "", "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", "", err
	}

	if !user.ComparePassword(password) {
		return nil, "", "", ErrInvalidCredentials
	}

	now := time.Now()

	access, err := a.sign(Claims{
		UserID:  user.ID.Hex(),
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.accessExpires)),
		},
	})
	if err != nil {
		return nil, "", "", err
	}

	refresh, err := a.sign(Claims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.refreshExpires)),
		},
	})
	if err != nil {
		return nil, "", "", err
	}

	user.RefreshToken = refresh
	if err := a.users.Save(ctx, user); err != nil {
		return nil, "", "", err
	}

	return user, access, refresh, nil
}

func (a *AuthService) ChangePassword(ctx context.Context, actor model.Principal, currentPassword, newPassword string) error {
	id, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return ruleErr("Usuario inválido")
	}

	user, err := a.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !user.ComparePassword(currentPassword) {
		return ruleErr("La contraseña actual no es correcta")
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	return a.users.Save(ctx, user)
}

func (a *AuthService) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// ParseToken verifica firma y expiración y devuelve las claims.
func (a *AuthService) ParseToken(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de firma inesperado")
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token inválido")
	}
	return &claims, nil
}

// Authenticate resuelve el Principal de un request: verifica el token y
// carga el usuario para no confiar en claims viejas (ej. isAdmin revocado).
func (a *AuthService) Authenticate(ctx context.Context, token string) (model.Principal, error) {
	claims, err := a.ParseToken(token)
	if err != nil {
		return model.Principal{}, err
	}

	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return model.Principal{}, errors.New("token inválido")
	}

	user, err := a.users.FindByID(ctx, id)
	if err != nil {
		return model.Principal{}, errors.New("usuario no encontrado")
	}

	return model.Principal{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}, nil
}
