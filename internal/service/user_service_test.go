package service

import (
	"context"
	"testing"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedUser(t *testing.T, users *fakeUserRepo, username, email string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Email: email}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestUserService_UpdateProfileSoloCamposPresentes(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)
	ctx := context.Background()

	u := seedUser(t, users, "gundamfan", "fan@example.com")
	actor := model.Principal{ID: u.ID.Hex()}

	updated, err := svc.UpdateProfile(ctx, actor, dto.UpdateProfileRequest{
		City:    "Rosario",
		Country: "Argentina",
	})
	require.NoError(t, err)

	assert.Equal(t, "gundamfan", updated.Username, "los campos ausentes no se pisan")
	assert.Equal(t, "fan@example.com", updated.Email)
	assert.Equal(t, "Rosario", updated.City)
	assert.Equal(t, "Argentina", updated.Country)
}

func TestUserService_AdminUpdatePuedeTocarIsAdmin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)
	ctx := context.Background()

	u := seedUser(t, users, "gundamfan", "fan@example.com")

	isAdmin := true
	updated, err := svc.AdminUpdate(ctx, u.ID.Hex(), dto.AdminUpdateUserRequest{IsAdmin: &isAdmin})
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)

	isAdmin = false
	updated, err = svc.AdminUpdate(ctx, u.ID.Hex(), dto.AdminUpdateUserRequest{IsAdmin: &isAdmin})
	require.NoError(t, err)
	assert.False(t, updated.IsAdmin)
}

func TestUserService_IdsInvalidos(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	var ruleError *RuleError
	_, err := svc.GetCurrentUser(ctx, model.Principal{ID: "no-es-un-id"})
	require.ErrorAs(t, err, &ruleError)

	_, err = svc.AdminUpdate(ctx, "tampoco", dto.AdminUpdateUserRequest{})
	require.ErrorAs(t, err, &ruleError)

	err = svc.Delete(ctx, "menos")
	require.ErrorAs(t, err, &ruleError)

	_, err = svc.GetCurrentUser(ctx, model.Principal{ID: primitive.NewObjectID().Hex()})
	assert.True(t, isNotFound(err))
}
