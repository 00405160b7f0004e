package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
)

func TestUserService_UpdateMeIgnoresRole(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	alice := e.actor(t, "alice", models.RoleUser)

	me, err := e.userSvc.UpdateMe(ctx, alice, dto.UpdateUserRequest{
		Bio:  ptr("hello"),
		Role: ptr("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", me.Bio)
	assert.Equal(t, models.RoleUser, me.Role)

	stored, err := e.users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestUserService_AdminChangesRoles(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	admin := e.actor(t, "root", models.RoleAdmin)
	e.actor(t, "alice", models.RoleUser)

	updated, err := e.userSvc.UpdateUser(ctx, admin, "alice", dto.UpdateUserRequest{Role: ptr("moderator")})
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, updated.Role)

	_, err = e.userSvc.UpdateUser(ctx, admin, "alice", dto.UpdateUserRequest{Role: ptr("owner")})
	assert.ErrorIs(t, err, ErrValidation)

	// admins may change their own role through /users/me/
	me, err := e.userSvc.UpdateMe(ctx, admin, dto.UpdateUserRequest{Role: ptr("superuser")})
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperuser, me.Role)
}

func TestUserService_AdminOnly(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	alice := e.actor(t, "alice", models.RoleUser)
	mod := e.actor(t, "mod", models.RoleModerator)

	_, err := e.userSvc.ListUsers(ctx, nil, dto.PageQuery{Page: 1, PageSize: 10}, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = e.userSvc.ListUsers(ctx, mod, dto.PageQuery{Page: 1, PageSize: 10}, "")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = e.userSvc.GetUser(ctx, alice, "mod")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, e.userSvc.DeleteUser(ctx, mod, "alice"), ErrForbidden)

	_, err = e.userSvc.Me(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUserService_CreateAndUniqueness(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	admin := e.actor(t, "root", models.RoleAdmin)

	created, err := e.userSvc.CreateUser(ctx, admin, dto.CreateUserRequest{Username: "carol", Email: "carol@example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, created.Role)

	var verr *ValidationError
	_, err = e.userSvc.CreateUser(ctx, admin, dto.CreateUserRequest{Username: "carol", Email: "c2@example.com"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")

	_, err = e.userSvc.CreateUser(ctx, admin, dto.CreateUserRequest{Username: "me", Email: "x@example.com"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")

	// keeping your own email is not a clash
	_, err = e.userSvc.UpdateUser(ctx, admin, "carol", dto.UpdateUserRequest{Email: ptr("carol@example.com"), FirstName: ptr("Carol")})
	require.NoError(t, err)

	_, err = e.userSvc.UpdateUser(ctx, admin, "carol", dto.UpdateUserRequest{Email: ptr("root@example.com")})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")

	page, err := e.userSvc.ListUsers(ctx, admin, dto.PageQuery{Page: 1, PageSize: 10}, "car")
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Count)

	require.NoError(t, e.userSvc.DeleteUser(ctx, admin, "carol"))
	_, err = e.userSvc.GetUser(ctx, admin, "carol")
	assert.ErrorIs(t, err, ErrNotFound)
}
