package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, Role("owner").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_Tiers(t *testing.T) {
	tests := []struct {
		role      Role
		admin     bool
		moderator bool
	}{
		{RoleUser, false, false},
		{RoleModerator, false, true},
		{RoleAdmin, true, true},
		{RoleSuperuser, true, true},
		{Role("bogus"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.admin, tt.role.IsAdmin())
			assert.Equal(t, tt.moderator, tt.role.IsModerator())
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleSuperuser.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RoleSuperuser))
	assert.True(t, RoleModerator.AtLeast(RoleUser))
	assert.False(t, RoleUser.AtLeast(RoleModerator))
	assert.False(t, Role("").AtLeast(Role("")))
}
