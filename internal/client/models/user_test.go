package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{name: "nil user", user: nil, want: false},
		{name: "no roles", user: &User{Username: "alice"}, want: false},
		{name: "empty roles", user: &User{Roles: []Role{}}, want: false},
		{name: "regular user", user: &User{Roles: []Role{{Name: "USER"}}}, want: false},
		{name: "admin only", user: &User{Roles: []Role{{Name: RoleAdminUser}}}, want: true},
		{name: "admin among others", user: &User{Roles: []Role{{Name: "USER"}, {ID: 2, Name: "ADMIN_USER"}}}, want: true},
		{name: "case matters", user: &User{Roles: []Role{{Name: "admin_user"}}}, want: false},
		{name: "prefix is not enough", user: &User{Roles: []Role{{Name: "ADMIN_USER_READONLY"}}}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdmin(tt.user))
			assert.Equal(t, tt.want, tt.user.IsAdmin())
		})
	}
}

func TestIsAdmin_IgnoresNonRoleFields(t *testing.T) {
	roles := []Role{{Name: "USER"}, {Name: RoleAdminUser}}
	variants := []User{
		{Roles: roles},
		{Roles: roles, Name: "Bob", Email: "bob@example.com"},
		{Roles: roles, Confirmed: true, NodeID: "N-42", Position: "LEFT"},
		{Roles: roles, Username: "ADMIN_USER"},
	}
	for _, u := range variants {
		require.True(t, IsAdmin(&u))
	}

	plain := []Role{{Name: "USER"}}
	for _, u := range variants {
		u.Roles = plain
		require.False(t, IsAdmin(&u))
	}
}

func TestClone_IsDeep(t *testing.T) {
	u := &User{Username: "alice", Roles: []Role{{Name: "USER"}}}
	c := u.Clone()
	require.Equal(t, u, c)

	c.Roles[0].Name = RoleAdminUser
	assert.Equal(t, "USER", u.Roles[0].Name)
	assert.Nil(t, (*User)(nil).Clone())
}

func TestWithProfile_MergesNonEmptyFields(t *testing.T) {
	u := User{ID: 7, Username: "STY123", Name: "Alice", Email: "a@x.io", Country: "LV", Roles: []Role{{Name: "USER"}}}

	merged := u.WithProfile(ProfileForm{Name: "Alice Smith", Mobile: " +371 200 ", Email: ""})

	assert.Equal(t, "Alice Smith", merged.Name)
	assert.Equal(t, "+371 200", merged.Mobile)
	assert.Equal(t, "a@x.io", merged.Email)
	assert.Equal(t, "LV", merged.Country)
	assert.Equal(t, "STY123", merged.Username)
	assert.Equal(t, u.Roles, merged.Roles)
	assert.Equal(t, "Alice", u.Name, "original must not change")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "", (*User)(nil).DisplayName())
	assert.Equal(t, "STY1", (&User{Username: "STY1"}).DisplayName())
	assert.Equal(t, "Alice", (&User{Username: "STY1", Name: "Alice"}).DisplayName())
}
