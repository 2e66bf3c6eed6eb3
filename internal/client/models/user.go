// Package models holds the records exchanged with the StyloCoin backend and
// the forms the dashboard validates before talking to it.
package models

import (
	"slices"
	"strings"
)

// RoleAdminUser is the role name that grants access to the admin dashboard.
const RoleAdminUser = "ADMIN_USER"

// Role is a named permission grouping attached to a user.
type Role struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// User is the account record returned by the backend on sign-in and by the
// users endpoints. Apart from Roles its fields are only displayed.
type User struct {
	ID           int64  `json:"id,omitempty"`
	Username     string `json:"username,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Mobile       string `json:"mobile,omitempty"`
	Country      string `json:"country,omitempty"`
	About        string `json:"about,omitempty"`
	NodeID       string `json:"nodeId,omitempty"`
	ReferralCode string `json:"referralCode,omitempty"`
	Position     string `json:"position,omitempty"`
	Confirmed    bool   `json:"confirmed,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Roles        []Role `json:"roles,omitempty"`
}

// IsAdmin reports whether u carries the ADMIN_USER role. It is safe to call
// with a nil user or a user without roles.
func IsAdmin(u *User) bool {
	if u == nil {
		return false
	}
	return slices.ContainsFunc(u.Roles, func(r Role) bool { return r.Name == RoleAdminUser })
}

// IsAdmin is a shorthand for IsAdmin(u).
func (u *User) IsAdmin() bool { return IsAdmin(u) }

// Clone returns a deep copy of u, or nil when u is nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Roles = slices.Clone(u.Roles)
	return &c
}

// DisplayName prefers the full name and falls back to the username.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	return u.Username
}

// WithProfile returns a full copy of u with the non-empty profile fields of f
// applied on top. The result is meant to replace the stored user wholesale.
func (u User) WithProfile(f ProfileForm) User {
	merged := *u.Clone()
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&merged.Name, f.Name)
	set(&merged.Email, f.Email)
	set(&merged.Mobile, f.Mobile)
	set(&merged.Country, f.Country)
	set(&merged.About, f.About)
	set(&merged.ProfileImage, f.ProfileImage)
	return merged
}

func (u User) SearchFields() []string {
	return []string{u.Username, u.Name, u.Email, u.Mobile, u.Country, u.NodeID}
}
