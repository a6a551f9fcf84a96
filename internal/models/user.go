package models

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"gorm.io/gorm"
)

// Role is the role of a user within the organization.
type Role string

const (
	RoleKetua     Role = "KETUA"     // chair
	RoleBendahara Role = "BENDAHARA" // treasurer
	RoleAnggota   Role = "ANGGOTA"   // regular member
)

// Roles returns all valid roles.
func Roles() []Role {
	return []Role{RoleKetua, RoleBendahara, RoleAnggota}
}

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleKetua || r == RoleBendahara || r == RoleAnggota
}

// IsPrivileged reports whether the role may manage members and sees the
// privileged dashboard variant.
//
// Event and transaction mutation is deliberately not gated on this, any
// authenticated member may record finances. This mirrors the behavior of the
// source system and is a product decision, not an oversight to fix here.
func (r Role) IsPrivileged() bool {
	return r == RoleKetua || r == RoleBendahara
}

// User is an identity record of an organization member.
//
// The password is compared and stored in plaintext. This is a known,
// accepted weakness carried over from the source system and must not be
// hardened without a product decision.
type User struct {
	DefaultModel
	Name       string     `json:"name" example:"Siti Aminah"`
	Email      string     `json:"email" gorm:"uniqueIndex" example:"bendahara@ldk-ubb.com"` // Unique, used as login key
	Password   string     `json:"-"`                                                        // Plaintext credential, never serialized
	Role       Role       `json:"role" example:"BENDAHARA"`
	Avatar     string     `json:"avatar" example:"https://api.dicebear.com/7.x/avataaars/svg?seed=Siti"`
	JoinedDate types.Date `json:"joinedDate" example:"2023-02-10"`
}

// BeforeSave trims whitespace, defaults the role to ANGGOTA and validates it.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	if u.Role == "" {
		u.Role = RoleAnggota
	}

	if !u.Role.IsValid() {
		return ErrRoleInvalid
	}

	return nil
}

// BeforeCreate defaults the joined date to today and the avatar to a
// generated placeholder image.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	_ = u.DefaultModel.BeforeCreate(tx)

	if u.JoinedDate.IsZero() {
		u.JoinedDate = types.Today()
	}

	if u.Avatar == "" {
		u.Avatar = fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", url.QueryEscape(u.Name))
	}

	return nil
}
