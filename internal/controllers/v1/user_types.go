package v1

import (
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
)

// UserEditable represents all user configurable parameters of a member.
type UserEditable struct {
	Name       string      `json:"name" example:"Siti Aminah" default:""`
	Email      string      `json:"email" example:"bendahara@ldk-ubb.com" default:""`
	Password   string      `json:"password" example:"rahasia123" default:""`
	Role       models.Role `json:"role" example:"ANGGOTA" default:"ANGGOTA"`
	Avatar     string      `json:"avatar" default:""`
	JoinedDate types.Date  `json:"joinedDate" example:"2023-02-10"`
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:       editable.Name,
		Email:      editable.Email,
		Password:   editable.Password,
		Role:       editable.Role,
		Avatar:     editable.Avatar,
		JoinedDate: editable.JoinedDate,
	}
}

// User is the API representation of a member. The password is write-only, it
// never appears in a response.
type User struct {
	models.DefaultModel
	Name       string      `json:"name" example:"Siti Aminah"`
	Email      string      `json:"email" example:"bendahara@ldk-ubb.com"`
	Role       models.Role `json:"role" example:"BENDAHARA"`
	Avatar     string      `json:"avatar"`
	JoinedDate types.Date  `json:"joinedDate" example:"2023-02-10"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
		Role:         model.Role,
		Avatar:       model.Avatar,
		JoinedDate:   model.JoinedDate,
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`
	Error *string `json:"error" example:"there is no user matching your query"`
}

type UserListResponse struct {
	Data  []User  `json:"data"`
	Error *string `json:"error" example:"you need the KETUA or BENDAHARA role for this"`
}

type UserQueryFilter struct {
	Role   models.Role `form:"role"`                       // By role
	Search string      `form:"search" filterField:"false"` // By string in name or email
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		Role: f.Role,
	}
}
