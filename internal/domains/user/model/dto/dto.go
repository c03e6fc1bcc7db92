package dto

import (
	"shareit/internal/domains/user/model"
	"strings"
	"time"
)

type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,notblank,max=255"`
	Email string `json:"email" validate:"required,email,max=512"`
}

func (r *CreateUserRequest) ToModel(now time.Time) model.User {
	user := model.User{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.ToLower(strings.TrimSpace(r.Email)),
	}
	user.Touch(now)

	return user
}

// UpdateUserRequest is a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string `db:"name"  json:"name"  validate:"omitempty,notblank,max=255"`
	Email *string `db:"email" json:"email" validate:"omitempty,email,max=512"`
}

// Normalize lower-cases the email so that uniqueness is case-insensitive.
func (r *UpdateUserRequest) Normalize() {
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
	}
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
}

func FromModels(models []model.User) []UserResponse {
	res := make([]UserResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
