package dto

import "github.com/royalvilla/villa-catalog-api/internal/model"

// UserDTO is the public projection of a user. It deliberately has no
// password field of any kind; the bcrypt hash stays inside the model.
type UserDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// RegisterRequest is the payload accepted by POST /api/auth/register.
// Role is optional and defaults to "Customer" when blank.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the payload accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login: the public user
// projection plus the signed bearer token.
type LoginResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// NewUserDTO maps a user entity onto its public projection.
func NewUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
