package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// UpdateUserRequest edición parcial; las capacidades explícitas ganan a las del rol.
type UpdateUserRequest struct {
	Name              *string  `json:"name"`
	Email             *string  `json:"email"`
	Password          *string  `json:"password"`
	Role              *string  `json:"role"`
	CanManageAccounts *bool    `json:"can_manage_accounts"`
	CanCreateProducts *bool    `json:"can_create_products"`
	CanAdjustStock    *bool    `json:"can_adjust_stock"`
	AllowedViews      []string `json:"allowed_views"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Role              string   `json:"role"`
	CanManageAccounts bool     `json:"can_manage_accounts"`
	CanCreateProducts bool     `json:"can_create_products"`
	CanAdjustStock    bool     `json:"can_adjust_stock"`
	AllowedViews      []string `json:"allowed_views"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y perfil del usuario.
type LoginResponse struct {
	Token    string       `json:"token"`
	User     UserResponse `json:"user"`
	HomeView string       `json:"home_view"`
}
