package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra los usuarios del estado.
type AuthUseCase struct {
	store  *state.Store
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store *state.Store, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: store, jwtCfg: jwtCfg}
}

// HashPassword genera el hash bcrypt que se guarda en el estado.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifica email/password, genera JWT y retorna token + perfil.
// Email inexistente y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	var user *entity.User
	for _, u := range uc.store.Snapshot().Users {
		if strings.EqualFold(u.Email, email) {
			u := u
			user = &u
			break
		}
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{UserID: user.ID, Name: user.Name, Role: user.Role}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		User:     ToUserResponse(*user),
		HomeView: user.HomeView(),
	}, nil
}

// ToUserResponse salida de un usuario sin hash.
func ToUserResponse(u entity.User) dto.UserResponse {
	views := u.AllowedViews
	if views == nil {
		views = []string{}
	}
	return dto.UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              u.Role,
		CanManageAccounts: u.CanManageAccounts,
		CanCreateProducts: u.CanCreateProducts,
		CanAdjustStock:    u.CanAdjustStock,
		AllowedViews:      views,
	}
}
