package usecase

import (
	"context"
	"strings"

	"github.com/laglace/stock-portal/internal/application/auth"
	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// UserUseCase aplica reglas de negocio para cuentas del tablero.
type UserUseCase struct {
	store *state.Store
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(store *state.Store) *UserUseCase {
	return &UserUseCase{store: store}
}

// List devuelve todas las cuentas sin hash.
func (uc *UserUseCase) List() []dto.UserResponse {
	users := uc.store.Snapshot().Users
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	for _, u := range uc.store.Snapshot().Users {
		if u.ID == id {
			res := auth.ToUserResponse(u)
			return &res, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create da de alta una cuenta con los permisos por defecto de su rol.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := entity.User{
		ID:           newID("U"),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         nonEmpty(in.Role, entity.RolePurchasing),
	}
	u.ApplyRoleDefaults()

	_, err = uc.store.Mutate(ctx, func(st *entity.State) error {
		if emailTaken(st.Users, email, "") {
			return domain.ErrEmailAlreadyExists
		}
		st.Users = append(st.Users, u)
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	res := auth.ToUserResponse(u)
	return &res, err
}

// Update edita la cuenta. Cambiar el rol reaplica los permisos por defecto; los flags
// explícitos del request se aplican después.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var hash string
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		h, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	var updated entity.User
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		idx := -1
		for i := range st.Users {
			if st.Users[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrUserNotFound
		}
		u := &st.Users[idx]
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return domain.ErrInvalidInput
			}
			u.Name = strings.TrimSpace(*in.Name)
		}
		if in.Email != nil {
			email := strings.TrimSpace(*in.Email)
			if email == "" {
				return domain.ErrInvalidInput
			}
			if emailTaken(st.Users, email, id) {
				return domain.ErrEmailAlreadyExists
			}
			u.Email = email
		}
		if hash != "" {
			u.PasswordHash = hash
		}
		if in.Role != nil && *in.Role != u.Role {
			u.Role = nonEmpty(*in.Role, entity.RolePurchasing)
			u.ApplyRoleDefaults()
		}
		if in.CanManageAccounts != nil {
			u.CanManageAccounts = *in.CanManageAccounts
		}
		if in.CanCreateProducts != nil {
			u.CanCreateProducts = *in.CanCreateProducts
		}
		if in.CanAdjustStock != nil {
			u.CanAdjustStock = *in.CanAdjustStock
		}
		if in.AllowedViews != nil {
			u.AllowedViews = append([]string(nil), in.AllowedViews...)
		}
		updated = u.Clone()
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	res := auth.ToUserResponse(updated)
	return &res, err
}

// Delete elimina la cuenta. Un usuario no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return domain.ErrConflict
	}
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		for i := range st.Users {
			if st.Users[i].ID == id {
				st.Users = append(st.Users[:i], st.Users[i+1:]...)
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return err
}

func emailTaken(users []entity.User, email, exceptID string) bool {
	for _, u := range users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
