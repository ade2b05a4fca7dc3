package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/usecase"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

func TestUserCreate_PermisosPorRol(t *testing.T) {
	store := newStore(t, entity.State{})
	uc := usecase.NewUserUseCase(store)

	admin, err := uc.Create(context.Background(), dto.CreateUserRequest{Name: "Admin", Email: "a@laglace.com", Password: "secret", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.True(t, admin.CanManageAccounts)
	assert.True(t, admin.CanAdjustStock)
	assert.Equal(t, entity.AllViews, admin.AllowedViews)

	wh, err := uc.Create(context.Background(), dto.CreateUserRequest{Name: "Bodega", Email: "w@laglace.com", Password: "secret", Role: entity.RoleWarehouse})
	require.NoError(t, err)
	assert.False(t, wh.CanManageAccounts)
	assert.True(t, wh.CanCreateProducts)

	live, err := uc.Create(context.Background(), dto.CreateUserRequest{Name: "Live", Email: "l@laglace.com", Password: "secret", Role: entity.RoleLive})
	require.NoError(t, err)
	assert.False(t, live.CanAdjustStock)
	assert.Equal(t, entity.PurchasingViews, live.AllowedViews)

	assert.NotEqual(t, "secret", store.Snapshot().Users[0].PasswordHash, "nunca en texto plano")
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(newStore(t, entity.State{Users: []entity.User{{ID: "U1", Email: "admin@laglace.com"}}}))

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{Name: "X", Email: "ADMIN@laglace.com", Password: "p"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate(t *testing.T) {
	uc := usecase.NewUserUseCase(newStore(t, entity.State{Users: []entity.User{
		{ID: "U1", Name: "Staff", Email: "staff@laglace.com", Role: entity.RolePurchasing, AllowedViews: entity.PurchasingViews},
	}}))
	role := entity.RoleWarehouse
	manage := true

	u, err := uc.Update(context.Background(), "U1", dto.UpdateUserRequest{Role: &role, CanManageAccounts: &manage})

	require.NoError(t, err)
	assert.True(t, u.CanAdjustStock, "el rol nuevo aplica sus permisos")
	assert.True(t, u.CanManageAccounts, "el flag explícito gana")

	_, err = uc.Update(context.Background(), "U404", dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	uc := usecase.NewUserUseCase(newStore(t, entity.State{Users: []entity.User{{ID: "U1"}, {ID: "U2"}}}))

	assert.ErrorIs(t, uc.Delete(context.Background(), "U1", "U1"), domain.ErrConflict)
	require.NoError(t, uc.Delete(context.Background(), "U2", "U1"))
	assert.Len(t, uc.List(), 1)
	assert.ErrorIs(t, uc.Delete(context.Background(), "U2", "U1"), domain.ErrUserNotFound)
}
