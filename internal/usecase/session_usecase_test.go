package usecase_test

import (
	"context"
	"testing"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionUC(t *testing.T) (*usecase.SessionUseCase, *usecase.SettingsUseCase) {
	t.Helper()
	store := newSeededStore()
	snapshots := &fakeSnapshots{}
	sessionUC := usecase.NewSessionUC(store, store, testShopCfg(), nopLogger{})
	settingsUC := usecase.NewSettingsUC(store, snapshots, nopLogger{})
	return sessionUC, settingsUC
}

func TestLoginRequiresNameAndEmail(t *testing.T) {
	uc, _ := newSessionUC(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, usecase.NewLoginReq("", "alice@example.com", ""))
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.Login(ctx, usecase.NewLoginReq("Alice", "   ", ""))
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestLoginMintsIdentity(t *testing.T) {
	uc, _ := newSessionUC(t)
	ctx := context.Background()

	res, err := uc.Login(ctx, usecase.NewLoginReq("Alice", "Alice@Example.COM", ""))
	require.NoError(t, err)

	assert.False(t, res.User.IsAdmin)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.NotEmpty(t, res.User.Avatar)
	require.NotEmpty(t, res.Token)

	user, ok := uc.Resolve(ctx, res.Token)
	require.True(t, ok)
	assert.Equal(t, res.User.ID, user.ID)
}

func TestAdminLoginChecksPassword(t *testing.T) {
	uc, _ := newSessionUC(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, usecase.NewLoginReq("Admin", "admin@akshop.com", "wrong"))
	assert.ErrorIs(t, err, e.ErrWrongAdminPass)

	// Email администратора сравнивается без учета регистра
	res, err := uc.Login(ctx, usecase.NewLoginReq("Admin", "ADMIN@akshop.com", "admin123"))
	require.NoError(t, err)
	assert.True(t, res.User.IsAdmin)
}

func TestAdminLoginUsesSettingsOverride(t *testing.T) {
	uc, settingsUC := newSessionUC(t)
	ctx := context.Background()

	require.NoError(t, settingsUC.Update(ctx, &usecase.UpdateSettingsReq{
		Settings:    domain.ShopSettings{Email: "support@akshop.com"},
		NewPassword: "s3cret",
	}))

	_, err := uc.Login(ctx, usecase.NewLoginReq("Admin", "admin@akshop.com", "admin123"))
	assert.ErrorIs(t, err, e.ErrWrongAdminPass)

	res, err := uc.Login(ctx, usecase.NewLoginReq("Admin", "admin@akshop.com", "s3cret"))
	require.NoError(t, err)
	assert.True(t, res.User.IsAdmin)
}

func TestLogoutDestroysSession(t *testing.T) {
	uc, _ := newSessionUC(t)
	ctx := context.Background()

	res, err := uc.Login(ctx, usecase.NewLoginReq("Alice", "alice@example.com", ""))
	require.NoError(t, err)

	uc.Logout(ctx, res.Token)
	_, ok := uc.Resolve(ctx, res.Token)
	assert.False(t, ok)

	// Неизвестный токен — no-op
	uc.Logout(ctx, "missing")
}

func TestResolveEmptyToken(t *testing.T) {
	uc, _ := newSessionUC(t)

	_, ok := uc.Resolve(context.Background(), "")
	assert.False(t, ok)
}
