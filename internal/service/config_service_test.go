package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfigService() (service.ConfigService, *stubConfigRepo) {
	repo := newStubConfigRepo()
	return service.NewConfigService(repo, nil, 30*time.Minute), repo
}

func TestConfigGetDefault(t *testing.T) {
	svc, _ := newConfigService()

	valor, err := svc.Get(context.Background(), "tema", "claro")
	require.NoError(t, err)
	assert.Equal(t, "claro", valor)
}

func TestConfigSetGet(t *testing.T) {
	svc, _ := newConfigService()
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "tema", "escuro", nil))
	valor, err := svc.Get(ctx, "tema", "claro")
	require.NoError(t, err)
	assert.Equal(t, "escuro", valor)

	// Upsert overwrites in place.
	require.NoError(t, svc.Set(ctx, "tema", "claro", nil))
	valor, err = svc.Get(ctx, "tema", "")
	require.NoError(t, err)
	assert.Equal(t, "claro", valor)
}

func TestConfigSetChaveVazia(t *testing.T) {
	svc, _ := newConfigService()

	err := svc.Set(context.Background(), "", "x", nil)
	var valErr *service.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestPinPadrao(t *testing.T) {
	svc, _ := newConfigService()

	pin, err := svc.GetPin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1234", pin)
}

func TestSetPin(t *testing.T) {
	svc, _ := newConfigService()
	ctx := context.Background()

	require.NoError(t, svc.SetPin(ctx, "4321"))
	pin, err := svc.GetPin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4321", pin)
}

func TestSetPinInvalido(t *testing.T) {
	svc, _ := newConfigService()
	ctx := context.Background()

	var valErr *service.ValidationError
	for _, pin := range []string{"", "123", "12345", "12a4", "١٢٣٤"} {
		err := svc.SetPin(ctx, pin)
		require.ErrorAs(t, err, &valErr, "pin %q", pin)
	}
}

func TestVerifyPin(t *testing.T) {
	svc, _ := newConfigService()
	ctx := context.Background()

	token, ok, err := svc.VerifyPin(ctx, "1234")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	_, ok, err = svc.VerifyPin(ctx, "0000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPinVazio(t *testing.T) {
	svc, _ := newConfigService()

	_, _, err := svc.VerifyPin(context.Background(), "")
	var valErr *service.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestIsAdminSessionSemRedis(t *testing.T) {
	assert.False(t, service.IsAdminSession(context.Background(), nil, "qualquer"))
	assert.False(t, service.IsAdminSession(context.Background(), nil, ""))
}
