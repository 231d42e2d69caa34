package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driven/storage/memory"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewSettingsStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewSettingsStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Empty(t, settings.Session)
	assert.Equal(t, domain.DefaultYear, settings.Year)
	assert.Equal(t, domain.DefaultInputsDir, settings.InputsDir)
}

func TestSettingsService_Get_FillsMissingFields(t *testing.T) {
	store := memory.NewSettingsStore()
	require.NoError(t, store.Save(domain.Settings{Session: "abc123"}))
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "abc123", settings.Session)
	assert.Equal(t, domain.DefaultYear, settings.Year, "zero year falls back to the default")
	assert.Equal(t, domain.DefaultInputsDir, settings.InputsDir)
}

func TestSettingsService_SetSession(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "plain token", token: "53616c7465645f5f", want: "53616c7465645f5f"},
		{name: "cookie header value", token: "session=53616c7465645f5f", want: "53616c7465645f5f"},
		{name: "surrounding whitespace", token: "  53616c7465645f5f\n", want: "53616c7465645f5f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewSettingsStore()
			service := NewSettingsService(store)

			err := service.SetSession(tt.token)

			require.NoError(t, err)
			settings, err := service.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.want, settings.Session)
		})
	}
}

func TestSettingsService_SetSession_EmptyToken(t *testing.T) {
	service := NewSettingsService(memory.NewSettingsStore())

	err := service.SetSession("   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSettingsService_SetSession_PreservesOtherSettings(t *testing.T) {
	store := memory.NewSettingsStore()
	require.NoError(t, store.Save(domain.Settings{Year: 2023, InputsDir: "data"}))
	service := NewSettingsService(store)

	err := service.SetSession("tok")

	require.NoError(t, err)
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok", settings.Session)
	assert.Equal(t, "data", settings.InputsDir)
}

func TestSettingsService_ClearSession(t *testing.T) {
	store := memory.NewSettingsStore()
	service := NewSettingsService(store)
	require.NoError(t, service.SetSession("tok"))

	err := service.ClearSession()

	require.NoError(t, err)
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Empty(t, settings.Session)
	assert.False(t, settings.HasSession())
}

func TestSettingsService_Path(t *testing.T) {
	service := NewSettingsService(memory.NewSettingsStore())

	assert.Equal(t, ":memory:", service.Path())
}

// failingSettingsStore fails selected operations so error paths can be
// exercised.
type failingSettingsStore struct {
	*memory.SettingsStore
	failLoad bool
	failSave bool
}

func (f *failingSettingsStore) Load() (domain.Settings, error) {
	if f.failLoad {
		return domain.Settings{}, assert.AnError
	}
	return f.SettingsStore.Load()
}

func (f *failingSettingsStore) Save(settings domain.Settings) error {
	if f.failSave {
		return assert.AnError
	}
	return f.SettingsStore.Save(settings)
}

func TestSettingsService_Get_LoadError(t *testing.T) {
	store := &failingSettingsStore{SettingsStore: memory.NewSettingsStore(), failLoad: true}
	service := NewSettingsService(store)

	_, err := service.Get()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load settings")
}

func TestSettingsService_SetSession_SaveError(t *testing.T) {
	store := &failingSettingsStore{SettingsStore: memory.NewSettingsStore(), failSave: true}
	service := NewSettingsService(store)

	err := service.SetSession("tok")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save settings")
}

func TestSettingsService_ClearSession_SaveError(t *testing.T) {
	store := &failingSettingsStore{SettingsStore: memory.NewSettingsStore(), failSave: true}
	service := NewSettingsService(store)

	err := service.ClearSession()

	require.Error(t, err)
}
