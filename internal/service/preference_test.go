package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
)

type memoryPreferenceStore struct {
	values map[string]string
	err    error
}

func (m *memoryPreferenceStore) Get(_ context.Context, deviceID, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.values[deviceID+"/"+key]
	if !ok {
		return "", repository.ErrPreferenceNotFound
	}
	return v, nil
}

func (m *memoryPreferenceStore) Set(_ context.Context, deviceID, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[deviceID+"/"+key] = value
	return nil
}

func TestTheme_DefaultsToLight(t *testing.T) {
	svc := NewPreferenceService(&memoryPreferenceStore{values: map[string]string{}})
	resp, err := svc.Theme(context.Background(), "device-1")
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, resp.Theme)
}

func TestTheme_RoundTrip(t *testing.T) {
	store := &memoryPreferenceStore{values: map[string]string{}}
	svc := NewPreferenceService(store)

	_, err := svc.SetTheme(context.Background(), "device-1", model.ThemeRequest{Theme: model.ThemeDark})
	require.NoError(t, err)

	resp, err := svc.Theme(context.Background(), "device-1")
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, resp.Theme)

	other, err := svc.Theme(context.Background(), "device-2")
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, other.Theme)
}

func TestTheme_UnrecognisedStoredValue(t *testing.T) {
	store := &memoryPreferenceStore{values: map[string]string{"device-1/theme": "solarized"}}
	resp, err := NewPreferenceService(store).Theme(context.Background(), "device-1")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTheme, resp.Theme)
}

func TestSetTheme_Invalid(t *testing.T) {
	svc := NewPreferenceService(&memoryPreferenceStore{values: map[string]string{}})
	_, err := svc.SetTheme(context.Background(), "device-1", model.ThemeRequest{Theme: "sepia"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestTheme_StoreError(t *testing.T) {
	svc := NewPreferenceService(&memoryPreferenceStore{err: errors.New("db down")})
	_, err := svc.Theme(context.Background(), "device-1")
	assert.Error(t, err)
	_, err = svc.SetTheme(context.Background(), "device-1", model.ThemeRequest{Theme: model.ThemeDark})
	assert.Error(t, err)
}
