package service

import (
	"context"
	"errors"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
)

// PreferenceStore persists per-device display preferences.
type PreferenceStore interface {
	Get(ctx context.Context, deviceID, key string) (string, error)
	Set(ctx context.Context, deviceID, key, value string) error
}

// PreferenceService loads and saves the theme of a device.
type PreferenceService struct {
	repo PreferenceStore
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(repo PreferenceStore) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// Theme returns the stored theme, or the default when none was saved or the
// stored value is no longer recognised.
func (s *PreferenceService) Theme(ctx context.Context, deviceID string) (model.ThemeResponse, error) {
	theme, err := s.repo.Get(ctx, deviceID, model.PrefKeyTheme)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return model.ThemeResponse{Theme: model.DefaultTheme}, nil
		}
		return model.ThemeResponse{}, err
	}
	if theme != model.ThemeLight && theme != model.ThemeDark {
		theme = model.DefaultTheme
	}
	return model.ThemeResponse{Theme: theme}, nil
}

// SetTheme stores the theme of a device.
func (s *PreferenceService) SetTheme(ctx context.Context, deviceID string, req model.ThemeRequest) (model.ThemeResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.ThemeResponse{}, invalid(err)
	}
	if err := s.repo.Set(ctx, deviceID, model.PrefKeyTheme, req.Theme); err != nil {
		return model.ThemeResponse{}, err
	}
	return model.ThemeResponse{Theme: req.Theme}, nil
}
