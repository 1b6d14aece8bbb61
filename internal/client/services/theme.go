package services

import (
	"context"

	"github.com/dmitrijs2005/dashapp/internal/client/store"
	"github.com/dmitrijs2005/dashapp/internal/common"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeService persists the UI theme choice across restarts.
type ThemeService struct {
	store store.Store
}

func NewThemeService(st store.Store) *ThemeService {
	return &ThemeService{store: st}
}

// Theme returns the saved theme, defaulting to light.
func (s *ThemeService) Theme(ctx context.Context) (string, error) {
	theme, err := s.store.Get(ctx, store.KeyTheme)
	if err != nil {
		return "", err
	}
	if theme == "" {
		return ThemeLight, nil
	}
	return theme, nil
}

// SetTheme saves the theme choice.
func (s *ThemeService) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return common.ErrorValidation
	}
	return s.store.Set(ctx, store.KeyTheme, theme)
}

// Toggle flips between light and dark and returns the new theme.
func (s *ThemeService) Toggle(ctx context.Context) (string, error) {
	theme, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}

	next := ThemeLight
	if theme == ThemeLight {
		next = ThemeDark
	}

	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
