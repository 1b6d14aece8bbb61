package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dashapp/internal/common"
)

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	return s.values[key], nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func TestTheme_DefaultsToLight(t *testing.T) {
	svc := NewThemeService(newMemStore())

	theme, err := svc.Theme(context.Background())
	require.NoError(t, err)
	require.Equal(t, ThemeLight, theme)
}

func TestTheme_Toggle(t *testing.T) {
	svc := NewThemeService(newMemStore())
	ctx := context.Background()

	theme, err := svc.Toggle(ctx)
	require.NoError(t, err)
	require.Equal(t, ThemeDark, theme)

	theme, err = svc.Toggle(ctx)
	require.NoError(t, err)
	require.Equal(t, ThemeLight, theme)
}

func TestTheme_PersistsAcrossInstances(t *testing.T) {
	st := newMemStore()
	ctx := context.Background()

	svc := NewThemeService(st)
	require.NoError(t, svc.SetTheme(ctx, ThemeDark))

	theme, err := NewThemeService(st).Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, ThemeDark, theme)
}

func TestSetTheme_RejectsUnknown(t *testing.T) {
	svc := NewThemeService(newMemStore())
	require.ErrorIs(t, svc.SetTheme(context.Background(), "solarized"), common.ErrorValidation)
}
