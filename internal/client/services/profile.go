package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/dashapp/internal/client/client"
)

// sessionRefresher re-fetches the cached profile after it changed
// server-side. The session manager implements it.
type sessionRefresher interface {
	Refresh(ctx context.Context) error
}

// ProfileService updates the user's profile and avatar, keeping the session
// manager's cached user in sync.
type ProfileService struct {
	api     client.Service
	session sessionRefresher
}

func NewProfileService(api client.Service, session sessionRefresher) *ProfileService {
	return &ProfileService{api: api, session: session}
}

// Update changes name and email, then refreshes the cached profile.
func (s *ProfileService) Update(ctx context.Context, name, email string) error {
	if _, err := s.api.UpdateMe(ctx, name, email); err != nil {
		return err
	}
	return s.session.Refresh(ctx)
}

// UploadAvatar sends the image and refreshes the cached profile so the new
// avatar URL shows up.
func (s *ProfileService) UploadAvatar(ctx context.Context, filename string, content io.Reader) error {
	if _, err := s.api.UploadAvatar(ctx, filename, content); err != nil {
		return err
	}
	return s.session.Refresh(ctx)
}
