// Package services contains server-side business logic on top of the
// repositories: account registration, credential login, profile updates,
// avatar uploads, and task CRUD.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/dashapp/internal/common"
	"github.com/dmitrijs2005/dashapp/internal/dbx"
	"github.com/dmitrijs2005/dashapp/internal/server/auth"
	"github.com/dmitrijs2005/dashapp/internal/server/config"
	"github.com/dmitrijs2005/dashapp/internal/server/models"
	"github.com/dmitrijs2005/dashapp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dashapp/internal/server/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Errors with dedicated HTTP mappings in the handler layer.
var (
	ErrInactiveUser    = errors.New("inactive user")
	ErrPasswordTooLong = errors.New("password too long")
	ErrBadFileType     = errors.New("bad file type")
)

// allowedAvatarExtensions is the upload allow-list, matched case-insensitively
// against the original filename's extension.
var allowedAvatarExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {},
}

// UserService provides authentication-related operations:
//   - Register: create users
//   - Login: verify credentials and mint an access token
//   - Profile reads/updates and avatar uploads
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	avatars                     storage.Store
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories, the avatar
// store, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, avatars storage.Store, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		avatars:                     avatars,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// hashPassword is a seam for tests; bcrypt rejects passwords over 72 bytes.
var hashPassword = func(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register creates a new active user with a bcrypt-hashed password.
// A duplicate email yields common.ErrorAlreadyExists; an over-long password
// yields ErrPasswordTooLong.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := hashPassword(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Email:          email,
		Name:           name,
		HashedPassword: hash,
		IsActive:       true,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// Login verifies the credentials and, on success, returns a signed access
// token. Unknown email and wrong password are indistinguishable to the
// caller (common.ErrorUnauthorized); an inactive account yields
// ErrInactiveUser.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	if !user.IsActive {
		return "", ErrInactiveUser
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetByID returns the user for a validated token subject.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// UpdateProfile overwrites the user's name and email. Switching to an email
// already held by another account yields common.ErrorAlreadyExists. The
// conflict check and the update run in one transaction.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, name, email string) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if email != "" && email != user.Email {
			if _, err := repo.GetByEmail(ctx, email); err == nil {
				return common.ErrorAlreadyExists
			} else if !errors.Is(err, common.ErrorNotFound) {
				return common.ErrorInternal
			}
			user.Email = email
		}
		if name != "" {
			user.Name = name
		}

		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SaveAvatar validates the filename extension, stores the file under a
// fresh uuid-based key, and records the resulting URL on the user.
func (s *UserService) SaveAvatar(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*models.User, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if _, ok := allowedAvatarExtensions[ext]; !ok {
		return nil, ErrBadFileType
	}

	key := fmt.Sprintf("%s.%s", uuid.New(), ext)

	url, err := s.avatars.Put(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("avatar store: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Avatar = url
	return repo.Update(ctx, user)
}
