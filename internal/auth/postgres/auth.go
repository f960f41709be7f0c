package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/auth"
	userDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser persists a new user row. Username uniqueness is enforced both
// by a pre-check and by the unique index, so concurrent signups under the
// same name still surface ErrDuplicateUsername.
func (r *Repository) CreateUser(username, passwordHash string) (*auth.User, error) {
	var count int64
	if err := r.db.Model(&userDatamodel.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, internal.NewStoreError("failed to check username", err)
	}
	if count > 0 {
		return nil, internal.ErrDuplicateUsername
	}

	row := &userDatamodel.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrDuplicateUsername
		}
		return nil, internal.NewStoreError("failed to create user", err)
	}

	return toDomain(row), nil
}

func (r *Repository) GetPasswordForUsername(username string) (string, int64, error) {
	var row userDatamodel.User
	err := r.db.Where("username = ?", username).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, internal.ErrUserNotFound
		}
		return "", 0, internal.NewStoreError("failed to look up user", err)
	}
	return row.PasswordHash, row.ID, nil
}

func (r *Repository) GetUserByID(userID int64) (*auth.User, error) {
	var row userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewStoreError("failed to look up user", err)
	}
	return toDomain(&row), nil
}

func toDomain(row *userDatamodel.User) *auth.User {
	return &auth.User{
		ID:        row.ID,
		Username:  row.Username,
		CreatedAt: row.CreatedAt,
	}
}
