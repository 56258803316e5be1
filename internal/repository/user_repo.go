package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"starwars/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:       m.ID,
		Username: m.Username,
		Email:    m.Email,
		Password: m.Password,
		IsActive: m.IsActive,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:       u.ID,
		Username: strings.TrimSpace(u.Username),
		Email:    strings.TrimSpace(strings.ToLower(u.Email)),
		Password: u.Password,
		IsActive: u.IsActive,
	}
}

// Create inserts the user. Duplicate username or email surfaces as
// domain.ErrConstraintViolation.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translateError(err)
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainUser(m), nil
}

// GetByLogin finds a user by username or (case-insensitive) email. When the
// login is one user's email and another user's username, the email wins.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	email := strings.ToLower(login)

	// at most one username match and one email match
	var rows []userModel
	err := r.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = ?", login, email).
		Order("id").
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: user %q", domain.ErrNotFound, login)
	}

	m := rows[0]
	for _, row := range rows {
		if strings.ToLower(row.Email) == email {
			m = row
			break
		}
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res := r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}
	return nil
}

// Delete removes the user together with all of their favorite links.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, link := range []any{&favoriteCharacterModel{}, &favoritePlanetModel{}, &favoriteSpeciesModel{}} {
			if err := tx.Where("user_id = ?", id).Delete(link).Error; err != nil {
				return translateError(err)
			}
		}
		res := tx.Delete(&userModel{}, id)
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
		}
		return nil
	})
}
