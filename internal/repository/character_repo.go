package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starwars/internal/domain"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func toDomainCharacter(m characterModel) domain.Character {
	return domain.Character{
		ID:        m.ID,
		Name:      m.Name,
		Height:    m.Height,
		Mass:      m.Mass,
		HairColor: m.HairColor,
		SkinColor: m.SkinColor,
		EyeColor:  m.EyeColor,
		BirthYear: m.BirthYear,
		Gender:    m.Gender,
		PlanetID:  m.PlanetID,
		SpeciesID: m.SpeciesID,
	}
}

func toCharacterModel(c *domain.Character) characterModel {
	return characterModel{
		ID:        c.ID,
		Name:      c.Name,
		Height:    c.Height,
		Mass:      c.Mass,
		HairColor: c.HairColor,
		SkinColor: c.SkinColor,
		EyeColor:  c.EyeColor,
		BirthYear: c.BirthYear,
		Gender:    c.Gender,
		PlanetID:  c.PlanetID,
		SpeciesID: c.SpeciesID,
	}
}

func toDomainCharacters(rows []characterModel) []domain.Character {
	out := make([]domain.Character, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCharacter(m))
	}
	return out
}

func (r *CharacterRepository) Create(ctx context.Context, c *domain.Character) error {
	m := toCharacterModel(c)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translateError(err)
	}
	*c = toDomainCharacter(m)
	return nil
}

func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*domain.Character, error) {
	var m characterModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	c := toDomainCharacter(m)
	return &c, nil
}

func (r *CharacterRepository) List(ctx context.Context) ([]domain.Character, error) {
	var rows []characterModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainCharacters(rows), nil
}

// ListByPlanetIDs returns the characters whose homeworld is one of ids.
func (r *CharacterRepository) ListByPlanetIDs(ctx context.Context, ids []int64) ([]domain.Character, error) {
	return r.listWhereIn(ctx, "planets_id", ids)
}

// ListBySpeciesIDs returns the characters belonging to one of the species.
func (r *CharacterRepository) ListBySpeciesIDs(ctx context.Context, ids []int64) ([]domain.Character, error) {
	return r.listWhereIn(ctx, "species_id", ids)
}

func (r *CharacterRepository) listWhereIn(ctx context.Context, column string, ids []int64) ([]domain.Character, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []characterModel
	err := r.db.WithContext(ctx).
		Where(clause.IN{Column: clause.Column{Name: column}, Values: int64sToAny(ids)}).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainCharacters(rows), nil
}

func (r *CharacterRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&characterModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func (r *CharacterRepository) Update(ctx context.Context, c *domain.Character) error {
	m := toCharacterModel(c)
	res := r.db.WithContext(ctx).Model(&characterModel{ID: c.ID}).
		Select("*").Omit("id", clause.Associations).
		Updates(&m)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: character %d", domain.ErrNotFound, c.ID)
	}
	return nil
}

// Delete removes the character and every favorite link to it.
func (r *CharacterRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("character_id = ?", id).Delete(&favoriteCharacterModel{}).Error; err != nil {
			return translateError(err)
		}
		res := tx.Delete(&characterModel{}, id)
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: character %d", domain.ErrNotFound, id)
		}
		return nil
	})
}

func int64sToAny(ids []int64) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
