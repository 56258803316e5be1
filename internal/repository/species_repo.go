package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starwars/internal/domain"
)

type SpeciesRepository struct {
	db *gorm.DB
}

func NewSpeciesRepository(db *gorm.DB) *SpeciesRepository {
	return &SpeciesRepository{db: db}
}

func toDomainSpecies(m speciesModel) domain.Species {
	return domain.Species{
		ID:              m.ID,
		Name:            m.Name,
		Classification:  m.Classification,
		Designation:     m.Designation,
		AverageHeight:   m.AverageHeight,
		SkinColors:      m.SkinColors,
		HairColors:      m.HairColors,
		EyeColors:       m.EyeColors,
		AverageLifespan: m.AverageLifespan,
		Language:        m.Language,
		PlanetID:        m.PlanetID,
	}
}

func toSpeciesModel(s *domain.Species) speciesModel {
	return speciesModel{
		ID:              s.ID,
		Name:            s.Name,
		Classification:  s.Classification,
		Designation:     s.Designation,
		AverageHeight:   s.AverageHeight,
		SkinColors:      s.SkinColors,
		HairColors:      s.HairColors,
		EyeColors:       s.EyeColors,
		AverageLifespan: s.AverageLifespan,
		Language:        s.Language,
		PlanetID:        s.PlanetID,
	}
}

func toDomainSpeciesList(rows []speciesModel) []domain.Species {
	out := make([]domain.Species, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSpecies(m))
	}
	return out
}

func (r *SpeciesRepository) Create(ctx context.Context, s *domain.Species) error {
	m := toSpeciesModel(s)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translateError(err)
	}
	*s = toDomainSpecies(m)
	return nil
}

func (r *SpeciesRepository) GetByID(ctx context.Context, id int64) (*domain.Species, error) {
	var m speciesModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	s := toDomainSpecies(m)
	return &s, nil
}

func (r *SpeciesRepository) List(ctx context.Context) ([]domain.Species, error) {
	var rows []speciesModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainSpeciesList(rows), nil
}

// ListByPlanetIDs returns every species whose homeworld is one of ids.
func (r *SpeciesRepository) ListByPlanetIDs(ctx context.Context, ids []int64) ([]domain.Species, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []speciesModel
	err := r.db.WithContext(ctx).
		Where("planets_id IN ?", ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainSpeciesList(rows), nil
}

func (r *SpeciesRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&speciesModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func (r *SpeciesRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	return namesByIDs(ctx, r.db, &speciesModel{}, ids)
}

func (r *SpeciesRepository) Update(ctx context.Context, s *domain.Species) error {
	m := toSpeciesModel(s)
	res := r.db.WithContext(ctx).Model(&speciesModel{ID: s.ID}).
		Select("*").Omit("id", clause.Associations).
		Updates(&m)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: species %d", domain.ErrNotFound, s.ID)
	}
	return nil
}

// Delete refuses while characters reference the species and removes
// favorite links to it in the same transaction.
func (r *SpeciesRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&characterModel{}).Where("species_id = ?", id).Count(&refs).Error; err != nil {
			return translateError(err)
		}
		if refs > 0 {
			return fmt.Errorf("%w: species %d is referenced by %d characters", domain.ErrConstraintViolation, id, refs)
		}

		if err := tx.Where("specie_id = ?", id).Delete(&favoriteSpeciesModel{}).Error; err != nil {
			return translateError(err)
		}

		res := tx.Delete(&speciesModel{}, id)
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: species %d", domain.ErrNotFound, id)
		}
		return nil
	})
}
