package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"starwars/internal/domain"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func toDomainPlanet(m planetModel) domain.Planet {
	return domain.Planet{
		ID:             m.ID,
		Name:           m.Name,
		RotationPeriod: m.RotationPeriod,
		OrbitalPeriod:  m.OrbitalPeriod,
		Diameter:       m.Diameter,
		Climate:        m.Climate,
		Gravity:        m.Gravity,
		Terrain:        m.Terrain,
		SurfaceWater:   m.SurfaceWater,
		Population:     m.Population,
	}
}

func toPlanetModel(p *domain.Planet) planetModel {
	return planetModel{
		ID:             p.ID,
		Name:           p.Name,
		RotationPeriod: p.RotationPeriod,
		OrbitalPeriod:  p.OrbitalPeriod,
		Diameter:       p.Diameter,
		Climate:        p.Climate,
		Gravity:        p.Gravity,
		Terrain:        p.Terrain,
		SurfaceWater:   p.SurfaceWater,
		Population:     p.Population,
	}
}

func (r *PlanetRepository) Create(ctx context.Context, p *domain.Planet) error {
	m := toPlanetModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translateError(err)
	}
	*p = toDomainPlanet(m)
	return nil
}

func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	var m planetModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	p := toDomainPlanet(m)
	return &p, nil
}

func (r *PlanetRepository) List(ctx context.Context) ([]domain.Planet, error) {
	var rows []planetModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	out := make([]domain.Planet, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPlanet(m))
	}
	return out, nil
}

func (r *PlanetRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&planetModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// NamesByIDs resolves planet names in a single query.
func (r *PlanetRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	return namesByIDs(ctx, r.db, &planetModel{}, ids)
}

// Update overwrites every column of an existing planet.
func (r *PlanetRepository) Update(ctx context.Context, p *domain.Planet) error {
	m := toPlanetModel(p)
	res := r.db.WithContext(ctx).Model(&planetModel{ID: p.ID}).
		Select("*").Omit("id").
		Updates(&m)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: planet %d", domain.ErrNotFound, p.ID)
	}
	return nil
}

// Delete refuses while characters or species call the planet home and
// removes favorite links to it in the same transaction.
func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&characterModel{}).Where("planets_id = ?", id).Count(&refs).Error; err != nil {
			return translateError(err)
		}
		if refs > 0 {
			return fmt.Errorf("%w: planet %d is the homeworld of %d characters", domain.ErrConstraintViolation, id, refs)
		}
		if err := tx.Model(&speciesModel{}).Where("planets_id = ?", id).Count(&refs).Error; err != nil {
			return translateError(err)
		}
		if refs > 0 {
			return fmt.Errorf("%w: planet %d is the homeworld of %d species", domain.ErrConstraintViolation, id, refs)
		}

		if err := tx.Where("planet_id = ?", id).Delete(&favoritePlanetModel{}).Error; err != nil {
			return translateError(err)
		}

		res := tx.Delete(&planetModel{}, id)
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: planet %d", domain.ErrNotFound, id)
		}
		return nil
	})
}

type namedRow struct {
	ID   int64
	Name string
}

func namesByIDs(ctx context.Context, db *gorm.DB, model any, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []namedRow
	err := db.WithContext(ctx).Model(model).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	for _, row := range rows {
		out[row.ID] = row.Name
	}
	return out, nil
}
