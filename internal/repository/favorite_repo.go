package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starwars/internal/domain"
)

// FavoriteRepository stores the three user favorite join tables.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// favoriteTable describes how one favorite kind maps onto its join table.
type favoriteTable struct {
	model  any
	column string
	row    func(userID, targetID int64) any
	id     func(row any) int64
}

var favoriteTables = map[domain.FavoriteKind]favoriteTable{
	domain.KindCharacter: {
		model:  &favoriteCharacterModel{},
		column: "character_id",
		row: func(u, t int64) any {
			return &favoriteCharacterModel{UserID: u, CharacterID: t}
		},
		id: func(row any) int64 { return row.(*favoriteCharacterModel).ID },
	},
	domain.KindPlanet: {
		model:  &favoritePlanetModel{},
		column: "planet_id",
		row: func(u, t int64) any {
			return &favoritePlanetModel{UserID: u, PlanetID: t}
		},
		id: func(row any) int64 { return row.(*favoritePlanetModel).ID },
	},
	domain.KindSpecies: {
		model:  &favoriteSpeciesModel{},
		column: "specie_id",
		row: func(u, t int64) any {
			return &favoriteSpeciesModel{UserID: u, SpeciesID: t}
		},
		id: func(row any) int64 { return row.(*favoriteSpeciesModel).ID },
	},
}

func tableFor(kind domain.FavoriteKind) (favoriteTable, error) {
	t, ok := favoriteTables[kind]
	if !ok {
		return favoriteTable{}, fmt.Errorf("%w: unknown favorite kind %q", domain.ErrInvalidInput, kind)
	}
	return t, nil
}

// Add stores a link and returns its id. A repeated add violates the
// (user_id, target) unique index.
func (r *FavoriteRepository) Add(ctx context.Context, kind domain.FavoriteKind, userID, targetID int64) (int64, error) {
	t, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	row := t.row(userID, targetID)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return 0, translateError(err)
	}
	return t.id(row), nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, kind domain.FavoriteKind, userID, targetID int64) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND "+t.column+" = ?", userID, targetID).
		Delete(t.model)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: favorite %s %d", domain.ErrNotFound, kind, targetID)
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, kind domain.FavoriteKind, userID, targetID int64) (bool, error) {
	t, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.WithContext(ctx).Model(t.model).
		Where("user_id = ? AND "+t.column+" = ?", userID, targetID).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// ListByUser returns every link the user owns, oldest first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) (*domain.Favorites, error) {
	db := r.db.WithContext(ctx)

	var chars []favoriteCharacterModel
	if err := db.Where("user_id = ?", userID).Order("id").Find(&chars).Error; err != nil {
		return nil, translateError(err)
	}
	var planets []favoritePlanetModel
	if err := db.Where("user_id = ?", userID).Order("id").Find(&planets).Error; err != nil {
		return nil, translateError(err)
	}
	var species []favoriteSpeciesModel
	if err := db.Where("user_id = ?", userID).Order("id").Find(&species).Error; err != nil {
		return nil, translateError(err)
	}

	out := &domain.Favorites{
		Characters: make([]domain.FavoriteCharacterSnapshot, 0, len(chars)),
		Planets:    make([]domain.FavoritePlanetSnapshot, 0, len(planets)),
		Species:    make([]domain.FavoriteSpeciesSnapshot, 0, len(species)),
	}
	for _, m := range chars {
		f := domain.FavoriteCharacter{ID: m.ID, UserID: m.UserID, CharacterID: m.CharacterID}
		out.Characters = append(out.Characters, f.Serialize())
	}
	for _, m := range planets {
		f := domain.FavoritePlanet{ID: m.ID, UserID: m.UserID, PlanetID: m.PlanetID}
		out.Planets = append(out.Planets, f.Serialize())
	}
	for _, m := range species {
		f := domain.FavoriteSpecies{ID: m.ID, UserID: m.UserID, SpeciesID: m.SpeciesID}
		out.Species = append(out.Species, f.Serialize())
	}
	return out, nil
}
