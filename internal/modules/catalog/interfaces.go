package catalog

import (
	"context"

	"starwars/internal/domain"
)

type PlanetStore interface {
	Create(ctx context.Context, p *domain.Planet) error
	GetByID(ctx context.Context, id int64) (*domain.Planet, error)
	List(ctx context.Context) ([]domain.Planet, error)
	Exists(ctx context.Context, id int64) (bool, error)
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	Update(ctx context.Context, p *domain.Planet) error
	Delete(ctx context.Context, id int64) error
}

type SpeciesStore interface {
	Create(ctx context.Context, s *domain.Species) error
	GetByID(ctx context.Context, id int64) (*domain.Species, error)
	List(ctx context.Context) ([]domain.Species, error)
	ListByPlanetIDs(ctx context.Context, ids []int64) ([]domain.Species, error)
	Exists(ctx context.Context, id int64) (bool, error)
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	Update(ctx context.Context, s *domain.Species) error
	Delete(ctx context.Context, id int64) error
}

type CharacterStore interface {
	Create(ctx context.Context, c *domain.Character) error
	GetByID(ctx context.Context, id int64) (*domain.Character, error)
	List(ctx context.Context) ([]domain.Character, error)
	ListByPlanetIDs(ctx context.Context, ids []int64) ([]domain.Character, error)
	ListBySpeciesIDs(ctx context.Context, ids []int64) ([]domain.Character, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, c *domain.Character) error
	Delete(ctx context.Context, id int64) error
}
