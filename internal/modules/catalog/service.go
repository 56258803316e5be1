package catalog

import (
	"context"
	"fmt"

	"starwars/internal/domain"
	"starwars/internal/pkg/validator"
)

// Service owns planets, species and characters and returns them in their
// serialized form.
type Service struct {
	planets    PlanetStore
	species    SpeciesStore
	characters CharacterStore
	loader     *loader
}

func NewService(planets PlanetStore, species SpeciesStore, characters CharacterStore) *Service {
	return &Service{
		planets:    planets,
		species:    species,
		characters: characters,
		loader:     &loader{planets: planets, species: species, characters: characters},
	}
}

/* ---------- PLANETS ---------- */

func (s *Service) ListPlanets(ctx context.Context) ([]domain.PlanetSnapshot, error) {
	planets, err := s.planets.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.serializePlanets(ctx, planets)
}

func (s *Service) GetPlanet(ctx context.Context, id int64) (*domain.PlanetSnapshot, error) {
	p, err := s.planets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.serializePlanet(ctx, p)
}

func (s *Service) CreatePlanet(ctx context.Context, req PlanetRequest) (*domain.PlanetSnapshot, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	p := req.toDomain(0)
	if err := s.planets.Create(ctx, &p); err != nil {
		return nil, err
	}
	return s.serializePlanet(ctx, &p)
}

func (s *Service) UpdatePlanet(ctx context.Context, id int64, req PlanetRequest) (*domain.PlanetSnapshot, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	p := req.toDomain(id)
	if err := s.planets.Update(ctx, &p); err != nil {
		return nil, err
	}
	return s.serializePlanet(ctx, &p)
}

func (s *Service) DeletePlanet(ctx context.Context, id int64) error {
	return s.planets.Delete(ctx, id)
}

func (s *Service) serializePlanet(ctx context.Context, p *domain.Planet) (*domain.PlanetSnapshot, error) {
	out, err := s.serializePlanets(ctx, []domain.Planet{*p})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *Service) serializePlanets(ctx context.Context, planets []domain.Planet) ([]domain.PlanetSnapshot, error) {
	g, err := s.loader.planetGraph(ctx, planets)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PlanetSnapshot, 0, len(planets))
	for i := range planets {
		snap, err := g.Planet(&planets[i])
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

/* ---------- SPECIES ---------- */

func (s *Service) ListSpecies(ctx context.Context) ([]domain.SpeciesSnapshot, error) {
	species, err := s.species.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.serializeSpeciesList(ctx, species)
}

func (s *Service) GetSpecies(ctx context.Context, id int64) (*domain.SpeciesSnapshot, error) {
	sp, err := s.species.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.serializeSpecies(ctx, sp)
}

func (s *Service) CreateSpecies(ctx context.Context, req SpeciesRequest) (*domain.SpeciesSnapshot, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := s.requirePlanet(ctx, req.HomeworldID); err != nil {
		return nil, err
	}
	sp := req.toDomain(0)
	if err := s.species.Create(ctx, &sp); err != nil {
		return nil, err
	}
	return s.serializeSpecies(ctx, &sp)
}

func (s *Service) UpdateSpecies(ctx context.Context, id int64, req SpeciesRequest) (*domain.SpeciesSnapshot, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := s.requirePlanet(ctx, req.HomeworldID); err != nil {
		return nil, err
	}
	sp := req.toDomain(id)
	if err := s.species.Update(ctx, &sp); err != nil {
		return nil, err
	}
	return s.serializeSpecies(ctx, &sp)
}

func (s *Service) DeleteSpecies(ctx context.Context, id int64) error {
	return s.species.Delete(ctx, id)
}

func (s *Service) serializeSpecies(ctx context.Context, sp *domain.Species) (*domain.SpeciesSnapshot, error) {
	out, err := s.serializeSpeciesList(ctx, []domain.Species{*sp})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *Service) serializeSpeciesList(ctx context.Context, species []domain.Species) ([]domain.SpeciesSnapshot, error) {
	g, err := s.loader.speciesGraph(ctx, species)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SpeciesSnapshot, 0, len(species))
	for i := range species {
		snap, err := g.Species(&species[i])
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

/* ---------- CHARACTERS ---------- */

func (s *Service) ListCharacters(ctx context.Context) ([]domain.CharacterSnapshot, error) {
	chars, err := s.characters.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.serializeCharacters(ctx, chars)
}

func (s *Service) GetCharacter(ctx context.Context, id int64) (*domain.CharacterSnapshot, error) {
	c, err := s.characters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.serializeCharacter(ctx, c)
}

func (s *Service) CreateCharacter(ctx context.Context, req CharacterRequest) (*domain.CharacterSnapshot, error) {
	if err := s.checkCharacter(ctx, req); err != nil {
		return nil, err
	}
	c := req.toDomain(0)
	if err := s.characters.Create(ctx, &c); err != nil {
		return nil, err
	}
	return s.serializeCharacter(ctx, &c)
}

func (s *Service) UpdateCharacter(ctx context.Context, id int64, req CharacterRequest) (*domain.CharacterSnapshot, error) {
	if err := s.checkCharacter(ctx, req); err != nil {
		return nil, err
	}
	c := req.toDomain(id)
	if err := s.characters.Update(ctx, &c); err != nil {
		return nil, err
	}
	return s.serializeCharacter(ctx, &c)
}

func (s *Service) DeleteCharacter(ctx context.Context, id int64) error {
	return s.characters.Delete(ctx, id)
}

func (s *Service) checkCharacter(ctx context.Context, req CharacterRequest) error {
	if err := validator.Struct(req); err != nil {
		return err
	}
	if err := s.requirePlanet(ctx, req.HomeworldID); err != nil {
		return err
	}
	if req.SpeciesID == nil {
		return nil
	}
	ok, err := s.species.Exists(ctx, *req.SpeciesID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: species %d", domain.ErrNotFound, *req.SpeciesID)
	}
	return nil
}

func (s *Service) serializeCharacter(ctx context.Context, c *domain.Character) (*domain.CharacterSnapshot, error) {
	out, err := s.serializeCharacters(ctx, []domain.Character{*c})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *Service) serializeCharacters(ctx context.Context, chars []domain.Character) ([]domain.CharacterSnapshot, error) {
	g, err := s.loader.characterGraph(ctx, chars)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CharacterSnapshot, 0, len(chars))
	for i := range chars {
		snap, err := g.Character(&chars[i])
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// requirePlanet accepts a nil reference; a set one must exist.
func (s *Service) requirePlanet(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := s.planets.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: planet %d", domain.ErrNotFound, *id)
	}
	return nil
}
