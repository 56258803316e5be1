package domain

import "fmt"

// Graph holds the related rows a snapshot traverses. A loader fills it with
// a fixed number of batched queries; serialization itself never touches
// storage.
type Graph struct {
	PlanetNames         map[int64]string
	SpeciesNames        map[int64]string
	CharactersByPlanet  map[int64][]Character
	CharactersBySpecies map[int64][]Character
	SpeciesByPlanet     map[int64][]Species
}

func NewGraph() *Graph {
	return &Graph{
		PlanetNames:         make(map[int64]string),
		SpeciesNames:        make(map[int64]string),
		CharactersByPlanet:  make(map[int64][]Character),
		CharactersBySpecies: make(map[int64][]Character),
		SpeciesByPlanet:     make(map[int64][]Species),
	}
}

// Character serializes c. Homeworld and species resolve to names.
func (g *Graph) Character(c *Character) (CharacterSnapshot, error) {
	if c.ID == 0 {
		return CharacterSnapshot{}, missing("character", "id")
	}
	if c.Name == "" {
		return CharacterSnapshot{}, missing("character", "name")
	}

	homeworld, err := lookupName(g.PlanetNames, c.PlanetID, "planet")
	if err != nil {
		return CharacterSnapshot{}, err
	}
	species, err := lookupName(g.SpeciesNames, c.SpeciesID, "species")
	if err != nil {
		return CharacterSnapshot{}, err
	}

	return CharacterSnapshot{
		ID:        c.ID,
		Name:      c.Name,
		Height:    c.Height,
		Mass:      c.Mass,
		HairColor: c.HairColor,
		SkinColor: c.SkinColor,
		EyeColor:  c.EyeColor,
		BirthYear: c.BirthYear,
		Gender:    c.Gender,
		Homeworld: homeworld,
		Species:   species,
	}, nil
}

// Species serializes s with its characters expanded.
func (g *Graph) Species(s *Species) (SpeciesSnapshot, error) {
	if s.ID == 0 {
		return SpeciesSnapshot{}, missing("species", "id")
	}
	if s.Name == "" {
		return SpeciesSnapshot{}, missing("species", "name")
	}

	characters, err := g.characters(g.CharactersBySpecies[s.ID])
	if err != nil {
		return SpeciesSnapshot{}, err
	}
	homeworld, err := lookupName(g.PlanetNames, s.PlanetID, "planet")
	if err != nil {
		return SpeciesSnapshot{}, err
	}

	return SpeciesSnapshot{
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
		Characters:      characters,
		Homeworld:       homeworld,
	}, nil
}

// Planet serializes p with its characters and species expanded.
func (g *Graph) Planet(p *Planet) (PlanetSnapshot, error) {
	if p.ID == 0 {
		return PlanetSnapshot{}, missing("planet", "id")
	}
	if p.Name == "" {
		return PlanetSnapshot{}, missing("planet", "name")
	}

	characters, err := g.characters(g.CharactersByPlanet[p.ID])
	if err != nil {
		return PlanetSnapshot{}, err
	}

	related := g.SpeciesByPlanet[p.ID]
	species := make([]SpeciesSnapshot, 0, len(related))
	for i := range related {
		snap, err := g.Species(&related[i])
		if err != nil {
			return PlanetSnapshot{}, err
		}
		species = append(species, snap)
	}

	return PlanetSnapshot{
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
		Characters:     characters,
		Species:        species,
	}, nil
}

func (g *Graph) characters(list []Character) ([]CharacterSnapshot, error) {
	out := make([]CharacterSnapshot, 0, len(list))
	for i := range list {
		snap, err := g.Character(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// lookupName returns nil for an unset reference. A set reference whose name
// was not loaded is a loader contract violation.
func lookupName(names map[int64]string, id *int64, entity string) (*string, error) {
	if id == nil {
		return nil, nil
	}
	name, ok := names[*id]
	if !ok {
		return nil, fmt.Errorf("%w: %s %d not loaded", ErrMissingRelation, entity, *id)
	}
	return &name, nil
}
