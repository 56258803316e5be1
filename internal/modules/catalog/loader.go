package catalog

import (
	"context"

	"starwars/internal/domain"
)

// loader fills a domain.Graph with batched queries. The number of queries
// per call is fixed (at most five) no matter how many rows are involved.
type loader struct {
	planets    PlanetStore
	species    SpeciesStore
	characters CharacterStore
}

func (l *loader) planetGraph(ctx context.Context, planets []domain.Planet) (*domain.Graph, error) {
	g := domain.NewGraph()
	if len(planets) == 0 {
		return g, nil
	}

	ids := make([]int64, 0, len(planets))
	for _, p := range planets {
		ids = append(ids, p.ID)
		g.PlanetNames[p.ID] = p.Name
	}

	chars, err := l.characters.ListByPlanetIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range chars {
		g.CharactersByPlanet[*c.PlanetID] = append(g.CharactersByPlanet[*c.PlanetID], c)
	}

	species, err := l.species.ListByPlanetIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range species {
		g.SpeciesByPlanet[*s.PlanetID] = append(g.SpeciesByPlanet[*s.PlanetID], s)
	}

	speciesChars, err := l.speciesCharacters(ctx, g, species)
	if err != nil {
		return nil, err
	}

	if err := l.resolveNames(ctx, g, append(chars, speciesChars...), species); err != nil {
		return nil, err
	}
	return g, nil
}

func (l *loader) speciesGraph(ctx context.Context, species []domain.Species) (*domain.Graph, error) {
	g := domain.NewGraph()

	chars, err := l.speciesCharacters(ctx, g, species)
	if err != nil {
		return nil, err
	}
	if err := l.resolveNames(ctx, g, chars, species); err != nil {
		return nil, err
	}
	return g, nil
}

func (l *loader) characterGraph(ctx context.Context, chars []domain.Character) (*domain.Graph, error) {
	g := domain.NewGraph()
	if err := l.resolveNames(ctx, g, chars, nil); err != nil {
		return nil, err
	}
	return g, nil
}

// speciesCharacters loads the characters of every species in one query.
func (l *loader) speciesCharacters(ctx context.Context, g *domain.Graph, species []domain.Species) ([]domain.Character, error) {
	if len(species) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(species))
	for _, s := range species {
		ids = append(ids, s.ID)
		g.SpeciesNames[s.ID] = s.Name
	}

	chars, err := l.characters.ListBySpeciesIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range chars {
		g.CharactersBySpecies[*c.SpeciesID] = append(g.CharactersBySpecies[*c.SpeciesID], c)
	}
	return chars, nil
}

// resolveNames fetches the planet and species names referenced by chars
// and species that the graph does not know yet.
func (l *loader) resolveNames(ctx context.Context, g *domain.Graph, chars []domain.Character, species []domain.Species) error {
	planetIDs := newIDSet()
	speciesIDs := newIDSet()

	for _, c := range chars {
		planetIDs.addMissing(c.PlanetID, g.PlanetNames)
		speciesIDs.addMissing(c.SpeciesID, g.SpeciesNames)
	}
	for _, s := range species {
		planetIDs.addMissing(s.PlanetID, g.PlanetNames)
	}

	if len(planetIDs.ids) > 0 {
		names, err := l.planets.NamesByIDs(ctx, planetIDs.ids)
		if err != nil {
			return err
		}
		for id, name := range names {
			g.PlanetNames[id] = name
		}
	}
	if len(speciesIDs.ids) > 0 {
		names, err := l.species.NamesByIDs(ctx, speciesIDs.ids)
		if err != nil {
			return err
		}
		for id, name := range names {
			g.SpeciesNames[id] = name
		}
	}
	return nil
}

type idSet struct {
	seen map[int64]struct{}
	ids  []int64
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[int64]struct{})}
}

func (s *idSet) addMissing(id *int64, known map[int64]string) {
	if id == nil {
		return
	}
	if _, ok := known[*id]; ok {
		return
	}
	if _, ok := s.seen[*id]; ok {
		return
	}
	s.seen[*id] = struct{}{}
	s.ids = append(s.ids, *id)
}
