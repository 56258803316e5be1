package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func str(v string) *string { return &v }

func tatooineGraph() (*Graph, Planet, Species, Character) {
	tatooine := Planet{
		ID: 1, Name: "Tatooine", RotationPeriod: "23", OrbitalPeriod: "304",
		Diameter: "10465", Climate: "arid", Gravity: "1 standard",
		Terrain: "desert", SurfaceWater: "1", Population: "200000",
	}
	human := Species{
		ID: 1, Name: "Human", Classification: "mammal", Designation: "sentient",
		AverageHeight: "180", SkinColors: "caucasian, black", HairColors: "blonde, brown",
		EyeColors: "brown, blue", AverageLifespan: "120", Language: "Galactic Basic",
		PlanetID: ptr(1),
	}
	luke := Character{
		ID: 1, Name: "Luke Skywalker", Height: 172, Mass: 77,
		HairColor: str("blond"), SkinColor: str("fair"), EyeColor: str("blue"),
		BirthYear: str("19BBY"), Gender: str("male"), PlanetID: ptr(1), SpeciesID: ptr(1),
	}

	g := NewGraph()
	g.PlanetNames[1] = "Tatooine"
	g.SpeciesNames[1] = "Human"
	g.CharactersByPlanet[1] = []Character{luke}
	g.CharactersBySpecies[1] = []Character{luke}
	g.SpeciesByPlanet[1] = []Species{human}
	return g, tatooine, human, luke
}

func TestUserSerialize_OmitsCredentials(t *testing.T) {
	u := User{ID: 3, Username: "leia", Email: "leia@alderaan.gov", Password: "$2a$10$hash", IsActive: true}

	snap, err := u.Serialize()
	require.NoError(t, err)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Len(t, m, 3)
	assert.NotContains(t, m, "password")
	assert.NotContains(t, m, "is_active")
	assert.Equal(t, "leia", m["username"])
}

func TestUserSerialize_MissingUsername(t *testing.T) {
	u := User{ID: 3, Email: "x@y.z"}
	_, err := u.Serialize()
	assert.ErrorIs(t, err, ErrMissingRelation)
}

func TestCharacter_NoRelations(t *testing.T) {
	g := NewGraph()
	c := Character{ID: 7, Name: "R2-D2", Height: 96, Mass: 32}

	snap, err := g.Character(&c)
	require.NoError(t, err)
	assert.Nil(t, snap.Homeworld)
	assert.Nil(t, snap.Species)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"homeworld":null`)
	assert.Contains(t, string(raw), `"species":null`)
	assert.Contains(t, string(raw), `"hair_color":null`)
}

func TestCharacter_RelationsAreNames(t *testing.T) {
	g, _, _, luke := tatooineGraph()

	snap, err := g.Character(&luke)
	require.NoError(t, err)
	require.NotNil(t, snap.Homeworld)
	require.NotNil(t, snap.Species)
	assert.Equal(t, "Tatooine", *snap.Homeworld)
	assert.Equal(t, "Human", *snap.Species)
}

func TestCharacter_UnloadedReference(t *testing.T) {
	g := NewGraph()
	c := Character{ID: 1, Name: "Han Solo", PlanetID: ptr(22)}

	_, err := g.Character(&c)
	assert.ErrorIs(t, err, ErrMissingRelation)
}

func TestSpecies_NestsCharacters(t *testing.T) {
	g, _, human, _ := tatooineGraph()

	snap, err := g.Species(&human)
	require.NoError(t, err)
	require.Len(t, snap.Characters, 1)
	assert.Equal(t, "Luke Skywalker", snap.Characters[0].Name)
	require.NotNil(t, snap.Homeworld)
	assert.Equal(t, "Tatooine", *snap.Homeworld)
}

func TestSpecies_EmptyCharactersIsArray(t *testing.T) {
	g := NewGraph()
	s := Species{ID: 2, Name: "Droid"}

	snap, err := g.Species(&s)
	require.NoError(t, err)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"characters":[]`)
	assert.Contains(t, string(raw), `"homeworld":null`)
}

func TestPlanet_TatooineScenario(t *testing.T) {
	g, tatooine, _, _ := tatooineGraph()

	snap, err := g.Planet(&tatooine)
	require.NoError(t, err)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	luke := map[string]any{
		"id": float64(1), "name": "Luke Skywalker", "height": float64(172), "mass": float64(77),
		"hair_color": "blond", "skin_color": "fair", "eye_color": "blue",
		"birth_year": "19BBY", "gender": "male", "homeworld": "Tatooine", "species": "Human",
	}

	assert.Equal(t, []any{luke}, got["characters"])

	species, ok := got["species"].([]any)
	require.True(t, ok)
	require.Len(t, species, 1)
	human := species[0].(map[string]any)
	assert.Equal(t, "Human", human["name"])
	assert.Equal(t, "Tatooine", human["homeworld"])
	assert.Equal(t, []any{luke}, human["characters"])
}

func TestPlanet_KeyOrder(t *testing.T) {
	g := NewGraph()
	p := Planet{ID: 4, Name: "Hoth"}

	snap, err := g.Planet(&p)
	require.NoError(t, err)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":4,"name":"Hoth","rotation_period":"","orbital_period":"","diameter":"","climate":"","gravity":"","terrain":"","surface_water":"","population":"","characters":[],"species":[]}`,
		string(raw))
}

func TestFavoriteSnapshots(t *testing.T) {
	fc := FavoriteCharacter{ID: 1, UserID: 2, CharacterID: 3}
	fp := FavoritePlanet{ID: 4, UserID: 2, PlanetID: 5}
	fs := FavoriteSpecies{ID: 6, UserID: 2, SpeciesID: 7}

	raw, err := json.Marshal([]any{fc.Serialize(), fp.Serialize(), fs.Serialize()})
	require.NoError(t, err)
	assert.Equal(t,
		`[{"id":1,"user_id":2,"character_id":3},{"id":4,"user_id":2,"planet_id":5},{"id":6,"user_id":2,"specie_id":7}]`,
		string(raw))
}

func TestParseFavoriteKind(t *testing.T) {
	k, ok := ParseFavoriteKind("planets")
	assert.True(t, ok)
	assert.Equal(t, KindPlanet, k)

	_, ok = ParseFavoriteKind("starships")
	assert.False(t, ok)
}
