package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"starwars/internal/database"
	"starwars/internal/domain"
	"starwars/internal/pkg/logger"
	"starwars/internal/repository"
)

func setupCatalog(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:", logger.Discard())
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	svc := NewService(
		repository.NewPlanetRepository(db),
		repository.NewSpeciesRepository(db),
		repository.NewCharacterRepository(db),
	)
	return svc, db
}

// countQueries counts SELECTs issued through db while fn runs.
func countQueries(t *testing.T, db *gorm.DB, fn func()) int {
	t.Helper()
	n := 0
	name := "test:count_" + t.Name()
	require.NoError(t, db.Callback().Query().After("gorm:query").Register(name, func(*gorm.DB) { n++ }))
	defer func() { _ = db.Callback().Query().Remove(name) }()
	fn()
	return n
}

func tatooineRequest() PlanetRequest {
	return PlanetRequest{
		Name: "Tatooine", RotationPeriod: "23", OrbitalPeriod: "304", Diameter: "10465",
		Climate: "arid", Gravity: "1 standard", Terrain: "desert", SurfaceWater: "1", Population: "200000",
	}
}

func humanRequest(homeworld int64) SpeciesRequest {
	return SpeciesRequest{
		Name: "Human", Classification: "mammal", Designation: "sentient", AverageHeight: "180",
		SkinColors: "caucasian, black, asian, hispanic", HairColors: "blonde, brown, black, red",
		EyeColors: "brown, blue, green, hazel, grey, amber", AverageLifespan: "120",
		Language: "Galactic Basic", HomeworldID: &homeworld,
	}
}

func TestCatalog_TatooineScenario(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	tatooine, err := svc.CreatePlanet(ctx, tatooineRequest())
	require.NoError(t, err)
	human, err := svc.CreateSpecies(ctx, humanRequest(tatooine.ID))
	require.NoError(t, err)
	luke, err := svc.CreateCharacter(ctx, CharacterRequest{
		Name: "Luke Skywalker", Height: intPtr(172), Mass: intPtr(77), HairColor: strPtr("blond"),
		SkinColor: strPtr("fair"), EyeColor: strPtr("blue"), BirthYear: strPtr("19BBY"), Gender: strPtr("male"),
		HomeworldID: &tatooine.ID, SpeciesID: &human.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tatooine", *luke.Homeworld)
	assert.Equal(t, "Human", *luke.Species)

	planet, err := svc.GetPlanet(ctx, tatooine.ID)
	require.NoError(t, err)

	raw, err := json.Marshal(planet)
	require.NoError(t, err)

	lukeJSON := `{"id":1,"name":"Luke Skywalker","height":172,"mass":77,"hair_color":"blond","skin_color":"fair","eye_color":"blue","birth_year":"19BBY","gender":"male","homeworld":"Tatooine","species":"Human"}`
	assert.Contains(t, string(raw), `"characters":[`+lukeJSON+`]`)
	assert.Contains(t, string(raw), `"name":"Human"`)
	assert.Contains(t, string(raw), `"characters":[`+lukeJSON+`],"homeworld":"Tatooine"}]`)

	require.Len(t, planet.Species, 1)
	assert.Len(t, planet.Species[0].Characters, 1)
}

func TestCatalog_NullCharacterColumnsSerializeAsNull(t *testing.T) {
	svc, db := setupCatalog(t)

	require.NoError(t, db.Exec("INSERT INTO characters (id, name, height, mass) VALUES (1, 'R2-D2', 96, 32)").Error)

	snap, err := svc.GetCharacter(context.Background(), 1)
	require.NoError(t, err)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"R2-D2","height":96,"mass":32,"hair_color":null,"skin_color":null,
		"eye_color":null,"birth_year":null,"gender":null,"homeworld":null,"species":null}`, string(raw))
}

func TestCatalog_ReverseCountsMatch(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	naboo, err := svc.CreatePlanet(ctx, tatooineRequest())
	require.NoError(t, err)
	human, err := svc.CreateSpecies(ctx, humanRequest(naboo.ID))
	require.NoError(t, err)
	droid := humanRequest(naboo.ID)
	droid.Name = "Droid"
	droid.HomeworldID = nil
	droidSp, err := svc.CreateSpecies(ctx, droid)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := svc.CreateCharacter(ctx, CharacterRequest{
			Name: fmt.Sprintf("Human %d", i), Height: intPtr(170), Mass: intPtr(70),
			HomeworldID: &naboo.ID, SpeciesID: &human.ID,
		})
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := svc.CreateCharacter(ctx, CharacterRequest{
			Name: fmt.Sprintf("Droid %d", i), Height: intPtr(100), Mass: intPtr(30), SpeciesID: &droidSp.ID,
		})
		require.NoError(t, err)
	}

	sp, err := svc.GetSpecies(ctx, human.ID)
	require.NoError(t, err)
	assert.Len(t, sp.Characters, 4)

	dsp, err := svc.GetSpecies(ctx, droidSp.ID)
	require.NoError(t, err)
	assert.Len(t, dsp.Characters, 2)
	assert.Nil(t, dsp.Homeworld)

	p, err := svc.GetPlanet(ctx, naboo.ID)
	require.NoError(t, err)
	assert.Len(t, p.Characters, 4)
	assert.Len(t, p.Species, 1)
}

func TestCatalog_PlanetSerializationIsBounded(t *testing.T) {
	svc, db := setupCatalog(t)
	ctx := context.Background()

	home, err := svc.CreatePlanet(ctx, tatooineRequest())
	require.NoError(t, err)
	other := tatooineRequest()
	other.Name = "Coruscant"
	away, err := svc.CreatePlanet(ctx, other)
	require.NoError(t, err)

	var speciesIDs []int64
	for i := 0; i < 3; i++ {
		req := humanRequest(home.ID)
		req.Name = fmt.Sprintf("Species %d", i)
		sp, err := svc.CreateSpecies(ctx, req)
		require.NoError(t, err)
		speciesIDs = append(speciesIDs, sp.ID)
	}
	for i := 0; i < 30; i++ {
		hw := home.ID
		if i%3 == 0 {
			hw = away.ID
		}
		sp := speciesIDs[i%len(speciesIDs)]
		_, err := svc.CreateCharacter(ctx, CharacterRequest{
			Name: fmt.Sprintf("Citizen %d", i), Height: intPtr(150), Mass: intPtr(60),
			HomeworldID: &hw, SpeciesID: &sp,
		})
		require.NoError(t, err)
	}

	var planet *domain.PlanetSnapshot
	n := countQueries(t, db, func() {
		planet, err = svc.GetPlanet(ctx, home.ID)
	})
	require.NoError(t, err)

	assert.Len(t, planet.Characters, 20)
	assert.Len(t, planet.Species, 3)
	assert.LessOrEqual(t, n, 6, "one lookup plus at most five batched loads")
}

func TestCatalog_DeleteRestrictions(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	p, err := svc.CreatePlanet(ctx, tatooineRequest())
	require.NoError(t, err)
	sp, err := svc.CreateSpecies(ctx, humanRequest(p.ID))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePlanet(ctx, p.ID), domain.ErrConstraintViolation)
	require.NoError(t, svc.DeleteSpecies(ctx, sp.ID))
	require.NoError(t, svc.DeletePlanet(ctx, p.ID))

	_, err = svc.GetPlanet(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_UpdateCharacterMovesHomeworld(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	p, err := svc.CreatePlanet(ctx, tatooineRequest())
	require.NoError(t, err)
	c, err := svc.CreateCharacter(ctx, CharacterRequest{Name: "Anakin", Height: intPtr(188), Mass: intPtr(84)})
	require.NoError(t, err)
	assert.Nil(t, c.Homeworld)

	updated, err := svc.UpdateCharacter(ctx, c.ID, CharacterRequest{
		Name: "Anakin Skywalker", Height: intPtr(188), Mass: intPtr(84), HomeworldID: &p.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Anakin Skywalker", updated.Name)
	assert.Equal(t, "Tatooine", *updated.Homeworld)

	_, err = svc.UpdateCharacter(ctx, 999, CharacterRequest{Name: "Nobody", Height: intPtr(1), Mass: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
