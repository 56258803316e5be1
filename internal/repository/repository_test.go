package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"starwars/internal/database"
	"starwars/internal/domain"
	"starwars/internal/pkg/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:", logger.Discard())
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, Migrate(db), "failed to migrate")

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func id(v int64) *int64 { return &v }

func text(v string) *string { return &v }

func seedTatooine(t *testing.T, db *gorm.DB) (domain.Planet, domain.Species, domain.Character) {
	t.Helper()
	ctx := context.Background()

	planet := domain.Planet{Name: "Tatooine", RotationPeriod: "23", OrbitalPeriod: "304", Diameter: "10465",
		Climate: "arid", Gravity: "1 standard", Terrain: "desert", SurfaceWater: "1", Population: "200000"}
	require.NoError(t, NewPlanetRepository(db).Create(ctx, &planet))

	species := domain.Species{Name: "Human", Classification: "mammal", Designation: "sentient",
		AverageHeight: "180", SkinColors: "fair", HairColors: "brown", EyeColors: "blue",
		AverageLifespan: "120", Language: "Galactic Basic", PlanetID: id(planet.ID)}
	require.NoError(t, NewSpeciesRepository(db).Create(ctx, &species))

	luke := domain.Character{Name: "Luke Skywalker", Height: 172, Mass: 77, HairColor: text("blond"),
		BirthYear: text("19BBY"), Gender: text("male"), PlanetID: id(planet.ID), SpeciesID: id(species.ID)}
	require.NoError(t, NewCharacterRepository(db).Create(ctx, &luke))

	return planet, species, luke
}

func TestUserRepository_UniqueUsernameAndEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{Username: "luke", Email: "luke@rebellion.org", Password: "x", IsActive: true}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)

	dupName := &domain.User{Username: "luke", Email: "other@rebellion.org", Password: "x", IsActive: true}
	assert.ErrorIs(t, repo.Create(ctx, dupName), domain.ErrConstraintViolation)

	dupEmail := &domain.User{Username: "skywalker", Email: "LUKE@rebellion.org", Password: "x", IsActive: true}
	assert.ErrorIs(t, repo.Create(ctx, dupEmail), domain.ErrConstraintViolation)
}

func TestUserRepository_GetByLoginAndSetActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Username: "leia", Email: "leia@alderaan.gov", Password: "x", IsActive: true}
	require.NoError(t, repo.Create(ctx, u))

	byName, err := repo.GetByLogin(ctx, "leia")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byEmail, err := repo.GetByLogin(ctx, "Leia@Alderaan.gov")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	require.NoError(t, repo.SetActive(ctx, u.ID, false))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = repo.GetByLogin(ctx, "vader")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.SetActive(ctx, 999, true), domain.ErrNotFound)
}

func TestUserRepository_GetByLoginPrefersEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// usernames with "@" are rejected at registration but may exist in older data
	squatter := &domain.User{Username: "han@falcon.io", Email: "squatter@tatooine.net", Password: "x", IsActive: true}
	require.NoError(t, repo.Create(ctx, squatter))
	han := &domain.User{Username: "han", Email: "han@falcon.io", Password: "x", IsActive: true}
	require.NoError(t, repo.Create(ctx, han))

	got, err := repo.GetByLogin(ctx, "Han@Falcon.io")
	require.NoError(t, err)
	assert.Equal(t, han.ID, got.ID)

	got, err = repo.GetByLogin(ctx, "han")
	require.NoError(t, err)
	assert.Equal(t, han.ID, got.ID)
}

func TestCharacterRepository_OptionalRelations(t *testing.T) {
	db := newTestDB(t)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	r2 := &domain.Character{Name: "R2-D2", Height: 96, Mass: 32}
	require.NoError(t, repo.Create(ctx, r2))

	got, err := repo.GetByID(ctx, r2.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PlanetID)
	assert.Nil(t, got.SpeciesID)
	assert.Nil(t, got.HairColor)
}

func TestCharacterRepository_NullTextColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Exec("INSERT INTO characters (id, name, height, mass) VALUES (1, 'R2-D2', 96, 32)").Error)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.HairColor)
	assert.Nil(t, got.SkinColor)
	assert.Nil(t, got.EyeColor)
	assert.Nil(t, got.BirthYear)
	assert.Nil(t, got.Gender)

	// an empty string is a value, not a missing one
	bb8 := &domain.Character{Name: "BB-8", Height: 67, Mass: 18, Gender: text("")}
	require.NoError(t, repo.Create(ctx, bb8))

	got, err = repo.GetByID(ctx, bb8.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Gender)
	assert.Equal(t, "", *got.Gender)
	assert.Nil(t, got.HairColor)
}

func TestCharacterRepository_UnknownHomeworld(t *testing.T) {
	db := newTestDB(t)
	repo := NewCharacterRepository(db)

	ghost := &domain.Character{Name: "Ghost", Height: 1, Mass: 1, PlanetID: id(404)}
	err := repo.Create(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestCharacterRepository_ReverseLookups(t *testing.T) {
	db := newTestDB(t)
	planet, species, luke := seedTatooine(t, db)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	byPlanet, err := repo.ListByPlanetIDs(ctx, []int64{planet.ID})
	require.NoError(t, err)
	require.Len(t, byPlanet, 1)
	assert.Equal(t, luke.ID, byPlanet[0].ID)

	bySpecies, err := repo.ListBySpeciesIDs(ctx, []int64{species.ID})
	require.NoError(t, err)
	require.Len(t, bySpecies, 1)

	none, err := repo.ListBySpeciesIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCharacterRepository_UpdateClearsRelations(t *testing.T) {
	db := newTestDB(t)
	_, _, luke := seedTatooine(t, db)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	luke.PlanetID = nil
	luke.SpeciesID = nil
	luke.Mass = 80
	require.NoError(t, repo.Update(ctx, &luke))

	got, err := repo.GetByID(ctx, luke.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PlanetID)
	assert.Nil(t, got.SpeciesID)
	assert.Equal(t, 80, got.Mass)

	missing := domain.Character{ID: 999, Name: "Nobody", Height: 1, Mass: 1}
	assert.ErrorIs(t, repo.Update(ctx, &missing), domain.ErrNotFound)
}

func TestPlanetRepository_NamesByIDs(t *testing.T) {
	db := newTestDB(t)
	planet, _, _ := seedTatooine(t, db)

	names, err := NewPlanetRepository(db).NamesByIDs(context.Background(), []int64{planet.ID, 77})
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{planet.ID: "Tatooine"}, names)
}

func TestPlanetRepository_DeleteRestricted(t *testing.T) {
	db := newTestDB(t)
	planet, species, luke := seedTatooine(t, db)
	ctx := context.Background()
	planets := NewPlanetRepository(db)

	assert.ErrorIs(t, planets.Delete(ctx, planet.ID), domain.ErrConstraintViolation)

	require.NoError(t, NewCharacterRepository(db).Delete(ctx, luke.ID))
	assert.ErrorIs(t, planets.Delete(ctx, planet.ID), domain.ErrConstraintViolation, "species still live there")

	require.NoError(t, NewSpeciesRepository(db).Delete(ctx, species.ID))
	require.NoError(t, planets.Delete(ctx, planet.ID))

	_, err := planets.GetByID(ctx, planet.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, planets.Delete(ctx, planet.ID), domain.ErrNotFound)
}

func TestSpeciesRepository_DeleteRestricted(t *testing.T) {
	db := newTestDB(t)
	_, species, _ := seedTatooine(t, db)

	err := NewSpeciesRepository(db).Delete(context.Background(), species.ID)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestFavoriteRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	planet, species, luke := seedTatooine(t, db)
	ctx := context.Background()

	user := &domain.User{Username: "han", Email: "han@falcon.net", Password: "x", IsActive: true}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	favs := NewFavoriteRepository(db)

	fcID, err := favs.Add(ctx, domain.KindCharacter, user.ID, luke.ID)
	require.NoError(t, err)
	assert.NotZero(t, fcID)
	_, err = favs.Add(ctx, domain.KindPlanet, user.ID, planet.ID)
	require.NoError(t, err)
	_, err = favs.Add(ctx, domain.KindSpecies, user.ID, species.ID)
	require.NoError(t, err)

	_, err = favs.Add(ctx, domain.KindCharacter, user.ID, luke.ID)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	_, err = favs.Add(ctx, domain.KindPlanet, user.ID, 404)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	list, err := favs.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list.Characters, 1)
	require.Len(t, list.Planets, 1)
	require.Len(t, list.Species, 1)
	assert.Equal(t, domain.FavoriteCharacterSnapshot{ID: fcID, UserID: user.ID, CharacterID: luke.ID}, list.Characters[0])

	ok, err := favs.Exists(ctx, domain.KindSpecies, user.ID, species.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, favs.Remove(ctx, domain.KindSpecies, user.ID, species.ID))
	assert.ErrorIs(t, favs.Remove(ctx, domain.KindSpecies, user.ID, species.ID), domain.ErrNotFound)

	// deleting the character drops the link
	require.NoError(t, NewCharacterRepository(db).Delete(ctx, luke.ID))
	list, err = favs.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list.Characters)
	assert.Len(t, list.Planets, 1)

	require.NoError(t, NewUserRepository(db).Delete(ctx, user.ID))
	list, err = favs.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list.Planets)
}

func TestFavoriteRepository_UnknownKind(t *testing.T) {
	db := newTestDB(t)
	_, err := NewFavoriteRepository(db).Add(context.Background(), domain.FavoriteKind("starships"), 1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
