package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/domain"
	"starwars/internal/modules/auth"
	"starwars/internal/modules/catalog"
	"starwars/internal/modules/favorite"
	"starwars/internal/pkg/jwt"
	"starwars/internal/pkg/logger"
	"starwars/internal/repository"
)

func main() {
	password := flag.String("password", "usetheforce", "password for the seeded user")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(nil, "info", false).Fatal("config", "error", err)
	}
	l := logger.New(nil, cfg.LogLevel, false)

	db, err := database.Connect(cfg.DatabaseURL, l)
	if err != nil {
		l.Fatal("database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := repository.Migrate(db); err != nil {
		l.Fatal("migrate", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed(ctx, l, db, cfg, *password); err != nil {
		l.Fatal("seed", "error", err)
	}
	l.Info("seed complete")
}

type characterSeed struct {
	req       catalog.CharacterRequest
	homeworld string
	species   string
}

func seed(ctx context.Context, l *log.Logger, db *gorm.DB, cfg *config.Config, password string) error {
	planetRepo := repository.NewPlanetRepository(db)
	speciesRepo := repository.NewSpeciesRepository(db)
	characterRepo := repository.NewCharacterRepository(db)

	existing, err := planetRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		l.Warn("catalog already has planets, skipping", "count", len(existing))
		return nil
	}

	catalogSvc := catalog.NewService(planetRepo, speciesRepo, characterRepo)
	authSvc := auth.NewService(repository.NewUserRepository(db), jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL), cfg.JWTAccessTTL)
	favoriteSvc := favorite.NewService(repository.NewFavoriteRepository(db), characterRepo, planetRepo, speciesRepo, nil)

	// ================== PLANETS ==================
	planets := map[string]int64{}
	for _, req := range []catalog.PlanetRequest{
		{Name: "Tatooine", RotationPeriod: "23", OrbitalPeriod: "304", Diameter: "10465", Climate: "arid",
			Gravity: "1 standard", Terrain: "desert", SurfaceWater: "1", Population: "200000"},
		{Name: "Alderaan", RotationPeriod: "24", OrbitalPeriod: "364", Diameter: "12500", Climate: "temperate",
			Gravity: "1 standard", Terrain: "grasslands, mountains", SurfaceWater: "40", Population: "2000000000"},
		{Name: "Kashyyyk", RotationPeriod: "26", OrbitalPeriod: "381", Diameter: "12765", Climate: "tropical",
			Gravity: "1 standard", Terrain: "jungle, forests, lakes, rivers", SurfaceWater: "60", Population: "45000000"},
	} {
		p, err := catalogSvc.CreatePlanet(ctx, req)
		if err != nil {
			return err
		}
		planets[p.Name] = p.ID
	}
	l.Info("planets created", "count", len(planets))

	// ================== SPECIES ==================
	species := map[string]int64{}
	for _, s := range []struct {
		req       catalog.SpeciesRequest
		homeworld string
	}{
		{req: catalog.SpeciesRequest{Name: "Human", Classification: "mammal", Designation: "sentient",
			AverageHeight: "180", SkinColors: "caucasian, black, asian, hispanic", HairColors: "blonde, brown, black, red",
			EyeColors: "brown, blue, green, hazel, grey, amber", AverageLifespan: "120", Language: "Galactic Basic"},
			homeworld: "Tatooine"},
		{req: catalog.SpeciesRequest{Name: "Droid", Classification: "artificial", Designation: "sentient",
			AverageHeight: "n/a", SkinColors: "n/a", HairColors: "n/a", EyeColors: "n/a",
			AverageLifespan: "indefinite", Language: "n/a"}},
		{req: catalog.SpeciesRequest{Name: "Wookie", Classification: "mammal", Designation: "sentient",
			AverageHeight: "210", SkinColors: "gray", HairColors: "black, brown", EyeColors: "blue, green, yellow, brown, golden, red",
			AverageLifespan: "400", Language: "Shyriiwook"},
			homeworld: "Kashyyyk"},
	} {
		if s.homeworld != "" {
			id := planets[s.homeworld]
			s.req.HomeworldID = &id
		}
		sp, err := catalogSvc.CreateSpecies(ctx, s.req)
		if err != nil {
			return err
		}
		species[sp.Name] = sp.ID
	}
	l.Info("species created", "count", len(species))

	// ================== CHARACTERS ==================
	characters := map[string]int64{}
	for _, c := range []characterSeed{
		{req: catalog.CharacterRequest{Name: "Luke Skywalker", Height: intPtr(172), Mass: intPtr(77), HairColor: strPtr("blond"),
			SkinColor: strPtr("fair"), EyeColor: strPtr("blue"), BirthYear: strPtr("19BBY"), Gender: strPtr("male")}, homeworld: "Tatooine", species: "Human"},
		{req: catalog.CharacterRequest{Name: "Leia Organa", Height: intPtr(150), Mass: intPtr(49), HairColor: strPtr("brown"),
			SkinColor: strPtr("light"), EyeColor: strPtr("brown"), BirthYear: strPtr("19BBY"), Gender: strPtr("female")}, homeworld: "Alderaan", species: "Human"},
		{req: catalog.CharacterRequest{Name: "C-3PO", Height: intPtr(167), Mass: intPtr(75), SkinColor: strPtr("gold"),
			EyeColor: strPtr("yellow"), BirthYear: strPtr("112BBY")}, homeworld: "Tatooine", species: "Droid"},
		{req: catalog.CharacterRequest{Name: "R2-D2", Height: intPtr(96), Mass: intPtr(32), SkinColor: strPtr("white, blue"),
			EyeColor: strPtr("red"), BirthYear: strPtr("33BBY")}, species: "Droid"},
		{req: catalog.CharacterRequest{Name: "Chewbacca", Height: intPtr(228), Mass: intPtr(112), HairColor: strPtr("brown"),
			EyeColor: strPtr("blue"), BirthYear: strPtr("200BBY"), Gender: strPtr("male")}, homeworld: "Kashyyyk", species: "Wookie"},
	} {
		if c.homeworld != "" {
			id := planets[c.homeworld]
			c.req.HomeworldID = &id
		}
		if c.species != "" {
			id := species[c.species]
			c.req.SpeciesID = &id
		}
		ch, err := catalogSvc.CreateCharacter(ctx, c.req)
		if err != nil {
			return err
		}
		characters[ch.Name] = ch.ID
	}
	l.Info("characters created", "count", len(characters))

	// ================== USERS ==================
	user, err := authSvc.Register(ctx, auth.RegisterRequest{
		Username: "luke",
		Email:    "luke@tatooine.net",
		Password: password,
	})
	if errors.Is(err, domain.ErrConstraintViolation) {
		l.Warn("user luke already exists, skipping favorites")
		return nil
	}
	if err != nil {
		return err
	}
	l.Info("user created", "username", user.User.Username)

	for _, f := range []struct {
		kind domain.FavoriteKind
		id   int64
	}{
		{domain.KindPlanet, planets["Tatooine"]},
		{domain.KindSpecies, species["Human"]},
		{domain.KindCharacter, characters["R2-D2"]},
	} {
		if _, err := favoriteSvc.Add(ctx, user.User.ID, f.kind, f.id); err != nil {
			return err
		}
	}
	l.Info("favorites created", "user", user.User.Username)
	return nil
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
