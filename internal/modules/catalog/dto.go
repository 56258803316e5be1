package catalog

import "starwars/internal/domain"

type PlanetRequest struct {
	Name           string `json:"name" validate:"required,max=120"`
	RotationPeriod string `json:"rotation_period" validate:"required,max=120"`
	OrbitalPeriod  string `json:"orbital_period" validate:"required,max=120"`
	Diameter       string `json:"diameter" validate:"required,max=120"`
	Climate        string `json:"climate" validate:"required,max=120"`
	Gravity        string `json:"gravity" validate:"required,max=120"`
	Terrain        string `json:"terrain" validate:"required,max=120"`
	SurfaceWater   string `json:"surface_water" validate:"required,max=120"`
	Population     string `json:"population" validate:"required,max=120"`
}

func (r PlanetRequest) toDomain(id int64) domain.Planet {
	return domain.Planet{
		ID:             id,
		Name:           r.Name,
		RotationPeriod: r.RotationPeriod,
		OrbitalPeriod:  r.OrbitalPeriod,
		Diameter:       r.Diameter,
		Climate:        r.Climate,
		Gravity:        r.Gravity,
		Terrain:        r.Terrain,
		SurfaceWater:   r.SurfaceWater,
		Population:     r.Population,
	}
}

type SpeciesRequest struct {
	Name            string `json:"name" validate:"required,max=120"`
	Classification  string `json:"classification" validate:"required,max=120"`
	Designation     string `json:"designation" validate:"required,max=120"`
	AverageHeight   string `json:"average_height" validate:"required,max=120"`
	SkinColors      string `json:"skin_colors" validate:"required,max=120"`
	HairColors      string `json:"hair_colors" validate:"required,max=120"`
	EyeColors       string `json:"eye_colors" validate:"required,max=120"`
	AverageLifespan string `json:"average_lifespan" validate:"required,max=120"`
	Language        string `json:"language" validate:"required,max=120"`
	HomeworldID     *int64 `json:"homeworld_id,omitempty" validate:"omitempty,gt=0"`
}

func (r SpeciesRequest) toDomain(id int64) domain.Species {
	return domain.Species{
		ID:              id,
		Name:            r.Name,
		Classification:  r.Classification,
		Designation:     r.Designation,
		AverageHeight:   r.AverageHeight,
		SkinColors:      r.SkinColors,
		HairColors:      r.HairColors,
		EyeColors:       r.EyeColors,
		AverageLifespan: r.AverageLifespan,
		Language:        r.Language,
		PlanetID:        r.HomeworldID,
	}
}

type CharacterRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Height      *int    `json:"height" validate:"required,gte=0"`
	Mass        *int    `json:"mass" validate:"required,gte=0"`
	HairColor   *string `json:"hair_color,omitempty" validate:"omitempty,max=120"`
	SkinColor   *string `json:"skin_color,omitempty" validate:"omitempty,max=120"`
	EyeColor    *string `json:"eye_color,omitempty" validate:"omitempty,max=120"`
	BirthYear   *string `json:"birth_year,omitempty" validate:"omitempty,max=120"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,max=120"`
	HomeworldID *int64  `json:"homeworld_id,omitempty" validate:"omitempty,gt=0"`
	SpeciesID   *int64  `json:"species_id,omitempty" validate:"omitempty,gt=0"`
}

func (r CharacterRequest) toDomain(id int64) domain.Character {
	c := domain.Character{
		ID:        id,
		Name:      r.Name,
		HairColor: r.HairColor,
		SkinColor: r.SkinColor,
		EyeColor:  r.EyeColor,
		BirthYear: r.BirthYear,
		Gender:    r.Gender,
		PlanetID:  r.HomeworldID,
		SpeciesID: r.SpeciesID,
	}
	if r.Height != nil {
		c.Height = *r.Height
	}
	if r.Mass != nil {
		c.Mass = *r.Mass
	}
	return c
}
