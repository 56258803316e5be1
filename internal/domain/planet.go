package domain

type Planet struct {
	ID             int64
	Name           string
	RotationPeriod string
	OrbitalPeriod  string
	Diameter       string
	Climate        string
	Gravity        string
	Terrain        string
	SurfaceWater   string
	Population     string
}

// PlanetSnapshot nests the characters and species that call the planet home.
type PlanetSnapshot struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	RotationPeriod string              `json:"rotation_period"`
	OrbitalPeriod  string              `json:"orbital_period"`
	Diameter       string              `json:"diameter"`
	Climate        string              `json:"climate"`
	Gravity        string              `json:"gravity"`
	Terrain        string              `json:"terrain"`
	SurfaceWater   string              `json:"surface_water"`
	Population     string              `json:"population"`
	Characters     []CharacterSnapshot `json:"characters"`
	Species        []SpeciesSnapshot   `json:"species"`
}
