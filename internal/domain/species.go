package domain

// Species optionally names a homeworld. Its characters are found by query,
// not stored on the struct.
type Species struct {
	ID              int64
	Name            string
	Classification  string
	Designation     string
	AverageHeight   string
	SkinColors      string
	HairColors      string
	EyeColors       string
	AverageLifespan string
	Language        string
	PlanetID        *int64
}

// SpeciesSnapshot nests full character snapshots but only the homeworld name.
type SpeciesSnapshot struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	Classification  string              `json:"classification"`
	Designation     string              `json:"designation"`
	AverageHeight   string              `json:"average_height"`
	SkinColors      string              `json:"skin_colors"`
	HairColors      string              `json:"hair_colors"`
	EyeColors       string              `json:"eye_colors"`
	AverageLifespan string              `json:"average_lifespan"`
	Language        string              `json:"language"`
	Characters      []CharacterSnapshot `json:"characters"`
	Homeworld       *string             `json:"homeworld"`
}
