package domain

// Character belongs to at most one homeworld and one species. Both
// references are nullable, as are the descriptive text columns.
type Character struct {
	ID        int64
	Name      string
	Height    int
	Mass      int
	HairColor *string
	SkinColor *string
	EyeColor  *string
	BirthYear *string
	Gender    *string
	PlanetID  *int64
	SpeciesID *int64
}

// CharacterSnapshot carries homeworld and species as names only.
type CharacterSnapshot struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Height    int     `json:"height"`
	Mass      int     `json:"mass"`
	HairColor *string `json:"hair_color"`
	SkinColor *string `json:"skin_color"`
	EyeColor  *string `json:"eye_color"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
	Homeworld *string `json:"homeworld"`
	Species   *string `json:"species"`
}
