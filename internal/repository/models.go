package repository

import "gorm.io/gorm"

// Table and column names match the legacy schema so an existing database
// can be reused as-is.

type userModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Username string `gorm:"column:username;type:varchar(120);uniqueIndex:idx_user_username;not null"`
	Email    string `gorm:"column:email;type:varchar(120);uniqueIndex:idx_user_email;not null"`
	Password string `gorm:"column:password;not null"`
	IsActive bool   `gorm:"column:is_active;not null"`
}

func (userModel) TableName() string { return "user" }

type planetModel struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:name;type:varchar(120);not null"`
	RotationPeriod string `gorm:"column:rotation_period;type:varchar(120);not null"`
	OrbitalPeriod  string `gorm:"column:orbital_period;type:varchar(120);not null"`
	Diameter       string `gorm:"column:diameter;type:varchar(120);not null"`
	Climate        string `gorm:"column:climate;type:varchar(120);not null"`
	Gravity        string `gorm:"column:gravity;type:varchar(120);not null"`
	Terrain        string `gorm:"column:terrain;type:varchar(120);not null"`
	SurfaceWater   string `gorm:"column:surface_water;type:varchar(120);not null"`
	Population     string `gorm:"column:population;type:varchar(120);not null"`
}

func (planetModel) TableName() string { return "planets" }

type speciesModel struct {
	ID              int64  `gorm:"column:id;primaryKey"`
	Name            string `gorm:"column:name;type:varchar(120);not null"`
	Classification  string `gorm:"column:classification;type:varchar(120);not null"`
	Designation     string `gorm:"column:designation;type:varchar(120);not null"`
	AverageHeight   string `gorm:"column:average_height;type:varchar(120);not null"`
	SkinColors      string `gorm:"column:skin_colors;type:varchar(120);not null"`
	HairColors      string `gorm:"column:hair_colors;type:varchar(120);not null"`
	EyeColors       string `gorm:"column:eye_colors;type:varchar(120);not null"`
	AverageLifespan string `gorm:"column:average_lifespan;type:varchar(120);not null"`
	Language        string `gorm:"column:language;type:varchar(120);not null"`
	PlanetID        *int64 `gorm:"column:planets_id;index"`

	// belongs-to only; the reverse side is a query
	Homeworld *planetModel `gorm:"foreignKey:PlanetID;constraint:OnDelete:RESTRICT"`
}

func (speciesModel) TableName() string { return "species" }

type characterModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name;type:varchar(120);not null"`
	Height    int     `gorm:"column:height;not null"`
	Mass      int     `gorm:"column:mass;not null"`
	HairColor *string `gorm:"column:hair_color;type:varchar(120)"`
	SkinColor *string `gorm:"column:skin_color;type:varchar(120)"`
	EyeColor  *string `gorm:"column:eye_color;type:varchar(120)"`
	BirthYear *string `gorm:"column:birth_year;type:varchar(120)"`
	Gender    *string `gorm:"column:gender;type:varchar(120)"`
	PlanetID  *int64  `gorm:"column:planets_id;index"`
	SpeciesID *int64  `gorm:"column:species_id;index"`

	Homeworld *planetModel  `gorm:"foreignKey:PlanetID;constraint:OnDelete:RESTRICT"`
	Species   *speciesModel `gorm:"foreignKey:SpeciesID;constraint:OnDelete:RESTRICT"`
}

func (characterModel) TableName() string { return "characters" }

type favoriteCharacterModel struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	UserID      int64 `gorm:"column:user_id;not null;uniqueIndex:idx_favorite_character_pair"`
	CharacterID int64 `gorm:"column:character_id;not null;index;uniqueIndex:idx_favorite_character_pair"`

	User      *userModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Character *characterModel `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
}

func (favoriteCharacterModel) TableName() string { return "favorite_character" }

type favoritePlanetModel struct {
	ID       int64 `gorm:"column:id;primaryKey"`
	UserID   int64 `gorm:"column:user_id;not null;uniqueIndex:idx_favorite_planet_pair"`
	PlanetID int64 `gorm:"column:planet_id;not null;index;uniqueIndex:idx_favorite_planet_pair"`

	User   *userModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Planet *planetModel `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
}

func (favoritePlanetModel) TableName() string { return "favorite_planet" }

type favoriteSpeciesModel struct {
	ID        int64 `gorm:"column:id;primaryKey"`
	UserID    int64 `gorm:"column:user_id;not null;uniqueIndex:idx_favorite_species_pair"`
	SpeciesID int64 `gorm:"column:specie_id;not null;index;uniqueIndex:idx_favorite_species_pair"`

	User    *userModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Species *speciesModel `gorm:"foreignKey:SpeciesID;constraint:OnDelete:CASCADE"`
}

func (favoriteSpeciesModel) TableName() string { return "favorite_species" }

// Migrate creates or updates every catalog table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&planetModel{},
		&speciesModel{},
		&characterModel{},
		&userModel{},
		&favoriteCharacterModel{},
		&favoritePlanetModel{},
		&favoriteSpeciesModel{},
	)
}
