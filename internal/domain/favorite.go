package domain

// FavoriteKind names one of the three things a user can favorite.
type FavoriteKind string

const (
	KindCharacter FavoriteKind = "characters"
	KindPlanet    FavoriteKind = "planets"
	KindSpecies   FavoriteKind = "species"
)

// ParseFavoriteKind accepts the plural path segment used by the API.
func ParseFavoriteKind(s string) (FavoriteKind, bool) {
	switch FavoriteKind(s) {
	case KindCharacter, KindPlanet, KindSpecies:
		return FavoriteKind(s), true
	}
	return "", false
}

// FavoriteCharacter links a user to a character.
type FavoriteCharacter struct {
	ID          int64
	UserID      int64
	CharacterID int64
}

type FavoriteCharacterSnapshot struct {
	ID          int64 `json:"id"`
	UserID      int64 `json:"user_id"`
	CharacterID int64 `json:"character_id"`
}

func (f *FavoriteCharacter) Serialize() FavoriteCharacterSnapshot {
	return FavoriteCharacterSnapshot{ID: f.ID, UserID: f.UserID, CharacterID: f.CharacterID}
}

// FavoritePlanet links a user to a planet.
type FavoritePlanet struct {
	ID       int64
	UserID   int64
	PlanetID int64
}

type FavoritePlanetSnapshot struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"user_id"`
	PlanetID int64 `json:"planet_id"`
}

func (f *FavoritePlanet) Serialize() FavoritePlanetSnapshot {
	return FavoritePlanetSnapshot{ID: f.ID, UserID: f.UserID, PlanetID: f.PlanetID}
}

// FavoriteSpecies links a user to a species. The column is specie_id for
// compatibility with existing databases.
type FavoriteSpecies struct {
	ID        int64
	UserID    int64
	SpeciesID int64
}

type FavoriteSpeciesSnapshot struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	SpeciesID int64 `json:"specie_id"`
}

func (f *FavoriteSpecies) Serialize() FavoriteSpeciesSnapshot {
	return FavoriteSpeciesSnapshot{ID: f.ID, UserID: f.UserID, SpeciesID: f.SpeciesID}
}

// Favorites groups every link a user owns.
type Favorites struct {
	Characters []FavoriteCharacterSnapshot `json:"characters"`
	Planets    []FavoritePlanetSnapshot    `json:"planets"`
	Species    []FavoriteSpeciesSnapshot   `json:"species"`
}

// LinkSnapshot builds the serialized form of a favorite link of any kind.
func LinkSnapshot(kind FavoriteKind, id, userID, targetID int64) any {
	switch kind {
	case KindCharacter:
		f := FavoriteCharacter{ID: id, UserID: userID, CharacterID: targetID}
		return f.Serialize()
	case KindPlanet:
		f := FavoritePlanet{ID: id, UserID: userID, PlanetID: targetID}
		return f.Serialize()
	case KindSpecies:
		f := FavoriteSpecies{ID: id, UserID: userID, SpeciesID: targetID}
		return f.Serialize()
	}
	return nil
}

const (
	EventFavoriteAdded   = "favorite_added"
	EventFavoriteRemoved = "favorite_removed"
)

// FavoriteEvent is pushed to a user's feed when their favorites change.
// Payload is the link snapshot on add and a FavoriteRef on remove.
type FavoriteEvent struct {
	Type    string       `json:"type"`
	Kind    FavoriteKind `json:"kind"`
	Payload any          `json:"payload"`
}

type FavoriteRef struct {
	UserID   int64 `json:"user_id"`
	TargetID int64 `json:"target_id"`
}
