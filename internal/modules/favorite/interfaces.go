package favorite

import (
	"context"

	"starwars/internal/domain"
)

type FavoriteStore interface {
	Add(ctx context.Context, kind domain.FavoriteKind, userID, targetID int64) (int64, error)
	Remove(ctx context.Context, kind domain.FavoriteKind, userID, targetID int64) error
	Exists(ctx context.Context, kind domain.FavoriteKind, userID, targetID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) (*domain.Favorites, error)
}

// TargetChecker reports whether a catalog row exists. The planet, species
// and character repositories all satisfy it.
type TargetChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Publisher delivers change events to a user's live connections.
type Publisher interface {
	Publish(userID int64, event domain.FavoriteEvent)
}
