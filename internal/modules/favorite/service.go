package favorite

import (
	"context"
	"fmt"

	"starwars/internal/domain"
)

type Service struct {
	store     FavoriteStore
	targets   map[domain.FavoriteKind]TargetChecker
	publisher Publisher
}

// NewService wires the favorite store with one existence checker per kind.
// publisher may be nil.
func NewService(store FavoriteStore, characters, planets, species TargetChecker, publisher Publisher) *Service {
	return &Service{
		store: store,
		targets: map[domain.FavoriteKind]TargetChecker{
			domain.KindCharacter: characters,
			domain.KindPlanet:    planets,
			domain.KindSpecies:   species,
		},
		publisher: publisher,
	}
}

func (s *Service) List(ctx context.Context, userID int64) (*domain.Favorites, error) {
	return s.store.ListByUser(ctx, userID)
}

// Add links the user to the target and returns the link snapshot.
func (s *Service) Add(ctx context.Context, userID int64, kind domain.FavoriteKind, targetID int64) (any, error) {
	if err := s.requireTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	id, err := s.store.Add(ctx, kind, userID, targetID)
	if err != nil {
		return nil, err
	}

	snap := domain.LinkSnapshot(kind, id, userID, targetID)
	s.publish(userID, domain.FavoriteEvent{Type: domain.EventFavoriteAdded, Kind: kind, Payload: snap})
	return snap, nil
}

func (s *Service) Remove(ctx context.Context, userID int64, kind domain.FavoriteKind, targetID int64) error {
	if err := s.store.Remove(ctx, kind, userID, targetID); err != nil {
		return err
	}
	s.publish(userID, domain.FavoriteEvent{
		Type:    domain.EventFavoriteRemoved,
		Kind:    kind,
		Payload: domain.FavoriteRef{UserID: userID, TargetID: targetID},
	})
	return nil
}

func (s *Service) Check(ctx context.Context, userID int64, kind domain.FavoriteKind, targetID int64) (bool, error) {
	return s.store.Exists(ctx, kind, userID, targetID)
}

func (s *Service) requireTarget(ctx context.Context, kind domain.FavoriteKind, id int64) error {
	checker, ok := s.targets[kind]
	if !ok {
		return fmt.Errorf("%w: unknown favorite kind %q", domain.ErrInvalidInput, kind)
	}
	exists, err := checker.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s %d", domain.ErrNotFound, kind, id)
	}
	return nil
}

func (s *Service) publish(userID int64, ev domain.FavoriteEvent) {
	if s.publisher != nil {
		s.publisher.Publish(userID, ev)
	}
}
