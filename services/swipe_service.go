package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/DilipRaja06/match-spot/models"
)

var ErrInvalidAction = errors.New("action must be 'like' or 'pass'")

// MatchNotifier pushes match events to connected clients. The socket server
// implements it; tests substitute a fake.
type MatchNotifier interface {
	BroadcastMatch(match models.Match)
}

// SwipeService runs the like/pass decision and owns the match lifecycle.
// Provider failures never reach the caller: the interaction attached to a new
// match is fallback content at worst.
type SwipeService struct {
	Session          *SessionService
	Provider         InteractionProvider
	Random           *RandomSource
	Coupons          []models.Coupon
	MatchProbability float64
	Notifier         MatchNotifier
}

// Swipe records the decision for a profile. A pass ends there. A like rolls
// the match probability exactly once; on success a fresh interaction and a
// random coupon are bound into a new match, which becomes the most recent
// match for notification purposes.
func (ss *SwipeService) Swipe(ctx context.Context, userID int, action string) (*models.Match, error) {
	if action != models.SwipeActionLike && action != models.SwipeActionPass {
		return nil, ErrInvalidAction
	}

	target, ok := ss.Session.UserByID(userID)
	if !ok || target.ID == ss.Session.CurrentUser().ID {
		return nil, ErrUserNotFound
	}

	ss.Session.MarkSwiped(userID)

	if action == models.SwipeActionPass {
		return nil, nil
	}
	if ss.Random.Float64() >= ss.MatchProbability {
		return nil, nil
	}

	// The provider resolves or falls back; either way we get an interaction.
	interaction := ss.Provider.GetInteraction(ctx)
	coupon := ss.Coupons[ss.Random.Intn(len(ss.Coupons))]

	match := models.Match{
		User:        target,
		Interaction: interaction,
		Coupon:      coupon,
		CreatedAt:   time.Now().UTC(),
		Messages:    []models.ChatMessage{},
	}
	ss.Session.AddMatch(match)
	log.Printf("🎉 Matched with %s at venue %d", target.Name, target.CurrentVenueID)

	if ss.Notifier != nil {
		ss.Notifier.BroadcastMatch(match)
	}
	return &match, nil
}

// RefreshInteraction re-requests the icebreaker for an existing match and
// swaps it in place. Concurrent refreshes are last-write-wins; the match is
// never left without an interaction.
func (ss *SwipeService) RefreshInteraction(ctx context.Context, userID int) (models.Match, error) {
	interaction := ss.Provider.GetInteraction(ctx)
	return ss.Session.ReplaceInteraction(userID, interaction)
}
