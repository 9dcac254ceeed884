package services

import (
	"context"
	"sync"
	"testing"

	"github.com/DilipRaja06/match-spot/models"

	"github.com/stretchr/testify/require"
)

// fakeProvider is an InteractionProvider with canned responses. Reply timers
// call it from their own goroutines, hence the lock.
type fakeProvider struct {
	mu               sync.Mutex
	interaction      models.Interaction
	reply            string
	interactionCalls int
	replyCalls       int
}

func (f *fakeProvider) GetInteraction(ctx context.Context) models.Interaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interactionCalls++
	return f.interaction
}

func (f *fakeProvider) GetChatReply(ctx context.Context, user models.User, lastMessage string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replyCalls++
	return f.reply
}

func (f *fakeProvider) setInteraction(i models.Interaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interaction = i
}

func (f *fakeProvider) counts() (interactions, replies int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.interactionCalls, f.replyCalls
}

// newInVenueSession walks a fresh session through the whole check-in flow
// into venue 1 with the given preference tags.
func newInVenueSession(t *testing.T, tags []string) *SessionService {
	t.Helper()

	s := NewSessionService(models.SeedUsers(), models.SeedVenues())

	_, err := s.CompleteOnboarding("Alex", 28, "Testing the waters.")
	require.NoError(t, err)
	_, err = s.SelectVenue(1)
	require.NoError(t, err)
	require.NoError(t, s.ConfirmSelfie("data:image/jpeg;base64,selfie"))
	_, err = s.CompleteQuestionnaire(tags)
	require.NoError(t, err)

	return s
}

// newSwipeService wires a SwipeService over the session with a forced match
// probability.
func newSwipeService(s *SessionService, provider InteractionProvider, probability float64) *SwipeService {
	return &SwipeService{
		Session:          s,
		Provider:         provider,
		Random:           NewSeededRandomSource(42),
		Coupons:          models.SeedCoupons(),
		MatchProbability: probability,
	}
}
