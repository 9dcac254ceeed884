package services

import (
	"context"
	"testing"

	"github.com/DilipRaja06/match-spot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwipeInvalidAction(t *testing.T) {
	s := newInVenueSession(t, nil)
	ss := newSwipeService(s, &fakeProvider{}, 1)

	_, err := ss.Swipe(context.Background(), 2, "superlike")
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.False(t, s.IsSwiped(2))
}

func TestSwipeUnknownUser(t *testing.T) {
	s := newInVenueSession(t, nil)
	ss := newSwipeService(s, &fakeProvider{}, 1)

	_, err := ss.Swipe(context.Background(), 999, models.SwipeActionLike)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSwipePassNeverMatches(t *testing.T) {
	s := newInVenueSession(t, nil)
	// Probability 1 would match every like; a pass must still never match.
	ss := newSwipeService(s, &fakeProvider{}, 1)

	match, err := ss.Swipe(context.Background(), 2, models.SwipeActionPass)
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.True(t, s.IsSwiped(2))
	assert.Empty(t, s.Matches())
}

func TestSwipeLikeAlwaysMarksSwiped(t *testing.T) {
	for _, probability := range []float64{0, 1} {
		s := newInVenueSession(t, nil)
		ss := newSwipeService(s, &fakeProvider{interaction: models.Interaction{
			Type: models.InteractionTypeQuestion, Content: "q", BoldMove: "b",
		}}, probability)

		_, err := ss.Swipe(context.Background(), 2, models.SwipeActionLike)
		require.NoError(t, err)
		assert.True(t, s.IsSwiped(2), "probability %v", probability)
	}
}

func TestSwipeLikeAtFullProbabilityCreatesMatch(t *testing.T) {
	s := newInVenueSession(t, nil)
	provider := &fakeProvider{interaction: models.Interaction{
		Type:     models.InteractionTypeChallenge,
		Content:  "Thumb war, best of three.",
		BoldMove: "Walk over and put your elbow on the bar.",
	}}
	ss := newSwipeService(s, provider, 1)

	match, err := ss.Swipe(context.Background(), 2, models.SwipeActionLike)
	require.NoError(t, err)
	require.NotNil(t, match)

	assert.Equal(t, 2, match.User.ID)
	assert.Equal(t, provider.interaction, match.Interaction)
	assert.Contains(t, models.SeedCoupons(), match.Coupon)
	assert.Empty(t, match.Messages)
	assert.False(t, match.CreatedAt.IsZero())
	assert.Equal(t, 1, provider.interactionCalls)

	last, ok := s.LastMatch()
	require.True(t, ok)
	assert.Equal(t, 2, last.User.ID)
}

func TestSwipeLikeAtZeroProbabilityNeverMatches(t *testing.T) {
	s := newInVenueSession(t, nil)
	provider := &fakeProvider{}
	ss := newSwipeService(s, provider, 0)

	match, err := ss.Swipe(context.Background(), 2, models.SwipeActionLike)
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Zero(t, provider.interactionCalls, "no interaction requested without a match")
}

func TestMatchesMostRecentFirst(t *testing.T) {
	s := newInVenueSession(t, nil)
	ss := newSwipeService(s, &fakeProvider{}, 1)

	_, err := ss.Swipe(context.Background(), 2, models.SwipeActionLike)
	require.NoError(t, err)
	_, err = ss.Swipe(context.Background(), 3, models.SwipeActionLike)
	require.NoError(t, err)

	matches := s.Matches()
	require.Len(t, matches, 2)
	assert.Equal(t, 3, matches[0].User.ID)
	assert.Equal(t, 2, matches[1].User.ID)
}

func TestRefreshInteractionReplacesOnlyInteraction(t *testing.T) {
	s := newInVenueSession(t, nil)
	provider := &fakeProvider{interaction: models.Interaction{
		Type: models.InteractionTypeQuestion, Content: "first", BoldMove: "wave",
	}}
	ss := newSwipeService(s, provider, 1)

	created, err := ss.Swipe(context.Background(), 2, models.SwipeActionLike)
	require.NoError(t, err)
	require.NotNil(t, created)

	_, err = ss.Swipe(context.Background(), 2, models.SwipeActionPass) // no-op for matches
	require.NoError(t, err)

	msg := models.ChatMessage{MessageID: "m1", Text: "hey", IsSelf: true}
	require.NoError(t, s.AppendSelfMessage(2, msg))
	before, ok := s.MatchByUserID(2)
	require.True(t, ok)

	second := models.Interaction{Type: models.InteractionTypeGame, Content: "second", BoldMove: "toast"}
	provider.setInteraction(second)
	refreshed, err := ss.RefreshInteraction(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, second, refreshed.Interaction)
	assert.Equal(t, before.User, refreshed.User)
	assert.Equal(t, before.Coupon, refreshed.Coupon)
	assert.Equal(t, before.CreatedAt, refreshed.CreatedAt)
	assert.Equal(t, before.Messages, refreshed.Messages)
}

func TestRefreshInteractionUnknownMatch(t *testing.T) {
	s := newInVenueSession(t, nil)
	ss := newSwipeService(s, &fakeProvider{}, 1)

	_, err := ss.RefreshInteraction(context.Background(), 7)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
