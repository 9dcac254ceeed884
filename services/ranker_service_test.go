package services

import (
	"testing"

	"github.com/DilipRaja06/match-spot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesEmptyOutsideVenue(t *testing.T) {
	s := NewSessionService(models.SeedUsers(), models.SeedVenues())
	ranker := &RankerService{Session: s}

	assert.Empty(t, ranker.Candidates())
}

func TestCandidatesFilterVenueSelfSwipedBlocked(t *testing.T) {
	s := newInVenueSession(t, []string{"Here to Dance"})
	ranker := &RankerService{Session: s}

	s.MarkSwiped(2)
	s.Block(3)

	candidates := ranker.Candidates()
	require.NotEmpty(t, candidates)

	self := s.CurrentUser()
	venue, ok := s.CurrentVenue()
	require.True(t, ok)

	for _, c := range candidates {
		assert.Equal(t, venue.ID, c.CurrentVenueID)
		assert.NotEqual(t, self.ID, c.ID)
		assert.False(t, s.IsSwiped(c.ID), "swiped profile %d resurfaced", c.ID)
		assert.False(t, s.IsBlocked(c.ID), "blocked profile %d resurfaced", c.ID)
	}
}

func TestCandidatesSharedTagRanksFirst(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Me", CurrentVenueID: 1},
		{ID: 2, Name: "NoShared", CurrentVenueID: 1, Tags: []string{"Wine"}},
		{ID: 3, Name: "Dancer", CurrentVenueID: 1, Tags: []string{"Here to Dance"}},
	}
	s := NewSessionService(users, models.SeedVenues())
	_, err := s.CompleteOnboarding("Me", 28, "bio")
	require.NoError(t, err)
	_, err = s.SelectVenue(1)
	require.NoError(t, err)
	require.NoError(t, s.ConfirmSelfie("data:image/jpeg;base64,selfie"))
	_, err = s.CompleteQuestionnaire([]string{"Here to Dance"})
	require.NoError(t, err)

	ranker := &RankerService{Session: s}
	candidates := ranker.Candidates()
	require.Len(t, candidates, 2)
	assert.Equal(t, "Dancer", candidates[0].Name, "the shared-tag profile must rank first")
}

func TestCandidatesSeedSharedTagRanksFirst(t *testing.T) {
	// Ethan is the only venue-1 profile tagged "Flirting".
	s := newInVenueSession(t, []string{"Flirting"})
	ranker := &RankerService{Session: s}

	candidates := ranker.Candidates()
	require.NotEmpty(t, candidates)
	assert.Equal(t, "Ethan", candidates[0].Name)
}

func TestCandidatesRankingIsMonotonicAndStable(t *testing.T) {
	s := newInVenueSession(t, []string{"Here to Dance", "Find a Date", "Wine"})
	ranker := &RankerService{Session: s}

	tags := s.CurrentUser().Tags
	candidates := ranker.Candidates()
	require.True(t, len(candidates) > 1)

	for i := 1; i < len(candidates); i++ {
		prev := candidates[i-1].SharedTagCount(tags)
		cur := candidates[i].SharedTagCount(tags)
		assert.GreaterOrEqual(t, prev, cur, "candidate %d outranks %d", i, i-1)
		if prev == cur {
			assert.Less(t, indexOfSeedUser(t, candidates[i-1].ID), indexOfSeedUser(t, candidates[i].ID),
				"tied candidates must keep seed order")
		}
	}
}

func TestCandidatesRecomputedOnEachCall(t *testing.T) {
	s := newInVenueSession(t, nil)
	ranker := &RankerService{Session: s}

	before := ranker.Candidates()
	require.NotEmpty(t, before)

	s.MarkSwiped(before[0].ID)
	after := ranker.Candidates()
	assert.Len(t, after, len(before)-1)
}

func indexOfSeedUser(t *testing.T, id int) int {
	t.Helper()
	for i, u := range models.SeedUsers() {
		if u.ID == id {
			return i
		}
	}
	t.Fatalf("user %d not in seed data", id)
	return -1
}
