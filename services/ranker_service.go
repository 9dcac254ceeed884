package services

import (
	"sort"

	"github.com/DilipRaja06/match-spot/models"
)

// RankerService derives the ordered pool of swipeable profiles from the seed
// data and the session's exclusion sets. Nothing is memoized: every call
// recomputes from the current session snapshot.
type RankerService struct {
	Session *SessionService
}

// Candidates returns the swipeable profiles for the checked-in venue, sorted
// descending by the number of tags shared with the local user. Ties keep the
// seed order. Outside a venue the pool is empty.
func (rs *RankerService) Candidates() []models.User {
	in := rs.Session.RankingInputs()
	if !in.InVenue {
		return []models.User{}
	}

	candidates := make([]models.User, 0, len(in.Users))
	for _, u := range in.Users {
		if u.CurrentVenueID != in.VenueID || u.ID == in.SelfID {
			continue
		}
		if _, swiped := in.Swiped[u.ID]; swiped {
			continue
		}
		if _, blocked := in.Blocked[u.ID]; blocked {
			continue
		}
		candidates = append(candidates, u)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SharedTagCount(in.SelfTags) > candidates[j].SharedTagCount(in.SelfTags)
	})
	return candidates
}
