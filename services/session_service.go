package services

import (
	"errors"
	"sync"

	"github.com/DilipRaja06/match-spot/models"
)

var (
	ErrInvalidCheckinState = errors.New("operation not allowed in current check-in state")
	ErrVenueNotFound       = errors.New("venue not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrMatchNotFound       = errors.New("match not found")
)

// SessionService owns all state for the single local session: the local
// user's profile, check-in progress, the swiped/blocked sets, the match
// collection and the active chat target. Collections are replaced on write,
// never mutated in place, so snapshots handed out under the read lock stay
// valid after release.
type SessionService struct {
	mu sync.RWMutex

	users  []models.User
	venues []models.Venue

	currentUser   models.User
	checkinState  string
	selectedVenue *models.Venue
	currentVenue  *models.Venue
	ghostMode     bool

	swiped  map[int]struct{}
	blocked map[int]struct{}

	matches       []models.Match
	lastMatch     *models.Match
	activeMatchID int // matched user ID, 0 when no chat is open

	// Per-match chat generation. Bumped when the match is destroyed so a
	// reply timer that fires late can tell its result is stale.
	generation map[int]int

	reports []models.Report
}

// NewSessionService seeds a fresh session. The first seed user is the local
// user's starting record.
func NewSessionService(users []models.User, venues []models.Venue) *SessionService {
	return &SessionService{
		users:        users,
		venues:       venues,
		currentUser:  users[0],
		checkinState: models.CheckinStateOnboarding,
		swiped:       make(map[int]struct{}),
		blocked:      make(map[int]struct{}),
		generation:   make(map[int]int),
	}
}

// --- Read access ---

// Venues returns the seed venue list.
func (s *SessionService) Venues() []models.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Venue{}, s.venues...)
}

// VenueByID looks up a venue in the seed data.
func (s *SessionService) VenueByID(id int) (models.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.venues {
		if v.ID == id {
			return v, true
		}
	}
	return models.Venue{}, false
}

// UserByID looks up a profile in the seed data.
func (s *SessionService) UserByID(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// CurrentUser returns the local user's profile.
func (s *SessionService) CurrentUser() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// CheckinState returns the current step of the check-in flow.
func (s *SessionService) CheckinState() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkinState
}

// CurrentVenue returns the checked-in venue, if any.
func (s *SessionService) CurrentVenue() (models.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentVenue == nil {
		return models.Venue{}, false
	}
	return *s.currentVenue, true
}

// GhostMode reports whether the local user is hidden from the radar UI.
func (s *SessionService) GhostMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ghostMode
}

// IsSwiped reports whether the profile was already acted on this visit.
func (s *SessionService) IsSwiped(userID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.swiped[userID]
	return ok
}

// IsBlocked reports whether the profile is blocked.
func (s *SessionService) IsBlocked(userID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocked[userID]
	return ok
}

// RankingInputs is the snapshot the candidate ranker works from.
type RankingInputs struct {
	Users    []models.User
	SelfID   int
	SelfTags []string
	VenueID  int
	InVenue  bool
	Swiped   map[int]struct{}
	Blocked  map[int]struct{}
}

// RankingInputs copies everything the ranker needs in one lock acquisition.
func (s *SessionService) RankingInputs() RankingInputs {
	s.mu.RLock()
	defer s.mu.RUnlock()

	in := RankingInputs{
		Users:    append([]models.User{}, s.users...),
		SelfID:   s.currentUser.ID,
		SelfTags: append([]string{}, s.currentUser.Tags...),
		Swiped:   make(map[int]struct{}, len(s.swiped)),
		Blocked:  make(map[int]struct{}, len(s.blocked)),
	}
	if s.currentVenue != nil {
		in.VenueID = s.currentVenue.ID
		in.InVenue = true
	}
	for id := range s.swiped {
		in.Swiped[id] = struct{}{}
	}
	for id := range s.blocked {
		in.Blocked[id] = struct{}{}
	}
	return in
}

// Matches returns the match collection, most recent first.
func (s *SessionService) Matches() []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Match{}, s.matches...)
}

// MatchByUserID finds the match for a given profile.
func (s *SessionService) MatchByUserID(userID int) (models.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.matches {
		if m.User.ID == userID {
			return m, true
		}
	}
	return models.Match{}, false
}

// LastMatch returns the most recent match, used for the notification banner.
func (s *SessionService) LastMatch() (models.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastMatch == nil {
		return models.Match{}, false
	}
	return *s.lastMatch, true
}

// ActiveMatchID returns the profile ID of the open chat, 0 when none.
func (s *SessionService) ActiveMatchID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeMatchID
}

// Generation returns the chat generation for a matched profile. A reply
// scheduled under an older generation must be dropped on delivery.
func (s *SessionService) Generation(userID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation[userID]
}

// Reports returns the reports filed this session.
func (s *SessionService) Reports() []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Report{}, s.reports...)
}

// --- Check-in flow ---

// CompleteOnboarding records the local user's basics and moves to venue selection.
func (s *SessionService) CompleteOnboarding(name string, age int, bio string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkinState != models.CheckinStateOnboarding {
		return models.User{}, ErrInvalidCheckinState
	}
	s.currentUser.Name = name
	s.currentUser.Age = age
	s.currentUser.Bio = bio
	s.checkinState = models.CheckinStateSelectingVenue
	return s.currentUser, nil
}

// SelectVenue picks the venue to check into and moves to the selfie step.
func (s *SessionService) SelectVenue(venueID int) (models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkinState != models.CheckinStateSelectingVenue {
		return models.Venue{}, ErrInvalidCheckinState
	}
	for _, v := range s.venues {
		if v.ID == venueID {
			venue := v
			s.selectedVenue = &venue
			s.checkinState = models.CheckinStateTakingSelfie
			return venue, nil
		}
	}
	return models.Venue{}, ErrVenueNotFound
}

// ConfirmSelfie stores the live image and moves to the questionnaire.
func (s *SessionService) ConfirmSelfie(imageDataURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkinState != models.CheckinStateTakingSelfie {
		return ErrInvalidCheckinState
	}
	s.currentUser.LiveImageURL = imageDataURL
	s.checkinState = models.CheckinStateAnsweringQuestions
	return nil
}

// CancelSelfie abandons the selfie step and returns to venue selection.
func (s *SessionService) CancelSelfie() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkinState != models.CheckinStateTakingSelfie {
		return ErrInvalidCheckinState
	}
	s.selectedVenue = nil
	s.checkinState = models.CheckinStateSelectingVenue
	return nil
}

// CompleteQuestionnaire records preference tags and finishes check-in. The
// per-venue session state (swiped set, matches, notification, open chat)
// resets; the blocked set survives across venue visits.
func (s *SessionService) CompleteQuestionnaire(tags []string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkinState != models.CheckinStateAnsweringQuestions {
		return models.User{}, ErrInvalidCheckinState
	}

	valid := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != models.TagSkipped {
			valid = append(valid, t)
		}
	}
	s.currentUser.Tags = valid

	s.currentVenue = s.selectedVenue
	s.checkinState = models.CheckinStateInVenue

	for _, m := range s.matches {
		s.generation[m.User.ID]++
	}
	s.swiped = make(map[int]struct{})
	s.matches = nil
	s.lastMatch = nil
	s.activeMatchID = 0
	return s.currentUser, nil
}

// LeaveVenue returns the user to venue selection. Matches and swipes stick
// around until the next check-in completes.
func (s *SessionService) LeaveVenue() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkinState != models.CheckinStateInVenue {
		return ErrInvalidCheckinState
	}
	s.currentVenue = nil
	s.selectedVenue = nil
	s.activeMatchID = 0
	s.checkinState = models.CheckinStateSelectingVenue
	return nil
}

// ToggleGhostMode flips radar visibility and returns the new value.
func (s *SessionService) ToggleGhostMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ghostMode = !s.ghostMode
	return s.ghostMode
}

// --- Swipe / match state ---

// MarkSwiped records that the local user acted on a profile.
func (s *SessionService) MarkSwiped(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.swiped[userID] = struct{}{}
}

// AddMatch prepends a new match (most recent first) and exposes it as the
// last match for the notification banner.
func (s *SessionService) AddMatch(match models.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := make([]models.Match, 0, len(s.matches)+1)
	updated = append(updated, match)
	updated = append(updated, s.matches...)
	s.matches = updated
	last := match
	s.lastMatch = &last
}

// ReplaceInteraction swaps only the interaction of the identified match,
// last-write-wins. The notification banner is kept in step.
func (s *SessionService) ReplaceInteraction(userID int, interaction models.Interaction) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := append([]models.Match{}, s.matches...)
	for i, m := range updated {
		if m.User.ID != userID {
			continue
		}
		m.Interaction = interaction
		updated[i] = m
		s.matches = updated
		if s.lastMatch != nil && s.lastMatch.User.ID == userID {
			last := m
			s.lastMatch = &last
		}
		return m, nil
	}
	return models.Match{}, ErrMatchNotFound
}

// ClearLastMatch dismisses the match notification.
func (s *SessionService) ClearLastMatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastMatch = nil
}

// OpenChat makes the given match the active chat target.
func (s *SessionService) OpenChat(userID int) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.User.ID == userID {
			s.activeMatchID = userID
			return m, nil
		}
	}
	return models.Match{}, ErrMatchNotFound
}

// CloseChat clears the active chat target.
func (s *SessionService) CloseChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeMatchID = 0
}

// AppendSelfMessage appends a message authored by the local user to the
// match's sequence.
func (s *SessionService) AppendSelfMessage(userID int, msg models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendMessageLocked(userID, msg)
}

// AppendReply appends a persona reply if the match still exists under the
// same chat generation it was scheduled for. Returns false when the result
// is stale and was dropped.
func (s *SessionService) AppendReply(userID int, msg models.ChatMessage, gen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation[userID] != gen {
		return false
	}
	return s.appendMessageLocked(userID, msg) == nil
}

func (s *SessionService) appendMessageLocked(userID int, msg models.ChatMessage) error {
	updated := append([]models.Match{}, s.matches...)
	for i, m := range updated {
		if m.User.ID != userID {
			continue
		}
		messages := make([]models.ChatMessage, 0, len(m.Messages)+1)
		messages = append(messages, m.Messages...)
		messages = append(messages, msg)
		m.Messages = messages
		updated[i] = m
		s.matches = updated
		if s.lastMatch != nil && s.lastMatch.User.ID == userID {
			last := m
			s.lastMatch = &last
		}
		return nil
	}
	return ErrMatchNotFound
}

// --- Moderation ---

// BlockResult tells the caller what the block changed so the presentation
// layer can react (close chat, surface the match list, drop the banner).
type BlockResult struct {
	AlreadyBlocked   bool `json:"alreadyBlocked"`
	RemovedMatch     bool `json:"removedMatch"`
	ClosedChat       bool `json:"closedChat"`
	ClearedLastMatch bool `json:"clearedLastMatch"`
	ShowMatchedList  bool `json:"showMatchedList"`
}

// Block excludes a profile for the rest of the session: it joins the blocked
// set, its match (if any) is destroyed, its notification is dropped and an
// open chat against it is closed. Blocking twice is a no-op.
func (s *SessionService) Block(userID int) BlockResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result BlockResult
	if _, ok := s.blocked[userID]; ok {
		result.AlreadyBlocked = true
		return result
	}
	s.blocked[userID] = struct{}{}

	updated := make([]models.Match, 0, len(s.matches))
	for _, m := range s.matches {
		if m.User.ID == userID {
			result.RemovedMatch = true
			continue
		}
		updated = append(updated, m)
	}
	s.matches = updated
	s.generation[userID]++

	if s.activeMatchID == userID {
		s.activeMatchID = 0
		result.ClosedChat = true
		// Return the user to the matches list so they aren't left stranded.
		result.ShowMatchedList = true
	}
	if s.lastMatch != nil && s.lastMatch.User.ID == userID {
		s.lastMatch = nil
		result.ClearedLastMatch = true
	}
	return result
}

// AddReport files a report record. No other session state changes.
func (s *SessionService) AddReport(report models.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(append([]models.Report{}, s.reports...), report)
}
