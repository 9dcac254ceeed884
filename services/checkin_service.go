package services

import (
	"errors"
	"log"
	"strings"

	"github.com/DilipRaja06/match-spot/models"
)

var ErrEmptySelfie = errors.New("selfie image data must not be empty")

// CheckinService walks the venue check-in flow: pick a venue, confirm the
// in-venue selfie, answer the preference questionnaire. Completing the
// questionnaire is the moment the user is actually "in" the venue and the
// per-visit session state resets.
type CheckinService struct {
	Session *SessionService
}

// SelectVenue starts a check-in against the given venue.
func (cs *CheckinService) SelectVenue(venueID int) (models.Venue, error) {
	venue, err := cs.Session.SelectVenue(venueID)
	if err != nil {
		return models.Venue{}, err
	}
	log.Printf("📍 Checking into %s", venue.Name)
	return venue, nil
}

// ConfirmSelfie stores the live image captured at the door.
func (cs *CheckinService) ConfirmSelfie(imageDataURL string) error {
	if strings.TrimSpace(imageDataURL) == "" {
		return ErrEmptySelfie
	}
	return cs.Session.ConfirmSelfie(imageDataURL)
}

// CancelSelfie backs out to venue selection.
func (cs *CheckinService) CancelSelfie() error {
	return cs.Session.CancelSelfie()
}

// CompleteQuestionnaire finishes the check-in with the chosen tags.
func (cs *CheckinService) CompleteQuestionnaire(tags []string) (models.User, error) {
	return cs.Session.CompleteQuestionnaire(tags)
}

// LeaveVenue returns to venue selection without resetting anything.
func (cs *CheckinService) LeaveVenue() error {
	return cs.Session.LeaveVenue()
}
