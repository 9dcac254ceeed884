package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/DilipRaja06/match-spot/models"

	"github.com/google/uuid"
)

var ErrEmptyReason = errors.New("report reason must not be empty")

// ModerationService handles block and report. The yes/no confirmation for a
// block is a boundary concern; by the time Block runs here it is decided.
type ModerationService struct {
	Session *SessionService
}

// Block permanently excludes a profile for this session and tears down its
// match, notification and open chat. Idempotent.
func (ms *ModerationService) Block(userID int) (BlockResult, error) {
	if _, ok := ms.Session.UserByID(userID); !ok {
		return BlockResult{}, ErrUserNotFound
	}
	result := ms.Session.Block(userID)
	if !result.AlreadyBlocked {
		log.Printf("🚫 Blocked user %d", userID)
	}
	return result, nil
}

// Report files a free-text report against a profile. Beyond requiring a
// non-empty reason nothing is validated and no session state changes.
func (ms *ModerationService) Report(userID int, reason string) (models.Report, error) {
	if _, ok := ms.Session.UserByID(userID); !ok {
		return models.Report{}, ErrUserNotFound
	}
	if strings.TrimSpace(reason) == "" {
		return models.Report{}, ErrEmptyReason
	}

	report := models.Report{
		ReportID:  uuid.NewString(),
		UserID:    userID,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	ms.Session.AddReport(report)
	log.Printf("Report filed against user %d", userID)
	return report, nil
}
