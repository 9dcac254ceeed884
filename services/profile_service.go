package services

import (
	"fmt"

	"github.com/DilipRaja06/match-spot/models"

	"github.com/go-playground/validator/v10"
)

// OnboardingInput is the local user's self-description from the intro form.
// An underage claim is rejected at this boundary.
type OnboardingInput struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Age  int    `json:"age" validate:"required,gte=18,lte=120"`
	Bio  string `json:"bio" validate:"required,max=500"`
}

// ProfileService mutates the local user's own record as onboarding steps
// complete. All other profiles are immutable seed data.
type ProfileService struct {
	Session  *SessionService
	Validate *validator.Validate
}

// NewProfileService wires a validator instance.
func NewProfileService(session *SessionService) *ProfileService {
	return &ProfileService{Session: session, Validate: validator.New()}
}

// CompleteOnboarding validates and applies the intro form.
func (ps *ProfileService) CompleteOnboarding(input OnboardingInput) (models.User, error) {
	if err := ps.Validate.Struct(input); err != nil {
		return models.User{}, fmt.Errorf("invalid onboarding input: %w", err)
	}
	return ps.Session.CompleteOnboarding(input.Name, input.Age, input.Bio)
}

// ToggleGhostMode flips radar visibility and returns the new value.
func (ps *ProfileService) ToggleGhostMode() bool {
	return ps.Session.ToggleGhostMode()
}
