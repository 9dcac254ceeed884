package models

// Check-in states for the onboarding flow
const (
	CheckinStateOnboarding         = "onboarding"
	CheckinStateSelectingVenue     = "selectingVenue"
	CheckinStateTakingSelfie       = "takingSelfie"
	CheckinStateAnsweringQuestions = "answeringQuestions"
	CheckinStateInVenue            = "inVenue"
)

// Swipe actions
const (
	SwipeActionLike = "like"
	SwipeActionPass = "pass"
)

// TagSkipped marks a questionnaire step the user skipped; it never lands on a profile.
const TagSkipped = "Skipped"
