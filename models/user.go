package models

// User defines the structure for user profiles in a venue
type User struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Bio            string   `json:"bio"`
	ImageURL       string   `json:"imageUrl"`
	LiveImageURL   string   `json:"liveImageUrl,omitempty"` // In-venue selfie, set at check-in
	CurrentVenueID int      `json:"currentVenueId"`
	Tags           []string `json:"tags,omitempty"`
}

// SharedTagCount returns how many of the user's tags appear in the given tag set.
func (u User) SharedTagCount(tags []string) int {
	count := 0
	for _, mine := range u.Tags {
		for _, theirs := range tags {
			if mine == theirs {
				count++
				break
			}
		}
	}
	return count
}
