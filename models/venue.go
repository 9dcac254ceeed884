package models

// Venue is read-only reference data for a check-in location
type Venue struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	ImageURL    string `json:"imageUrl"`
	MusicType   string `json:"musicType"`
	CrowdLevel  int    `json:"crowdLevel"` // Percentage 0-100
	CurrentSong string `json:"currentSong"`
}
