package models

import "time"

// Report is a pure side-effect record of a user report. Nothing else in the
// session mutates when one is filed.
type Report struct {
	ReportID  string    `json:"reportId"`
	UserID    int       `json:"userId"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}
