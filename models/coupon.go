package models

// Coupon is a static reward record attached to a match at creation time
type Coupon struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
}
