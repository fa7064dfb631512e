package models

// ProfileDraft carries the fields collected on the additional-info screen.
// It is submitted once to complete a pending signup and then discarded.
// Location is the "lat,lon" string the server expects.
type ProfileDraft struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	City        string `json:"city"`
	PhoneNumber string `json:"phoneNumber"`
	Location    string `json:"location"`
}
