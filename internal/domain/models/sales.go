package models

// SalesLocation is one GPS ping reported by the mobile app.
type SalesLocation struct {
	ID              int64   `json:"id"`
	SalesDocumentID string  `json:"salesDocumentId"`
	SalesName       string  `json:"salesName"`
	Branch          string  `json:"branch"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	RecordedAt      string  `json:"recordedAt"`
}
