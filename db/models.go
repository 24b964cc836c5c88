package db

// Download statuses.
const (
	StatusPending  = "pending"
	StatusComplete = "complete"
	StatusError    = "error"
)

// Download represents a row in the downloads table.
type Download struct {
	ID           int64
	URL          string
	VideoID      string
	Title        string
	StartSeconds float64
	EndSeconds   float64
	Speed        float64
	OutputFile   string
	Status       string
	Error        string
	Filesize     int64
	CreatedAt    string
}
