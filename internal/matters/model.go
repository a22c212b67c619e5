package matters

import "time"

// Matter statuses observed across the case lifecycle.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

type Matter struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CustomerID  int64     `json:"customerId"`
	CreatedAt   time.Time `json:"createdAt"`
}
