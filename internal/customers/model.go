package customers

import "time"

type Customer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListItem is the reduced projection returned by list views. Detail views
// return the full Customer.
type ListItem struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (c Customer) listItem() ListItem {
	return ListItem{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Email: c.Email}
}
