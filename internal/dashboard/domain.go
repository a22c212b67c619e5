package dashboard

// Summary aggregates the counts shown on the dashboard landing view.
type Summary struct {
	Customers       int64            `json:"customers"`
	Matters         int64            `json:"matters"`
	MattersByStatus map[string]int64 `json:"mattersByStatus"`
}
