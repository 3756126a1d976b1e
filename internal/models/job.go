package models

// Job is an open job posting as listed to candidates.
type Job struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}
