package entity

type StarShare struct {
	Stars      int `json:"stars"`
	Percentage int `json:"percentage"`
}

// RatingSummary is a read-only aggregate of community ratings.
type RatingSummary struct {
	Average      float64     `json:"average"`
	Total        int         `json:"total"`
	Distribution []StarShare `json:"distribution"`
}
