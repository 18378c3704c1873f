package models

type Service struct {
	ID          int64  `json:"id"`
	CategoryID  *int64 `json:"categoryId,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Duration int     `json:"duration"` // minutes
	Price    float64 `json:"price"`

	RequiresParts bool `json:"requiresParts,omitempty"`
}

type ServiceCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
