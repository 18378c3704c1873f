package models

import "time"

// Reference data only; appointments keep the client name as free text.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	LastVisit time.Time `json:"lastVisit"`
}

type Staff struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
