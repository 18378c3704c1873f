package dto

import "time"

type AppointmentListDTO struct {
	ID           int64     `json:"id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	ClientName   string    `json:"client_name"`
	ServiceIDs   []int64   `json:"service_ids"`
	ServiceNames []string  `json:"service_names"`
	Price        float64   `json:"price"`
	MaterialCost float64   `json:"material_cost"`
	Profit       float64   `json:"profit"`
	Vehicle      string    `json:"vehicle,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type DayAppointmentsDTO struct {
	Date         string               `json:"date"`
	Appointments []AppointmentListDTO `json:"appointments"`
}
