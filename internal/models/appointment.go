package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID int64 `json:"id"`

	ClientName string  `json:"clientName"`
	StaffID    int64   `json:"staffId"`
	ServiceIDs []int64 `json:"serviceIds"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Price        float64 `json:"price"`
	MaterialCost float64 `json:"materialCost,omitempty"`
	Notes        string  `json:"notes,omitempty"`

	CarMake  string `json:"carMake,omitempty"`
	CarModel string `json:"carModel,omitempty"`
	CarYear  int    `json:"carYear,omitempty"`
}

// Profit is the operator-entered price minus the parts cost.
func (a Appointment) Profit() float64 {
	return decimal.NewFromFloat(a.Price).
		Sub(decimal.NewFromFloat(a.MaterialCost)).
		InexactFloat64()
}

// Clone returns a copy that does not share the service id slice.
func (a Appointment) Clone() Appointment {
	a.ServiceIDs = append([]int64(nil), a.ServiceIDs...)
	return a
}
