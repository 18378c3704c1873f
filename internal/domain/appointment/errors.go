package appointment

import "github.com/BruksfildServices01/garage-scheduler/internal/httperr"

// Business codes returned by the scheduling rules.
const (
	CodeNoServicesSelected = "no_services_selected"
	CodePastDate           = "past_date"
	CodeTimeConflict       = "time_conflict"
	CodeNotFound           = "appointment_not_found"
)

var (
	ErrNoServicesSelected = httperr.ErrBusiness(CodeNoServicesSelected)
	ErrPastDate           = httperr.ErrBusiness(CodePastDate)
	ErrTimeConflict       = httperr.ErrBusiness(CodeTimeConflict)
	ErrNotFound           = httperr.ErrBusiness(CodeNotFound)
)
