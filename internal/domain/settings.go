package domain

import "time"

// SystemSettings is a process-wide singleton row, mutated only by admin
// action and read by every price computation. Rates are percentages.
type SystemSettings struct {
	CommissionRate  float64   `json:"commission_rate"`
	ServiceFeeRate  float64   `json:"service_fee_rate"`
	MaintenanceMode bool      `json:"maintenance_mode"`
	UpdatedOn       time.Time `json:"updated_on"`
}
