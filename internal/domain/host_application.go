package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

type HostApplication struct {
	ID             int32             `json:"id"`
	ApplicantID    int32             `json:"applicant_id"`
	BusinessDomain string            `json:"business_domain"`
	Description    string            `json:"description"`
	Status         ApplicationStatus `json:"status"`
	DecisionReason string            `json:"decision_reason,omitempty"`
	CreatedOn      time.Time         `json:"created_on"`
	DecidedOn      *time.Time        `json:"decided_on,omitempty"`
}
