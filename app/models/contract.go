package models

import "time"

// ContractOverlay is the editable contract/metric metadata for one customer,
// keyed by customer name and persisted to the spreadsheet-backed store. It is
// tracked separately from usage records, which stay read-only.
type ContractOverlay struct {
	CustomerName string    `json:"customer_name" bson:"customer_name"`
	ContractType string    `json:"contract_type" bson:"contract_type"`
	StartDate    string    `json:"start_date,omitempty" bson:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      string    `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Manager      string    `json:"manager,omitempty" bson:"manager,omitempty"`
	Memo         string    `json:"memo,omitempty" bson:"memo,omitempty"`
	MonthlyQuota int64     `json:"monthly_quota,omitempty" bson:"monthly_quota,omitempty"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ContractType constants
const (
	ContractTypePoC          = "poc"
	ContractTypeAnnual       = "annual"
	ContractTypeSubscription = "subscription"
)

// IsValidContractType reports whether the overlay carries a known type.
func (c *ContractOverlay) IsValidContractType() bool {
	switch c.ContractType {
	case ContractTypePoC, ContractTypeAnnual, ContractTypeSubscription:
		return true
	}
	return false
}
