package organization

import (
	"time"

	"hrpay/internal/domain/compensation"
)

type Holiday struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

// DefaultPolicy is what a tenant gets before HR has configured anything:
// Saturday+Sunday weekends, fines off, leaves excluded from proration.
func DefaultPolicy() compensation.OrganizationPolicy {
	return compensation.OrganizationPolicy{
		WeeklyOff: compensation.WeeklyOffPolicy{Kind: compensation.WeeklyOffStandard},
		Fine: compensation.FinePolicy{
			Method: compensation.FineMethodRuleBased,
		},
	}
}
