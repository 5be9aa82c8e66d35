package fixtures

import (
	"github.com/excelpro/staffledger-backend-go/internal/domain/company"
)

func strPtr(s string) *string { return &s }

// DefaultCompanyProfile is the profile seeded when no company_profile
// document has ever been saved.
func DefaultCompanyProfile() company.Profile {
	return company.Profile{
		Name:           "EXCEL ENTERPRISE SOLUTIONS",
		Type:           "Enterprise",
		Address:        "123 Business Park, India",
		Contact:        "+91 99999 88888",
		Email:          "admin@excelpro.com",
		LocationHeader: strPtr("MAIN HEAD OFFICE"),
	}
}
