package suppliers

import (
	"fmt"
	"strings"

	"github.com/vendordesk/vendordesk/internal/platform/httpx"
)

func validate(s *Supplier) error {
	if strings.TrimSpace(s.CompanyName) == "" {
		return fmt.Errorf("%w: company name is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(s.VendorName) == "" {
		return fmt.Errorf("%w: vendor name is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(s.PrimaryEmail) == "" {
		return fmt.Errorf("%w: primary email is required", httpx.ErrValidation)
	}
	return nil
}
