package validator

import (
	"log"
	"regexp"

	"smmehub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// registerCustomRules installs the domain status rules. Registration
// failures abort startup since they indicate a programming error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("tender_status", func(fl validator.FieldLevel) bool {
		switch models.TenderStatus(fl.Field().String()) {
		case models.TenderStatusOpen, models.TenderStatusClosed,
			models.TenderStatusAwarded, models.TenderStatusCancelled:
			return true
		}
		return false
	})

	mustRegister("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	mustRegister("bid_status", func(fl validator.FieldLevel) bool {
		status := models.BidStatus(fl.Field().String())
		for _, valid := range models.ValidBidStatuses {
			if status == valid {
				return true
			}
		}
		return false
	})
}
