package optimizer

import (
	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
)

// Reasons attached to optimizer errors under the "reason" meta key
const (
	ReasonNoCombinations = "no_combinations"
	ReasonMissingItem    = "missing_item"
	ReasonValidation     = "validation"

	metaReason = "reason"
	metaSlot   = "slot"
)

// NoCombinations is returned when the enumeration produced no item sets
func NoCombinations() *errors.Error {
	return errors.FailedPrecondition("there are no item set combinations").
		WithMeta(metaReason, ReasonNoCombinations)
}

// MissingItem is returned when a tuple has no entry for slot
func MissingItem(slot gear.SlotInstance) *errors.Error {
	return errors.Internalf("failed to assign %s to the item set", slot).
		WithMeta(metaReason, ReasonMissingItem).
		WithMeta(metaSlot, slot.String())
}

// ValidationError is returned when an item set breaks a structural rule
func ValidationError(msg string) *errors.Error {
	return errors.InvalidArgumentf("validation of the item set failed: %s", msg).
		WithMeta(metaReason, ReasonValidation)
}

// IsNoCombinations checks if err came from NoCombinations
func IsNoCombinations(err error) bool {
	return errors.HasMeta(err, metaReason, ReasonNoCombinations)
}

// IsMissingItem checks if err came from MissingItem
func IsMissingItem(err error) bool {
	return errors.HasMeta(err, metaReason, ReasonMissingItem)
}

// IsValidation checks if err came from ValidationError
func IsValidation(err error) bool {
	return errors.HasMeta(err, metaReason, ReasonValidation)
}
