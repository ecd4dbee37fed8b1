package services

import (
	"errors"
	"fmt"

	"messhall/pkg/utils"
)

var domainErrors = []error{
	utils.ErrNotFound,
	utils.ErrValidation,
	utils.ErrInsufficientTokens,
	utils.ErrNotSubscribed,
	utils.ErrMealsLocked,
	utils.ErrAmountTooLow,
	utils.ErrEmailAlreadyExists,
	utils.ErrInvalidCredentials,
}

// asServiceError passes domain errors through and folds anything else
// (driver, connection, constraint failures) into utils.ErrDatabaseError.
func asServiceError(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}
