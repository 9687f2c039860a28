package v1

import (
	"errors"
	"net/http"

	"github.com/sunduq/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errCheckTypeInvalid      = errors.New("the type parameter must be either 'loan' or 'expense'")
	errCheckAmountNotSet     = errors.New("the amount parameter must be set to a positive number")
	errResetByNotSet         = errors.New("the resetBy field must be set to the ID of the resetting guardian")
	errResetNotGuardian      = errors.New("only a guardian can reset the used balances of an allocation")
	errLoanStatusUnknown     = errors.New("the status field must be one of 'pending', 'approved', 'rejected'")
	errRepaymentAlreadyPaid  = errors.New("this installment is already marked as paid")
	errContributionImmutable = errors.New("approved contributions are immutable, delete the contribution and declare a new one instead")
)
