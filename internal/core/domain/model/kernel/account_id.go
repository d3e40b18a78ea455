package kernel

import (
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrAccountIDIsNotConstructed = errs.NewValueIsRequiredError("AccountID must be created via NewAccountID")

// AccountID identifies the account that owns a sales order.
type AccountID struct {
	id    UUID
	guard guard.ConstructorGuard
}

// NewAccountID parses raw as a UUID. Failures are reported with kind InvalidAccountId.
func NewAccountID(raw string) (AccountID, error) {
	id, err := UUIDFromString(raw)
	if err != nil {
		return AccountID{}, errs.NewDomainErrorWithCause(errs.InvalidAccountID, "account id is invalid", raw,
			errs.NewValueIsInvalidErrorWithCause("accountId", err))
	}

	return AccountID{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (a AccountID) Validate() error {
	return a.guard.Validate(ErrAccountIDIsNotConstructed)
}

func (a AccountID) UUID() UUID {
	return a.id
}

func (a AccountID) String() string {
	return a.id.String()
}

func (a AccountID) IsEqual(other AccountID) bool {
	return a.id.IsEqual(other.id)
}
