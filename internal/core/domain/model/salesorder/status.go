package salesorder

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// Status is the lifecycle state of a sales order. Create always produces Open;
// the other states are recognised when loading orders changed elsewhere.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Open
	Sent
	Recalled
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Sent:      "Sent",
		Recalled:  "Recalled",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "Open",
		Sent:      "Sent",
		Recalled:  "Recalled",
		Cancelled: "Cancelled",
	}
}

// ParseStatus maps a stored status name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewDomainErrorWithCause(errs.InvalidStatus, "order status is invalid", s,
		errs.NewValueIsInvalidErrorWithCause("orderStatus", fmt.Errorf("%q is not a valid status", s)))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
