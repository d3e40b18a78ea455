// Package errs provides the error types shared by the sales application.
//
// Two families live here:
//   - Typed parameter errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError, VersionIsInvalidError).
//     Each has a sentinel, a struct carrying the details, constructors with
//     and without a cause, and an Unwrap that returns the sentinel.
//   - DomainError, a tagged report used by the domain model. Its Kind names
//     the failure, Inner keeps every nested failure in production order and
//     Value carries the offending input. Collect builds one composite from
//     independent checks, so a request with three bad fields yields one
//     report listing all three.
//
// Both families work with errors.Is and errors.As:
//
//	if errors.Is(err, errs.InvalidAddress) {
//	    // somewhere in the tree an address failed validation
//	}
//	if errs.KindOf(err) == errs.FailedToLoadSalesOrder {
//	    // stored state is corrupted, not user input
//	}
package errs
