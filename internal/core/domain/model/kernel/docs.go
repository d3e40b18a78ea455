// Package kernel provides the value objects shared across the sales domain model.
//
// The package includes:
//   - UUID and AccountID: identifiers for aggregates, line items and owning accounts
//   - Quantity, LineNumber and OrderNumber: validated positive integers
//   - Money and Measure: decimal amounts tagged with a currency or a unit
//
// Every constructor validates its input and reports failures as *errs.DomainError
// with a kind naming the value object, so callers can aggregate them. The zero
// value of each type is invalid and is rejected by its Validate method.
package kernel
