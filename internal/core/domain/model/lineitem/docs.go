// Package lineitem models the line items of a sales order: the ordered catalog
// variant snapshot, quantity, line number and customer personalization.
//
// Create validates untrusted input, Load validates a stored Document; both
// report every field problem in one error and both recompute personalization
// flags. CreateAll and LoadAll fan out over many line items and keep the input
// order in both the result and the failure report.
package lineitem
