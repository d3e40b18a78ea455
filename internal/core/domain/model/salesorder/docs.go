// Package salesorder holds the SalesOrder aggregate: its value objects, the
// events it records and its persisted document shape.
package salesorder
