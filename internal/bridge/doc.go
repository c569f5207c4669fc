// Package bridge converts domain coordinates to and from a flat,
// fixed-layout representation that can cross an opaque host boundary,
// and degrades domain errors into an out-parameter error slot.
//
// Nothing in this package owns memory the host must release: every flat
// value is a plain struct copied by value.
package bridge
