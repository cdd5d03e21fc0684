// Package diagnostic provides structured warnings collected while building
// the routing model.
//
// The known, tolerated mismatches between the two upstream data sources
// (a signal with no route register, a signal with no routing-capability
// match) surface here as warnings rather than aborting the run. Genuinely
// unexpected document shapes are plain errors, not diagnostics.
package diagnostic
