// Package activity contains core domain types for pointer-activity
// classification.
//
// It defines State (the two-value Active/Inactive classification), Event
// (the stimuli consumed by the debounce engine) and Pulse (a unit motion
// signal). The package is pure data; all behavior lives in the services.
package activity
