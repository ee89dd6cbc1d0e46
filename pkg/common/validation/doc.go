// Package validation provides shared configuration validation helpers used by
// the workerpool and scheduler packages. All helpers return a
// *errors.ValidationError identifying the module and field that was rejected.
package validation
