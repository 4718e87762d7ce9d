// Package apperrors defines the error taxonomy and process exit codes for
// funclab. It provides typed errors for configuration, validation, and
// recursion-guard failures, along with helpers for wrapping and classifying
// errors consistently across the application.
package apperrors
