// Package config manages gitbox configuration persistence.
//
// It handles:
//   - The process-wide configuration file (~/.gitbox/config.yaml)
//   - Default values for the storage root and branch name
//
// The configuration is loaded once by the entry point and passed into every
// component at construction; nothing mutates it afterwards.
package config
