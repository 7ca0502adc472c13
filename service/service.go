// Package service manages the lifecycle of the host's long-lived resources
package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the terminal screen, the audio device
//
// Lifecycle:
//  1. Construction, with configuration passed to the constructor
//  2. Init() - acquire and validate resources
//  3. Start() - begin operation
//  4. [runtime operation]
//  5. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
