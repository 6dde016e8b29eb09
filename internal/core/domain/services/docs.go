// Package services provides domain services that coordinate more than one
// aggregate of the parcels domain.
//
// The package includes:
//   - MessengerDispatcher: chooses and validates the messenger a parcel is handed to
package services
