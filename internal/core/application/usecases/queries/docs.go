// Package queries contains the read side of the parcels service.
//
// Query handlers read straight from the database with raw SQL through
// *gorm.DB and return flat response structs; they never load aggregates.
// Visibility rules for parcels are applied here:
//
//   - operators and administrators see every parcel
//   - clients see the parcels they own
//   - messengers see the parcels assigned to them
package queries
