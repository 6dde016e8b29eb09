// Package parcel provides the Parcel aggregate and its lifecycle.
//
// The package includes:
//   - Parcel: the aggregate root for a shipment, from intake to delivery
//   - Status: the lifecycle state machine
//   - TrackingCode: the public, immutable shipment reference
//   - Tariff: the cost rule (base fee plus a fee per kilogram)
//   - HistoryEntry: an append-only record of a messenger scan
//   - StatusChanged: the domain event recorded on every status change
//
// Lifecycle transitions accepted by Parcel.ChangeStatus:
//
//	registered       -> approved, rejected, cancelled
//	approved         -> registered, rejected, cancelled, in_transit
//	in_transit       -> out_for_delivery, delivered
//	out_for_delivery -> in_transit, delivered
//
// rejected, delivered and cancelled are terminal.
package parcel
