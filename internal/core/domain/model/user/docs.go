// Package user models the people who use the parcels service.
//
// The package includes:
//   - User: the aggregate root holding identity, contact data, role,
//     credentials and the e-mail verification state
//   - Profile: the validated personal data captured at registration
//   - Role: client, messenger, operator or admin
//   - RoleSet: the allowed-role policies checked before every protected operation
//
// Key business rules:
//   - E-mail and document number identify a user uniquely; e-mail is stored lower-case
//   - An unverified user holds exactly one verification token, cleared once used
//   - Only verified messengers can be dispatched to parcels
package user
