package http

import (
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func profileFromRegistration(r servers.RegisterUserRequest) user.Profile {
	return user.Profile{
		FirstName:      deref(r.FirstName),
		SecondName:     deref(r.SecondName),
		LastName:       deref(r.LastName),
		SecondLastName: deref(r.SecondLastName),
		DocumentNumber: deref(r.DocumentNumber),
		Email:          deref(r.Email),
		Address:        deref(r.Address),
		Phone:          deref(r.Phone),
	}
}

func userDTO(id kernel.UUID, p user.Profile, role user.Role, verified bool) servers.User {
	return servers.User{
		Id:              id.Bytes(),
		FirstName:       optional(p.FirstName),
		SecondName:      optional(p.SecondName),
		LastName:        optional(p.LastName),
		SecondLastName:  optional(p.SecondLastName),
		DocumentNumber:  optional(p.DocumentNumber),
		Email:           optional(p.Email),
		Address:         optional(p.Address),
		Phone:           optional(p.Phone),
		Role:            servers.Role(role.String()),
		IsEmailVerified: verified,
	}
}

func userFromDomain(u *user.User) servers.User {
	if u == nil {
		return servers.User{}
	}
	dto := userDTO(u.ID(), u.Profile(), u.Role(), u.IsEmailVerified())
	dto.CreatedAt = u.CreatedAt()
	dto.UpdatedAt = u.UpdatedAt()
	return dto
}

func userFromResponse(u queries.UserResponse) servers.User {
	dto := userDTO(u.ID, u.Profile, u.Role, u.IsEmailVerified)
	dto.CreatedAt = u.CreatedAt
	dto.UpdatedAt = u.UpdatedAt
	return dto
}

func packageFromDomain(p *parcel.Parcel) servers.Package {
	if p == nil {
		return servers.Package{}
	}
	d := p.Details()
	return servers.Package{
		Id:              p.ID().Bytes(),
		TrackingCode:    p.TrackingCode().String(),
		SenderName:      d.SenderName,
		RecipientName:   d.RecipientName,
		DeliveryAddress: d.DeliveryAddress,
		Description:     optional(d.Description),
		Weight:          d.Weight,
		Cost:            p.Cost(),
		Status:          servers.PackageStatus(p.Status().String()),
		StatusLabel:     p.Status().Label(),
		ClientId:        p.ClientID().Bytes(),
		MessengerId:     optionalID(p.MessengerID()),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

func packageFromResponse(p queries.ParcelResponse) servers.Package {
	return servers.Package{
		Id:              p.ID.Bytes(),
		TrackingCode:    p.TrackingCode,
		SenderName:      p.SenderName,
		RecipientName:   p.RecipientName,
		DeliveryAddress: p.DeliveryAddress,
		Description:     optional(p.Description),
		Weight:          p.Weight,
		Cost:            p.Cost,
		Status:          servers.PackageStatus(p.Status.String()),
		StatusLabel:     p.Status.Label(),
		ClientId:        p.ClientID.Bytes(),
		ClientName:      optional(p.ClientName),
		MessengerId:     optionalID(p.MessengerID),
		MessengerName:   optional(p.MessengerName),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func historyFromDomain(e parcel.HistoryEntry) servers.HistoryEntry {
	return servers.HistoryEntry{
		Id:          e.ID().Bytes(),
		Status:      servers.PackageStatus(e.Status().String()),
		StatusLabel: e.Status().Label(),
		Location:    e.Location(),
		Notes:       optional(e.Notes()),
		MessengerId: optionalID(e.MessengerID()),
		CreatedAt:   e.CreatedAt(),
	}
}

func historyFromResponse(e queries.HistoryEntryResponse) servers.HistoryEntry {
	return servers.HistoryEntry{
		Id:            e.ID.Bytes(),
		Status:        servers.PackageStatus(e.Status.String()),
		StatusLabel:   e.Status.Label(),
		Location:      e.Location,
		Notes:         optional(e.Notes),
		MessengerId:   optionalID(e.MessengerID),
		MessengerName: optional(e.MessengerName),
		CreatedAt:     e.CreatedAt,
	}
}
