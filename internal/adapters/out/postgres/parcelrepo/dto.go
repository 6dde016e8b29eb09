// Package parcelrepo persists parcel aggregates in the packages table.
package parcelrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO is the row shape of the packages table. Statuses are stored by code.
type ParcelDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode        string    `gorm:"uniqueIndex"`
	SenderName          string
	RecipientName       string
	DeliveryAddress     string
	Description         string
	Weight              decimal.Decimal `gorm:"type:numeric(10,2)"`
	Cost                decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status              string          `gorm:"index"`
	ClientID            uuid.UUID       `gorm:"type:uuid;index"`
	AssignedMessengerID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ParcelDTO) TableName() string {
	return "packages"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	var messengerID *uuid.UUID
	if id := p.MessengerID(); id != nil {
		raw := id.Bytes()
		messengerID = &raw
	}

	d := p.Details()
	return ParcelDTO{
		ID:                  p.ID().Bytes(),
		TrackingCode:        p.TrackingCode().String(),
		SenderName:          d.SenderName,
		RecipientName:       d.RecipientName,
		DeliveryAddress:     d.DeliveryAddress,
		Description:         d.Description,
		Weight:              d.Weight,
		Cost:                p.Cost(),
		Status:              p.Status().String(),
		ClientID:            p.ClientID().Bytes(),
		AssignedMessengerID: messengerID,
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var messengerID *kernel.UUID
	if dto.AssignedMessengerID != nil {
		mID, messengerErr := kernel.UUIDFromBytes((*dto.AssignedMessengerID)[:])
		if messengerErr != nil {
			return nil, messengerErr
		}
		messengerID = &mID
	}

	code, err := parcel.ParseTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	details := parcel.Details{
		SenderName:      dto.SenderName,
		RecipientName:   dto.RecipientName,
		DeliveryAddress: dto.DeliveryAddress,
		Description:     dto.Description,
		Weight:          dto.Weight,
	}

	return parcel.RestoreParcel(id, code, details, dto.Cost, status, clientID, messengerID, dto.CreatedAt, dto.UpdatedAt)
}
