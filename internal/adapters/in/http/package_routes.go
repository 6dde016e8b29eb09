package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// HeaderTrackingCode accompanies QR images so clients can label the download.
const HeaderTrackingCode = "X-Tracking-Code"

// RegisterPackage handles POST /packages.
func (s *Server) RegisterPackage(ctx echo.Context) error {
	claims, err := s.authorize(ctx, user.ParcelCreators)
	if err != nil {
		return s.fail(ctx, err)
	}

	body, err := bind[servers.RegisterPackageRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var clientID *kernel.UUID
	if body.ClientId != nil && *body.ClientId != "" {
		id, parseErr := kernel.ParseID("client_id", *body.ClientId)
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		clientID = &id
	}

	weight := decimal.Zero
	if body.Weight != nil {
		weight = *body.Weight
	}
	details := parcel.Details{
		SenderName:      body.SenderName,
		RecipientName:   body.RecipientName,
		DeliveryAddress: body.DeliveryAddress,
		Description:     deref(body.Description),
		Weight:          weight,
	}
	cmd, err := commands.NewRegisterParcelCommand(claims, details, clientID)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.RegisterParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, packageFromDomain(p))
}

// ListPackages handles GET /packages. The result is scoped to the caller.
func (s *Server) ListPackages(ctx echo.Context, params servers.ListPackagesParams) error {
	claims, err := s.authorize(ctx, user.AnyRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}
	query, err := queries.NewListParcelsQuery(claims, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	parcels, err := s.h.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Package, len(parcels))
	for i, p := range parcels {
		response[i] = packageFromResponse(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPackage handles GET /packages/{id}.
func (s *Server) GetPackage(ctx echo.Context, id servers.ID) error {
	claims, err := s.authorize(ctx, user.AnyRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetParcelQuery(claims, parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, packageFromResponse(p))
}

// TrackPackage handles GET /packages/tracking/{code}. Public.
func (s *Server) TrackPackage(ctx echo.Context, code string) error {
	query, err := queries.NewTrackParcelQuery(code)
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.h.TrackParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Tracking{
		TrackingCode:      t.TrackingCode,
		Status:            servers.PackageStatus(t.Status.String()),
		StatusLabel:       t.Status.Label(),
		Location:          t.Location,
		SenderName:        optional(t.SenderName),
		RecipientName:     optional(t.RecipientName),
		DeliveryAddress:   optional(t.DeliveryAddress),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		EstimatedDelivery: t.EstimatedDelivery,
	})
}

// UpdatePackage handles PUT /packages/{id}.
func (s *Server) UpdatePackage(ctx echo.Context, id servers.ID) error {
	claims, err := s.authorize(ctx, user.ParcelEditors)
	if err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	body, err := bind[servers.UpdatePackageRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	changes := parcel.Changes{
		SenderName:      body.SenderName,
		RecipientName:   body.RecipientName,
		DeliveryAddress: body.DeliveryAddress,
		Description:     body.Description,
		Weight:          body.Weight,
	}
	cmd, err := commands.NewEditParcelCommand(claims, parcelID, changes)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.EditParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, packageFromDomain(p))
}

// ApprovePackage handles PUT /packages/{id}/approve.
func (s *Server) ApprovePackage(ctx echo.Context, id servers.ID) error {
	return s.review(ctx, id, commands.NewApproveParcelCommand)
}

// RejectPackage handles PUT /packages/{id}/reject.
func (s *Server) RejectPackage(ctx echo.Context, id servers.ID) error {
	return s.review(ctx, id, commands.NewRejectParcelCommand)
}

func (s *Server) review(
	ctx echo.Context,
	id servers.ID,
	newCommand func(kernel.UUID) (commands.ReviewParcelCommand, error),
) error {
	if _, err := s.authorize(ctx, user.Staff); err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := newCommand(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.ReviewParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, packageFromDomain(p))
}

// UpdatePackageStatus handles PUT /packages/{id}/status.
func (s *Server) UpdatePackageStatus(ctx echo.Context, id servers.ID) error {
	claims, err := s.authorize(ctx, user.StatusUpdaters)
	if err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	body, err := bind[servers.UpdateStatusRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateParcelStatusCommand(claims, parcelID, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.UpdateParcelStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, packageFromDomain(p))
}

// AssignMessenger handles PUT /packages/{id}/assign-messenger.
func (s *Server) AssignMessenger(ctx echo.Context, id servers.ID) error {
	if _, err := s.authorize(ctx, user.Staff); err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	body, err := bind[servers.AssignMessengerRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	messengerID, err := kernel.ParseID("messenger_id", body.MessengerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignMessengerCommand(parcelID, messengerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.assign(ctx, cmd)
}

// AssignAutomatic handles PUT /packages/{id}/assign-automatic.
func (s *Server) AssignAutomatic(ctx echo.Context, id servers.ID) error {
	if _, err := s.authorize(ctx, user.Staff); err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAssignAutomaticCommand(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.assign(ctx, cmd)
}

func (s *Server) assign(ctx echo.Context, cmd commands.AssignMessengerCommand) error {
	result, err := s.h.AssignMessenger.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.AssignmentResponse{
		Package:   packageFromDomain(result.Parcel),
		Messenger: userFromDomain(result.Messenger),
	})
}

// ScanPackage handles POST /packages/scan.
func (s *Server) ScanPackage(ctx echo.Context) error {
	claims, err := s.authorize(ctx, user.Scanners)
	if err != nil {
		return s.fail(ctx, err)
	}

	body, err := bind[servers.ScanRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	payload, err := parcel.ParseQRPayload(body.QrData)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewScanParcelCommand(claims, payload, body.Action)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.ScanParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.ScanResponse{
		Package: packageFromDomain(result.Parcel),
		History: historyFromDomain(result.Entry),
	})
}

// GetPackageHistory handles GET /packages/{id}/history.
func (s *Server) GetPackageHistory(ctx echo.Context, id servers.ID) error {
	claims, err := s.authorize(ctx, user.AnyRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetParcelHistoryQuery(claims, parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.h.ParcelHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = historyFromResponse(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPackageQR handles GET /packages/{id}/qr and answers with a PNG.
func (s *Server) GetPackageQR(ctx echo.Context, id servers.ID, params servers.GetPackageQRParams) error {
	claims, err := s.authorize(ctx, user.AnyRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	var size int
	if params.Size != nil {
		size = *params.Size
	}
	query, err := queries.NewGetParcelQRQuery(claims, parcelID, size)
	if err != nil {
		return s.fail(ctx, err)
	}

	qr, err := s.h.ParcelQR.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(HeaderTrackingCode, qr.TrackingCode)
	return ctx.Blob(http.StatusOK, "image/png", qr.PNG)
}

// DeletePackage handles DELETE /packages/{id}.
func (s *Server) DeletePackage(ctx echo.Context, id servers.ID) error {
	if _, err := s.authorize(ctx, user.Staff); err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRemoveParcelCommand(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RemoveParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
