package http

import (
	"context"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
)

// Handler is the shape shared by every command and query handler that
// produces a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// ExecHandler is a command handler with no result.
type ExecHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers groups the use cases the server exposes.
type Handlers struct {
	Authorize Handler[queries.AuthorizeQuery, session.Claims]

	// Identity
	RegisterUser       Handler[commands.RegisterUserCommand, commands.RegisterUserResult]
	UpdateUser         Handler[commands.UpdateUserCommand, *user.User]
	ChangePassword     ExecHandler[commands.ChangePasswordCommand]
	DeleteUser         ExecHandler[commands.DeleteUserCommand]
	ListUsers          Handler[queries.ListUsersQuery, []queries.UserResponse]
	GetUser            Handler[queries.GetUserQuery, queries.UserResponse]
	Login              Handler[commands.LoginCommand, commands.LoginResult]
	RequestCode        Handler[commands.RequestCodeCommand, time.Time]
	VerifyCode         Handler[commands.VerifyCodeCommand, session.TemporarySession]
	ConfirmEmail       Handler[commands.ConfirmEmailCommand, commands.LoginResult]
	ResendVerification Handler[commands.ResendVerificationCommand, bool]
	Logout             ExecHandler[commands.LogoutCommand]

	// Package lifecycle
	RegisterParcel     Handler[commands.RegisterParcelCommand, *parcel.Parcel]
	EditParcel         Handler[commands.EditParcelCommand, *parcel.Parcel]
	ReviewParcel       Handler[commands.ReviewParcelCommand, *parcel.Parcel]
	UpdateParcelStatus Handler[commands.UpdateParcelStatusCommand, *parcel.Parcel]
	AssignMessenger    Handler[commands.AssignMessengerCommand, commands.AssignMessengerResult]
	ScanParcel         Handler[commands.ScanParcelCommand, commands.ScanParcelResult]
	RemoveParcel       ExecHandler[commands.RemoveParcelCommand]
	GetParcel          Handler[queries.GetParcelQuery, queries.ParcelResponse]
	ListParcels        Handler[queries.ListParcelsQuery, []queries.ParcelResponse]
	TrackParcel        Handler[queries.TrackParcelQuery, queries.TrackParcelResponse]
	ParcelHistory      Handler[queries.GetParcelHistoryQuery, []queries.HistoryEntryResponse]
	ParcelQR           Handler[queries.GetParcelQRQuery, queries.ParcelQRResponse]

	// Reporting
	Report    Handler[queries.GetReportQuery, queries.ReportResponse]
	Dashboard Handler[queries.GetDashboardQuery, queries.DashboardResponse]
}
