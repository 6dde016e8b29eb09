package http

import (
	"log/slog"
	"net/http"
	"strings"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}

// authorize resolves the bearer token of the request against policy.
func (s *Server) authorize(ctx echo.Context, policy user.RoleSet) (session.Claims, error) {
	query, err := queries.NewAuthorizeQuery(bearerToken(ctx.Request()), policy)
	if err != nil {
		return session.Claims{}, err
	}
	return s.h.Authorize.Handle(ctx.Request().Context(), query)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func bind[T any](ctx echo.Context) (T, error) {
	var body T
	if err := ctx.Bind(&body); err != nil {
		return body, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return body, nil
}

// ListUsers handles GET /users.
func (s *Server) ListUsers(ctx echo.Context, params servers.ListUsersParams) error {
	if _, err := s.authorize(ctx, user.Staff); err != nil {
		return s.fail(ctx, err)
	}

	var role string
	if params.Role != nil {
		role = string(*params.Role)
	}
	query, err := queries.NewListUsersQuery(role)
	if err != nil {
		return s.fail(ctx, err)
	}

	users, err := s.h.ListUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.User, len(users))
	for i, u := range users {
		response[i] = userFromResponse(u)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterUser handles POST /users/register. Public sign-ups are always clients.
func (s *Server) RegisterUser(ctx echo.Context) error {
	body, err := bind[servers.RegisterUserRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(profileFromRegistration(body), body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.registerUser(ctx, cmd)
}

// CreateUser handles POST /users.
func (s *Server) CreateUser(ctx echo.Context) error {
	if _, err := s.authorize(ctx, user.AdminOnly); err != nil {
		return s.fail(ctx, err)
	}

	body, err := bind[servers.CreateUserRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	role, err := user.ParseRole(string(body.Role))
	if err != nil {
		return s.fail(ctx, err)
	}
	profile := profileFromRegistration(servers.RegisterUserRequest{
		Address:        body.Address,
		DocumentNumber: body.DocumentNumber,
		Email:          body.Email,
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Phone:          body.Phone,
		SecondLastName: body.SecondLastName,
		SecondName:     body.SecondName,
	})

	cmd, err := commands.NewCreateUserCommand(profile, body.Password, role)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.registerUser(ctx, cmd)
}

func (s *Server) registerUser(ctx echo.Context, cmd commands.RegisterUserCommand) error {
	result, err := s.h.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.RegisterUserResponse{
		User:                  userFromDomain(result.User),
		VerificationEmailSent: result.VerificationEmailSent,
	})
}

// GetUser handles GET /users/{id}.
func (s *Server) GetUser(ctx echo.Context, id servers.ID) error {
	claims, err := s.authorize(ctx, user.AnyRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	userID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetUserQuery(claims, userID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getUser(ctx, query)
}

// GetCurrentUser handles GET /auth/me.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	claims, err := s.authorize(ctx, user.AnyRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCurrentUserQuery(claims)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getUser(ctx, query)
}

func (s *Server) getUser(ctx echo.Context, query queries.GetUserQuery) error {
	u, err := s.h.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, userFromResponse(u))
}

// UpdateUser handles PUT /users/{id}.
func (s *Server) UpdateUser(ctx echo.Context, id servers.ID) error {
	claims, err := s.authorize(ctx, user.AnyRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	userID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	body, err := bind[servers.UpdateUserRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var role *user.Role
	if body.Role != nil {
		parsed, parseErr := user.ParseRole(string(*body.Role))
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		role = &parsed
	}

	changes := user.Profile{
		FirstName:      deref(body.FirstName),
		SecondName:     deref(body.SecondName),
		LastName:       deref(body.LastName),
		SecondLastName: deref(body.SecondLastName),
		DocumentNumber: deref(body.DocumentNumber),
		Email:          deref(body.Email),
		Address:        deref(body.Address),
		Phone:          deref(body.Phone),
	}
	cmd, err := commands.NewUpdateUserCommand(claims, userID, changes, role)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.UpdateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, userFromDomain(updated))
}

// ChangePassword handles PUT /users/me/password.
func (s *Server) ChangePassword(ctx echo.Context) error {
	claims, err := s.authorize(ctx, user.AnyRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	body, err := bind[servers.ChangePasswordRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewChangePasswordCommand(claims, body.CurrentPassword, body.NewPassword)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ChangePassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "Password changed"})
}

// DeleteUser handles DELETE /users/{id}.
func (s *Server) DeleteUser(ctx echo.Context, id servers.ID) error {
	claims, err := s.authorize(ctx, user.AdminOnly)
	if err != nil {
		return s.fail(ctx, err)
	}

	userID, err := kernel.ParseID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteUserCommand(claims, userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
