package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Login handles POST /auth/login.
func (s *Server) Login(ctx echo.Context) error {
	body, err := bind[servers.LoginRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password, deref(body.TemporarySessionId))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, loginResponse(result))
}

// SendCode handles POST /auth/send-code. The code itself only travels out of band.
func (s *Server) SendCode(ctx echo.Context) error {
	body, err := bind[servers.SendCodeRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRequestCodeCommand(body.Email)
	if err != nil {
		return s.fail(ctx, err)
	}

	expiresAt, err := s.h.RequestCode.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.SendCodeResponse{
		Message:   "Verification code sent",
		ExpiresAt: expiresAt,
	})
}

// VerifyCode handles POST /auth/verify-code.
func (s *Server) VerifyCode(ctx echo.Context) error {
	body, err := bind[servers.VerifyCodeRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewVerifyCodeCommand(body.Email, body.Code)
	if err != nil {
		return s.fail(ctx, err)
	}

	temp, err := s.h.VerifyCode.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.VerifyCodeResponse{
		TemporarySessionId: temp.ID,
		ExpiresAt:          temp.ExpiresAt,
	})
}

// VerifyEmail handles GET /auth/verify-email/{token}.
func (s *Server) VerifyEmail(ctx echo.Context, token string) error {
	cmd, err := commands.NewConfirmEmailCommand(token)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.ConfirmEmail.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, loginResponse(result))
}

// ResendVerification handles POST /auth/resend-verification.
func (s *Server) ResendVerification(ctx echo.Context) error {
	body, err := bind[servers.SendCodeRequest](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewResendVerificationCommand(body.Email)
	if err != nil {
		return s.fail(ctx, err)
	}

	sent, err := s.h.ResendVerification.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	message := "Verification email sent"
	if !sent {
		message = "Verification token re-issued but the email could not be sent"
	}
	return ctx.JSON(http.StatusOK, servers.ResendVerificationResponse{
		Message:               message,
		VerificationEmailSent: sent,
	})
}

// Logout handles POST /auth/logout.
func (s *Server) Logout(ctx echo.Context) error {
	claims, err := s.authorize(ctx, user.AnyRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewLogoutCommand(claims)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.Logout.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "Logged out"})
}

func loginResponse(result commands.LoginResult) servers.LoginResponse {
	return servers.LoginResponse{
		Token:     result.Token.Value,
		ExpiresAt: result.Token.Claims.ExpiresAt,
		Temporary: result.Token.Claims.Temporary,
		User:      userFromDomain(result.User),
	}
}
