package controller

import (
	"net/http"

	"github.com/azor-ahai1/SwapSpace/internal/dto"
	"github.com/azor-ahai1/SwapSpace/internal/middleware"
	"github.com/azor-ahai1/SwapSpace/internal/service"
	"github.com/azor-ahai1/SwapSpace/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService    service.UserService
	messageService service.MessageService
}

func CreateUserController(e *echo.Group, userService service.UserService, messageService service.MessageService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		userService:    userService,
		messageService: messageService,
	}
	e.POST("/users/register", c.Register)
	e.POST("/users/login", c.Login)
	e.POST("/users/logout", c.Logout, isLoggedIn)
	e.POST("/users/refresh-token", c.RefreshToken)
	e.GET("/users/current-user", c.CurrentUser, isLoggedIn)
	e.PATCH("/users/update-profile", c.UpdateProfile, isLoggedIn)
	e.POST("/users/change-password", c.ChangePassword, isLoggedIn)
	e.GET("/users/profile/:userId", c.Profile, isLoggedIn)
	e.GET("/users/user-order-history", c.OrderHistory, isLoggedIn)
	e.GET("/users/user-product-history", c.ProductHistory, isLoggedIn)
	e.GET("/users/dashboard", c.Dashboard, isLoggedIn)
	e.POST("/users/send-otp", c.SendOTP)
	e.POST("/users/verify-otp", c.VerifyOTP)
	e.POST("/users/send-message", c.SendMessage, isLoggedIn)
	e.POST("/users/get-all-previous-messages", c.MessageHistory, isLoggedIn)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	resp, err := c.userService.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteCreatedResponse(e, "User Registered Successfully", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.userService.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	setAuthCookies(e, resp.AccessToken, resp.RefreshToken)

	return response.WriteSuccessResponse(e, "User logged in successfully", resp)
}

func (c *UserController) Logout(e echo.Context) error {
	err := c.userService.Logout(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	clearAuthCookies(e)

	return response.WriteSuccessResponse(e, "User logged out successfully", nil)
}

func (c *UserController) RefreshToken(e echo.Context) error {
	refreshToken := ""
	if cookie, err := e.Cookie(middleware.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		payload := struct {
			RefreshToken string `json:"refreshToken"`
		}{}
		if err := e.Bind(&payload); err != nil {
			log.Error().Err(err).Str("component", "RefreshToken").Msg("")
		}
		refreshToken = payload.RefreshToken
	}

	resp, err := c.userService.RefreshToken(e.Request().Context(), refreshToken)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	setAuthCookies(e, resp.AccessToken, resp.RefreshToken)

	return response.WriteSuccessResponse(e, "Refresh token generated successfully", resp)
}

func (c *UserController) CurrentUser(e echo.Context) error {
	resp, err := c.userService.GetCurrentUser(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Current User retrieved successfully", resp)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	payload := dto.UpdateProfileRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProfile").Msg("")
	}

	profileImage, err := formFileReader(e, "profileImage")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	resp, err := c.userService.UpdateProfile(e.Request().Context(), middleware.UserID(e), payload, profileImage)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Account details updated successfully", resp)
}

func (c *UserController) ChangePassword(e echo.Context) error {
	payload := dto.ChangePasswordRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "ChangePassword").Msg("")
	}

	err = c.userService.ChangePassword(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Password changed successfully", nil)
}

func (c *UserController) Profile(e echo.Context) error {
	resp, err := c.userService.GetProfile(e.Request().Context(), e.Param("userId"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "User profile retrieved successfully", resp)
}

func (c *UserController) OrderHistory(e echo.Context) error {
	resp, err := c.userService.GetOrderHistory(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "User order history retrieved successfully", resp)
}

func (c *UserController) ProductHistory(e echo.Context) error {
	resp, err := c.userService.GetProductHistory(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "User products history retrieved successfully", resp)
}

func (c *UserController) Dashboard(e echo.Context) error {
	resp, err := c.userService.GetDashboard(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "User dashboard data retrieved successfully", resp)
}

func (c *UserController) SendOTP(e echo.Context) error {
	payload := dto.SendOTPRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SendOTP").Msg("")
	}

	err = c.userService.SendOTP(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "OTP sent successfully", nil)
}

func (c *UserController) VerifyOTP(e echo.Context) error {
	payload := dto.VerifyOTPRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "VerifyOTP").Msg("")
	}

	err = c.userService.VerifyOTP(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "OTP verified successfully", nil)
}

func (c *UserController) SendMessage(e echo.Context) error {
	payload := dto.SendMessageRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SendMessage").Msg("")
	}

	message, err := c.messageService.SendMessage(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteCreatedResponse(e, "Message Sent Successfully", message)
}

func (c *UserController) MessageHistory(e echo.Context) error {
	payload := dto.ConversationRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "MessageHistory").Msg("")
	}

	messages, err := c.messageService.GetConversation(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Message history retrieved successfully", messages)
}

func setAuthCookies(e echo.Context, accessToken string, refreshToken string) {
	e.SetCookie(sessionCookie(middleware.AccessTokenCookie, accessToken, 0))
	e.SetCookie(sessionCookie(middleware.RefreshTokenCookie, refreshToken, 0))
}

func clearAuthCookies(e echo.Context) {
	e.SetCookie(sessionCookie(middleware.AccessTokenCookie, "", -1))
	e.SetCookie(sessionCookie(middleware.RefreshTokenCookie, "", -1))
}

func sessionCookie(name string, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
