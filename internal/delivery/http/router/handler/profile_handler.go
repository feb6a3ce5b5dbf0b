package handler

import (
	"log/slog"
	"net/http"

	"campusmarket/internal/delivery/http/response"
	"campusmarket/internal/domain/entity"
	"campusmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ProfileView is the wire shape of a user profile
type ProfileView struct {
	UserID             string `json:"user_id"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	HostelOrOfficeName string `json:"hostel_or_office_name,omitempty"`
	RoomOrOfficeNumber string `json:"room_or_office_number,omitempty"`
	Role               string `json:"role"`
	ShopID             *int64 `json:"shop_id,omitempty"`
}

func toProfileView(profile *entity.UserProfile) *ProfileView {
	return &ProfileView{
		UserID:             profile.UserID.String(),
		PhoneNumber:        profile.PhoneNumber,
		HostelOrOfficeName: profile.HostelOrOfficeName,
		RoomOrOfficeNumber: profile.RoomOrOfficeNumber,
		Role:               profile.Role.String(),
		ShopID:             profile.ShopID,
	}
}

// GetProfile handles retrieving the caller's own profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), actor.UserID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile), "Profile retrieved successfully")
}

// UpdateProfile handles editing the caller's own profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), actor, &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile), "Profile updated successfully")
}
