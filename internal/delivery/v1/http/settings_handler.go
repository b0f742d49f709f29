package http

import (
	"net/http"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/logger"
)

type SettingsHandler struct {
	settingsUC usecase.SettingsUC
	logger     logger.Logger
}

func NewSettingsHandler(settingsUC usecase.SettingsUC, logger logger.Logger) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC, logger: logger}
}

// getSettings
//
//	@Summary	Контактные каналы магазина
//	@Tags		settings
//	@Produce	json
//	@Success	200	{object}	settingsResponse
//	@Router		/settings [get]
func (h *SettingsHandler) getSettings(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toSettingsResponse(h.settingsUC.Settings(r.Context())))
}

// updateSettings
//
//	@Summary		Обновление настроек (администратор)
//	@Description	Пароль администратора меняется, только если передан newPassword
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			settings	body		updateSettingsRequest	true	"Настройки"
//	@Success		200			{object}	settingsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/settings [put]
func (h *SettingsHandler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var body updateSettingsRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	req := &usecase.UpdateSettingsReq{
		Settings: domain.ShopSettings{
			Whatsapp:  body.Whatsapp,
			Telegram:  body.Telegram,
			Instagram: body.Instagram,
			Facebook:  body.Facebook,
			Email:     body.Email,
			Location:  body.Location,
		},
		NewPassword: body.NewPassword,
	}

	if err := h.settingsUC.Update(r.Context(), req); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSettingsResponse(h.settingsUC.Settings(r.Context())))
}

type updateSettingsRequest struct {
	Whatsapp    string `json:"whatsapp"`
	Telegram    string `json:"telegram"`
	Instagram   string `json:"instagram"`
	Facebook    string `json:"facebook"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	NewPassword string `json:"newPassword,omitempty"`
}
