package http

import (
	"net/http"

	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
)

type SessionHandler struct {
	sessionUC usecase.SessionUC
	shop      *cfg.ShopCfg
	logger    logger.Logger
}

func NewSessionHandler(sessionUC usecase.SessionUC, shop *cfg.ShopCfg, logger logger.Logger) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC, shop: shop, logger: logger}
}

// login
//
//	@Summary		Вход
//	@Description	Любая пара имя+email создает идентичность; email администратора требует пароль
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		loginRequest	true	"Учетные данные"
//	@Success		200			{object}	loginResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *SessionHandler) login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.sessionUC.Login(r.Context(), usecase.NewLoginReq(body.Name, body.Email, body.Password))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, loginResponse{
		Token: res.Token,
		User:  toUserResponse(&res.User),
	})
}

// logout
//
//	@Summary	Выход
//	@Tags		auth
//	@Success	204
//	@Router		/auth/logout [post]
func (h *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessionUC.Logout(r.Context(), r.Header.Get(h.shop.SessionTokenName))
	w.WriteHeader(http.StatusNoContent)
}

// me
//
//	@Summary	Идентичность текущей сессии
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	userResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/me [get]
func (h *SessionHandler) me(w http.ResponseWriter, r *http.Request) {
	user := sessionUser(r)
	if user == nil {
		WriteError(w, e.ErrSessionNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserResponse(user))
}

type loginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
