package http

import (
	"net/http"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/logger"
)

type ChatHandler struct {
	chatUC usecase.ChatUC
	logger logger.Logger
}

func NewChatHandler(chatUC usecase.ChatUC, logger logger.Logger) *ChatHandler {
	return &ChatHandler{chatUC: chatUC, logger: logger}
}

// greeting
//
//	@Summary	Приветствие ассистента для новой переписки
//	@Tags		chat
//	@Produce	json
//	@Success	200	{object}	chatResponse
//	@Router		/chat/greeting [get]
func (h *ChatHandler) greeting(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, chatResponse{Reply: usecase.ChatGreeting})
}

// reply
//
//	@Summary		Ответ ассистента
//	@Description	Последнее сообщение переписки должно принадлежать покупателю
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			chat	body		chatRequest	true	"Переписка"
//	@Success		200		{object}	chatResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/chat [post]
func (h *ChatHandler) reply(w http.ResponseWriter, r *http.Request) {
	var body chatRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	history := make([]domain.ChatMessage, len(body.Messages))
	for i, m := range body.Messages {
		history[i] = domain.ChatMessage{Role: domain.ChatRole(m.Role), Text: m.Text}
	}

	reply, err := h.chatUC.Reply(r.Context(), &usecase.ChatReq{
		ConversationID: body.ConversationID,
		History:        history,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, chatResponse{Reply: reply})
}

type chatRequest struct {
	ConversationID string        `json:"conversationId"`
	Messages       []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}
