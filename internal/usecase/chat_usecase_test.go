package usecase_test

import (
	"context"
	"testing"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatUC(t *testing.T, assistant *fakeAssistant) *usecase.ChatUseCase {
	t.Helper()
	return usecase.NewChatUC(newSeededStore(), assistant, testShopCfg(), nopLogger{})
}

func userMsg(text string) domain.ChatMessage {
	return domain.ChatMessage{Role: domain.ChatRoleUser, Text: text}
}

func TestChatRejectsEmptyHistory(t *testing.T) {
	uc := newChatUC(t, &fakeAssistant{reply: "hi"})

	_, err := uc.Reply(context.Background(), &usecase.ChatReq{})
	assert.ErrorIs(t, err, e.ErrEmptyMessage)
}

func TestChatRejectsWhenLastMessageNotFromUser(t *testing.T) {
	uc := newChatUC(t, &fakeAssistant{reply: "hi"})

	_, err := uc.Reply(context.Background(), &usecase.ChatReq{
		History: []domain.ChatMessage{
			userMsg("hello"),
			{Role: domain.ChatRoleModel, Text: "hello back"},
		},
	})
	assert.ErrorIs(t, err, e.ErrEmptyMessage)

	_, err = uc.Reply(context.Background(), &usecase.ChatReq{
		History: []domain.ChatMessage{userMsg("   ")},
	})
	assert.ErrorIs(t, err, e.ErrEmptyMessage)
}

func TestChatReturnsAssistantReply(t *testing.T) {
	assistant := &fakeAssistant{reply: "Try the Pro Headphones 700!"}
	uc := newChatUC(t, assistant)

	reply, err := uc.Reply(context.Background(), &usecase.ChatReq{
		ConversationID: "conv1",
		History:        []domain.ChatMessage{userMsg("what headphones do you have?")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Try the Pro Headphones 700!", reply)

	// Системная инструкция содержит сводку каталога
	require.NotNil(t, assistant.lastReq)
	assert.Contains(t, assistant.lastReq.SystemInstruction, "Pro Headphones 700")
	assert.Contains(t, assistant.lastReq.SystemInstruction, "Accessories")
	assert.Equal(t, "what headphones do you have?", assistant.lastReq.Message)
}

func TestChatDegradesToApologyOnFailure(t *testing.T) {
	uc := newChatUC(t, &fakeAssistant{err: context.DeadlineExceeded})

	reply, err := uc.Reply(context.Background(), &usecase.ChatReq{
		History: []domain.ChatMessage{userMsg("hello")},
	})
	require.NoError(t, err)
	assert.Contains(t, reply, "trouble connecting")
}

func TestChatSubstitutesEmptyReply(t *testing.T) {
	uc := newChatUC(t, &fakeAssistant{reply: "   "})

	reply, err := uc.Reply(context.Background(), &usecase.ChatReq{
		History: []domain.ChatMessage{userMsg("hello")},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
	assert.NotEqual(t, "   ", reply)
}
