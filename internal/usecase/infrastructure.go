package usecase

import "context"

// AssistantInfra — внешний сервис генерации текста для чат-ассистента.
type AssistantInfra interface {
	GenerateReply(ctx context.Context, req *AssistantReq) (string, error)
}
