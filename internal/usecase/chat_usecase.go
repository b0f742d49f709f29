package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"golang.org/x/sync/singleflight"
)

const (
	// ChatGreeting — первое сообщение ассистента в новой переписке.
	ChatGreeting = "Welcome to Ak Shop! How can I assist your premium shopping experience today?"

	// chatApology возвращается вместо ошибки при недоступности внешнего сервиса.
	chatApology = "I'm having a little trouble connecting to my brain right now. Please try again later!"

	// chatEmptyReply подставляется, когда сервис вернул пустой текст.
	chatEmptyReply = "I'm sorry, I couldn't process that. How can I help you today?"
)

// ChatUseCase отвечает на сообщения покупателя через внешний сервис
// генерации текста. Системная инструкция включает сводку каталога.
type ChatUseCase struct {
	catalogRepo CatalogRepository
	assistant   AssistantInfra
	shop        *cfg.ShopCfg
	logger      logger.Logger
	sfg         singleflight.Group // один запрос в полете на переписку
}

func NewChatUC(catalogRepo CatalogRepository, assistant AssistantInfra, shop *cfg.ShopCfg, logger logger.Logger) *ChatUseCase {
	return &ChatUseCase{
		catalogRepo: catalogRepo,
		assistant:   assistant,
		shop:        shop,
		logger:      logger,
	}
}

// Reply возвращает ответ ассистента на последнее сообщение переписки.
// Сбой внешнего сервиса деградирует до фиксированного извинения и никогда
// не возвращается вызывающему как ошибка.
func (c *ChatUseCase) Reply(ctx context.Context, req *ChatReq) (string, error) {
	const op = "ChatUseCase.Reply"

	if len(req.History) == 0 {
		return "", e.Wrap(op, e.ErrEmptyMessage)
	}
	last := req.History[len(req.History)-1]
	if last.Role != domain.ChatRoleUser || strings.TrimSpace(last.Text) == "" {
		return "", e.Wrap(op, e.ErrEmptyMessage)
	}

	key := req.ConversationID
	if key == "" {
		key = "default"
	}

	v, err, _ := c.sfg.Do(key, func() (any, error) {
		reply, err := c.assistant.GenerateReply(ctx, NewAssistantReq(c.systemInstruction(), last.Text))
		if err != nil {
			c.logger.Warnf("assistant request failed: %v", e.Wrap(op, err))
			return chatApology, nil
		}
		if strings.TrimSpace(reply) == "" {
			return chatEmptyReply, nil
		}
		return reply, nil
	})
	if err != nil {
		// Сюда попасть нельзя: замыкание не возвращает ошибок
		return chatApology, nil
	}

	return v.(string), nil
}

// systemInstruction собирает инструкцию ассистента со сводкой каталога:
// по строке "имя: цена (категория)" на товар.
func (c *ChatUseCase) systemInstruction() string {
	products := c.catalogRepo.Products()

	var ctxLines strings.Builder
	for i := range products {
		fmt.Fprintf(&ctxLines, "- %s: %s%s (%s)\n",
			products[i].Name,
			c.shop.CurrencySymbol,
			products[i].EffectivePrice().String(),
			products[i].Category,
		)
	}

	return fmt.Sprintf(`You are "Ak Assistant", a friendly AI shopping assistant for "Ak Shop".
Our available products are:
%s
Guidelines:
- Be helpful, polite, and enthusiastic.
- Recommend products based on user needs.
- If asked about shipping, say "We offer free worldwide shipping on orders over %s5000."
- Keep responses concise but informative.
- Use Markdown for formatting. Use currency symbol %s for prices.`,
		ctxLines.String(), c.shop.CurrencySymbol, c.shop.CurrencySymbol)
}
