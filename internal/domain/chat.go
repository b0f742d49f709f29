package domain

// ChatRole — автор сообщения в переписке с ассистентом
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage — одно сообщение переписки
type ChatMessage struct {
	Role ChatRole
	Text string
}
