package domain

// ShopSettings — контактные каналы магазина и переопределение пароля администратора.
// Изменяется только через форму настроек админ-панели.
type ShopSettings struct {
	Whatsapp      string
	Telegram      string
	Instagram     string
	Facebook      string
	Email         string
	Location      string
	AdminPassword string // Пустая строка — используется пароль из конфигурации
}
