package domain

// User описывает идентичность текущей сессии.
// Постоянного хранилища аккаунтов нет: идентичность создается при входе
// из пары имя+email и уничтожается при выходе.
type User struct {
	ID      string
	Email   string
	Name    string
	Avatar  string
	IsAdmin bool
}

func NewUser(id, name, email, avatar string, isAdmin bool) *User {
	return &User{
		ID:      id,
		Name:    name,
		Email:   email,
		Avatar:  avatar,
		IsAdmin: isAdmin,
	}
}
