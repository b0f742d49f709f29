package domain

import "time"

// Review описывает отзыв на товар.
// Отзывы не редактируются и не удаляются после создания.
type Review struct {
	ID         string
	UserID     string
	UserName   string
	UserAvatar string
	Rating     int
	Comment    string
	Date       time.Time
}

func NewReview(id string, user *User, rating int, comment string, date time.Time) *Review {
	return &Review{
		ID:         id,
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Rating:     rating,
		Comment:    comment,
		Date:       date,
	}
}
