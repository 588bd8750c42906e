package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Location       string    `json:"location"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name           string
	Email          string
	Location       string
	TelegramChatID *int64
}
