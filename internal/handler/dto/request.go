package dto

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Location       string `json:"location"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateToolRequest struct {
	OwnerID       string  `json:"owner_id" binding:"required,uuid"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	DailyPrice    float64 `json:"daily_price" binding:"required,gt=0"`
	Location      string  `json:"location" binding:"required"`
	AvailableFrom string  `json:"available_from"`
	AvailableTo   string  `json:"available_to"`
}

type BookRequest struct {
	BorrowerID string `json:"borrower_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

type CancelRequest struct {
	BorrowerID string `json:"borrower_id" binding:"required,uuid"`
}

type DeleteToolRequest struct {
	OwnerID string `json:"owner_id" binding:"required,uuid"`
}

type AddReviewRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required,uuid"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}
