package dto

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Capacity    *int    `json:"capacity"`
}

type BookRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	// Seats defaults to 1 when omitted.
	Seats *int `json:"seats"`
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
