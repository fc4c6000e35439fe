package dto

type SendMessageRequest struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
}

type ConversationRequest struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}
