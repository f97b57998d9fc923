package entities

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatbotRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}

type ChatbotResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}
