package service

import "context"

const (
	staticWelcomeMessage = "Hello, I'm here for you. This is a safe space to share whatever is on your mind. How are you feeling today?"

	staticAssistantMessage = "Thank you for sharing that with me. I'm here to listen and support you. " +
		"How are you feeling right now? Take your time, there's no rush."
)

type messageService struct {
	welcome   string
	assistant string
}

func NewMessageService() MessageService {
	return &messageService{welcome: staticWelcomeMessage, assistant: staticAssistantMessage}
}

func (m *messageService) StaticMessage(ctx context.Context) string { return m.welcome }

func (m *messageService) StaticAssistantMessage(ctx context.Context) string { return m.assistant }
