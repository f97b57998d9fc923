package service

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"beautybooking/internal/entities"
	"beautybooking/internal/errors"
	"beautybooking/internal/repository"
	"beautybooking/internal/utils"
)

const geminiModelName = "models/gemini-1.5-flash"

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel(geminiModelName)}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// AIService answers client questions about the salon and drafts reminder
// messages for upcoming appointments.
type AIService struct {
	Client       *GeminiClient
	Services     *repository.ServiceRepository
	Appointments *repository.AppointmentRepository
	Calendar     *repository.CalendarRepository
}

func NewAIService(client *GeminiClient, services *repository.ServiceRepository,
	appointments *repository.AppointmentRepository, calendar *repository.CalendarRepository) *AIService {
	return &AIService{
		Client:       client,
		Services:     services,
		Appointments: appointments,
		Calendar:     calendar,
	}
}

// maxHistoryMessages caps how much chat history is replayed into the prompt.
const maxHistoryMessages = 10

func (s *AIService) businessContext() (string, error) {
	services, err := s.Services.List(true)
	if err != nil {
		return "", err
	}
	windows, err := s.Calendar.ListWindows(true)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Services offered:\n")
	if len(services) == 0 {
		sb.WriteString("- (no services listed yet)\n")
	}
	for _, svc := range services {
		fmt.Fprintf(&sb, "- %s: $%.2f, %d minutes", svc.Name, svc.Price, svc.DurationMinutes)
		if svc.Description != "" {
			fmt.Fprintf(&sb, " (%s)", svc.Description)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nOpening hours:\n")
	if len(windows) == 0 {
		sb.WriteString("- (no opening hours configured)\n")
	}
	for _, w := range windows {
		resp := entities.AvailabilityResponseFrom(w)
		fmt.Fprintf(&sb, "- %s: %s to %s\n", resp.DayName, resp.StartTime, resp.EndTime)
	}
	return sb.String(), nil
}

// Chatbot answers a salon question grounded in the current catalog and hours.
func (s *AIService) Chatbot(ctx context.Context, req entities.ChatbotRequest) (*entities.ChatbotResponse, error) {
	if s.Client == nil {
		return nil, errors.Unavailable("AI assistant is not configured")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, errors.BadRequest("message is required")
	}

	businessInfo, err := s.businessContext()
	if err != nil {
		return nil, err
	}

	var prompt strings.Builder
	prompt.WriteString("You are the virtual receptionist of a beauty salon. " +
		"Answer briefly and warmly, using only the business information below. " +
		"If you do not know, suggest contacting the salon.\n\n")
	prompt.WriteString(businessInfo)

	history := req.ConversationHistory
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	if len(history) > 0 {
		prompt.WriteString("\nConversation so far:\n")
		for _, msg := range history {
			fmt.Fprintf(&prompt, "%s: %s\n", msg.Role, msg.Content)
		}
	}
	fmt.Fprintf(&prompt, "\nClient: %s\nReceptionist:", req.Message)

	answer, err := s.Client.GenerateContent(ctx, prompt.String())
	if err != nil {
		return nil, errors.Unavailable("AI assistant is temporarily unavailable")
	}
	return &entities.ChatbotResponse{Response: strings.TrimSpace(answer), Model: geminiModelName}, nil
}

// GenerateReminder drafts a personalized reminder for one appointment. Only
// the owner of the appointment or an admin may ask for it.
func (s *AIService) GenerateReminder(ctx context.Context, appointmentID, requesterID uuid.UUID, isAdmin bool) (*entities.ChatbotResponse, error) {
	if s.Client == nil {
		return nil, errors.Unavailable("AI assistant is not configured")
	}

	detail, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NotFound("appointment not found")
	}
	if !isAdmin && detail.Appointment.ClientID != requesterID {
		return nil, errors.Forbidden("you can only generate reminders for your own appointments")
	}

	prompt := fmt.Sprintf(
		"Write a short, friendly reminder message for a beauty salon client.\n"+
			"Client name: %s\nService: %s\nDate: %s\nTime: %s\nDuration: %d minutes\n"+
			"Keep it under 60 words and do not invent details.",
		detail.Client.Name, detail.Service.Name,
		utils.FormatDate(detail.Appointment.Date), detail.Appointment.StartTime.String(),
		detail.Service.DurationMinutes,
	)

	answer, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, errors.Unavailable("AI assistant is temporarily unavailable")
	}
	return &entities.ChatbotResponse{Response: strings.TrimSpace(answer), Model: geminiModelName}, nil
}

// ServiceSuggestions recommends services from the catalog for a free-text
// request ("something for dry hair").
func (s *AIService) ServiceSuggestions(ctx context.Context, query string) (*entities.ChatbotResponse, error) {
	if s.Client == nil {
		return nil, errors.Unavailable("AI assistant is not configured")
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.BadRequest("query is required")
	}

	businessInfo, err := s.businessContext()
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"A beauty salon client asks: %q\n\n%s\n"+
			"Recommend up to three services from the list above that fit the request, "+
			"with one sentence each on why. Only mention services from the list.",
		query, businessInfo,
	)

	answer, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, errors.Unavailable("AI assistant is temporarily unavailable")
	}
	return &entities.ChatbotResponse{Response: strings.TrimSpace(answer), Model: geminiModelName}, nil
}
