package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"wayfarer/internal/modules/trip"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client

	// chatModel answers conversational turns; itineraryModel produces the
	// structured day-by-day plan. Both run in JSON response mode.
	chatModel      *genai.GenerativeModel
	itineraryModel *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	chat := client.GenerativeModel("gemini-2.0-flash")
	chat.ResponseMIMEType = "application/json"
	chat.SetTemperature(0.8)

	itin := client.GenerativeModel("gemini-2.0-flash")
	itin.ResponseMIMEType = "application/json"
	itin.SetTemperature(0.7)

	return &GeminiProvider{
		client:         client,
		chatModel:      chat,
		itineraryModel: itin,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Chat sends the conversation history to Gemini and returns the assistant
// reply plus any destination the model recognised in the latest turn.
func (p *GeminiProvider) Chat(ctx context.Context, messages []Message, details trip.State) (*ChatResult, error) {
	prompt := buildChatPrompt(messages, details)

	text, err := p.generate(ctx, p.chatModel, prompt)
	if err != nil {
		return nil, err
	}

	var result ChatResult
	if err := json.Unmarshal([]byte(cleanJSONString(text)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse chat response: %w. Raw: %s", err, text)
	}
	if strings.TrimSpace(result.Reply) == "" {
		return nil, fmt.Errorf("empty reply from Gemini")
	}
	return &result, nil
}

// GenerateItinerary asks Gemini for a JSON-array itinerary. The caller is
// responsible for structural validation before using the result.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, req ItineraryRequest) ([]trip.ItineraryDay, error) {
	prompt := buildItineraryPrompt(req)

	text, err := p.generate(ctx, p.itineraryModel, prompt)
	if err != nil {
		return nil, err
	}

	var itinerary []trip.ItineraryDay
	if err := json.Unmarshal([]byte(cleanJSONString(text)), &itinerary); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary JSON: %w", err)
	}
	return itinerary, nil
}

func (p *GeminiProvider) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if isRateLimited(err) {
			return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("empty response text from Gemini")
	}
	return out.String(), nil
}

// isRateLimited reports whether err is a quota or rate-limit failure.
func isRateLimited(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code == 402
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "429")
}

// buildChatPrompt constructs the travel-companion instructions plus the
// conversation transcript and the details collected so far.
func buildChatPrompt(messages []Message, details trip.State) string {
	var collected strings.Builder
	if details.Destination != "" {
		fmt.Fprintf(&collected, "- Destination: %s\n", details.Destination)
	}
	if details.Days > 0 {
		fmt.Fprintf(&collected, "- Duration: %d days\n", details.Days)
	}
	if details.People > 0 {
		noun := "people"
		if details.People == 1 {
			noun = "person"
		}
		fmt.Fprintf(&collected, "- Travelers: %d %s\n", details.People, noun)
	}
	if details.Budget != "" {
		fmt.Fprintf(&collected, "- Budget: %s\n", details.Budget)
	}
	detailsContext := "None yet."
	if collected.Len() > 0 {
		detailsContext = collected.String() + "Keep track of what information we already have and don't ask for it again."
	}

	var transcript strings.Builder
	for _, m := range messages {
		fmt.Fprintf(&transcript, "%s: %s\n", m.Role, m.Content)
	}

	return fmt.Sprintf(`You are an enthusiastic and knowledgeable AI travel companion. Your role is to:
- Help users plan amazing trips by collecting essential information
- Ask follow-up questions naturally when details are missing
- Provide personalized travel recommendations and insights
- Be conversational, warm, and encouraging
- Keep responses concise (2-3 sentences) unless providing detailed information
- Use emojis occasionally to add personality 🌍✈️
- When users provide trip details, acknowledge them warmly

Essential trip details to collect (if not already provided):
1. Destination - Where they want to go
2. Duration - How many days
3. Number of travelers - How many people
4. Budget - Budget range (budget/mid-range/luxury or specific amount)

Current trip details collected:
%s

Be natural in your conversation. Don't list all questions at once - ask one at a time based on what's missing.

Conversation so far:
%s
Respond with ONLY a JSON object in this exact shape, no markdown:
{"reply": "your message to the user", "destination": "place name recognised in the latest user message, or empty string"}`,
		detailsContext, transcript.String())
}

func buildItineraryPrompt(req ItineraryRequest) string {
	noun := "people"
	if req.People == 1 {
		noun = "person"
	}
	return fmt.Sprintf(`Create a highly detailed %d-day travel itinerary for %s for %d %s with a %s budget.

For EACH day, provide 4-6 activities covering morning, afternoon, and evening, with:
- Specific time (e.g., 9:00 AM, 2:30 PM)
- Activity title (be specific, use actual place names)
- Exact location name (restaurant name, landmark name, neighborhood)
- Detailed description (2-3 sentences about what to do/see/experience)
- Estimated cost (if applicable)

Make the itinerary REALISTIC (actual places that exist in %s), TIME-OPTIMIZED,
BUDGET-APPROPRIATE for the %s spending level, and DIVERSE.

Respond with ONLY a JSON array, no markdown, in this exact structure:
[
  {
    "day": 1,
    "activities": [
      {
        "time": "9:00 AM",
        "title": "Breakfast at [Specific Restaurant Name]",
        "location": "[Exact Location Name and Neighborhood]",
        "description": "[Detailed 2-3 sentence description]",
        "cost": "$15-25 per person"
      }
    ]
  }
]
Day numbers must run 1 through %d with no gaps.`,
		req.Days, req.Destination, req.People, noun, req.Budget, req.Destination, req.Budget, req.Days)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
