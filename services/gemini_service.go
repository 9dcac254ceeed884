package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/DilipRaja06/match-spot/models"

	"github.com/go-resty/resty/v2"
)

// InteractionProvider produces icebreakers and chat replies. Implementations
// never fail: on any backend problem they return pre-authored fallback
// content, so callers get no error to handle.
type InteractionProvider interface {
	GetInteraction(ctx context.Context) models.Interaction
	GetChatReply(ctx context.Context, user models.User, lastMessage string) string
}

var fallbackBoldMoves = []string{
	"Walk over and show them this screen without saying a word.",
	"Raise your glass to them from across the room, then walk over.",
	"Go ask them if they want to use the 2-for-1 coupon with you.",
	"Send a wave and wait for them to wave back before approaching.",
	"Walk past them, pause, and ask 'Do I know you from the app?'",
	"Challenge them to Rock, Paper, Scissors from across the room.",
	"Point at their drink and give a thumbs up, then approach.",
	"Walk over and say 'The app told me to talk to you, so here I am.'",
	"Make eye contact, count to three, then smile and walk over.",
	"Send a drink their way (physically or metaphorically) and see if they smile.",
	"Go stand next to them and say 'I think we're supposed to be friends.'",
}

var fallbackQuestions = []string{
	"If you were a cocktail, what would you be and why?",
	"What is the worst pickup line you have heard tonight?",
	"Rate the DJ on a scale of 1 to 10.",
	"What is your go-to karaoke song?",
	"Truth or Dare: Show me the last photo you took.",
	"If you could be anywhere else right now, where would it be?",
	"Tequila or Whiskey? Choose wisely.",
	"Who is your celebrity crush?",
	"What is your biggest red flag?",
	"Do you believe in love at first swipe?",
}

var fallbackChatReplies = []string{
	"Haha that's wild!",
	"Totally agree.",
	"I'm heading to the bar, want anything?",
	"The music is so loud I can barely hear you lol",
	"Come find me on the dance floor!",
	"😉",
	"For sure!",
	"No way, really?",
	"That's hilarious.",
	"Tell me more about that.",
	"I was just thinking the same thing!",
}

var boldMoveStyles = []string{
	"Non-verbal confidence (e.g., eye contact, specific gestures, winking)",
	"Playful prop usage (e.g., show phone screen, toast with drink, use a napkin)",
	"Direct physical approach (e.g., walk over immediately with a specific opening line)",
	"Silly/Ice-breaking (e.g., funny face, mime something, hand game from afar)",
	"Mystery/Intrigue (e.g., pretend to recognize them, write a note)",
	"Complimentary (e.g., point to their outfit/shoes/drink and thumbs up)",
	"Group engagement (e.g., get your friend to high five them)",
}

// GeminiService calls the Gemini generateContent API for icebreakers and
// persona chat replies, degrading to the fallback pools on any failure.
type GeminiService struct {
	Client *resty.Client
	APIKey string
	Model  string
	Random *RandomSource
}

// NewGeminiService builds a service against the given base URL. An empty API
// key is a normal, handled condition: every call short-circuits to fallback.
func NewGeminiService(baseURL, apiKey, model string, timeout time.Duration, random *RandomSource) *GeminiService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &GeminiService{Client: client, APIKey: apiKey, Model: model, Random: random}
}

// Request/response shapes for the generateContent REST endpoint.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GetInteraction requests a fresh icebreaker. Exactly one attempt is made;
// any failure (missing key, transport, non-200, malformed or incomplete JSON)
// yields a fallback interaction instead of an error.
func (gs *GeminiService) GetInteraction(ctx context.Context) models.Interaction {
	interaction, err := gs.requestInteraction(ctx)
	if err != nil {
		// Log as a warning only; 429s are expected under quota pressure.
		log.Printf("⚠️ Using fallback interaction: %v", err)
		return gs.fallbackInteraction()
	}
	return interaction
}

func (gs *GeminiService) requestInteraction(ctx context.Context) (models.Interaction, error) {
	if gs.APIKey == "" {
		return models.Interaction{}, fmt.Errorf("no API key configured")
	}

	style := boldMoveStyles[gs.Random.Intn(len(boldMoveStyles))]
	prompt := fmt.Sprintf(`Generate a fun interaction for two people who just matched at a nightclub.

Return a JSON object with three fields:
1. "type": one of "question", "game", "challenge".
2. "content": a short string (under 20 words) for the interaction.
3. "bold_move": A specific, physical, low-pressure action designed to help an introvert approach their match confidently. It should be a direct instruction.

IMPORTANT: The "bold_move" MUST follow this specific style: "%s".
Ensure the move is unique, creative, and actionable.
`, style)

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"type":      map[string]interface{}{"type": "STRING", "enum": []string{"question", "game", "challenge", "prompt"}},
					"content":   map[string]interface{}{"type": "STRING"},
					"bold_move": map[string]interface{}{"type": "STRING"},
				},
				"required": []string{"type", "content", "bold_move"},
			},
		},
	}

	text, err := gs.generateContent(ctx, body)
	if err != nil {
		return models.Interaction{}, err
	}

	var interaction models.Interaction
	if err := json.Unmarshal([]byte(text), &interaction); err != nil {
		return models.Interaction{}, fmt.Errorf("malformed interaction JSON: %w", err)
	}
	if !interaction.IsComplete() {
		return models.Interaction{}, fmt.Errorf("incomplete interaction response")
	}
	return interaction, nil
}

// GetChatReply requests a short in-persona reply to the last message. One
// attempt; any failure yields a random fallback reply.
func (gs *GeminiService) GetChatReply(ctx context.Context, user models.User, lastMessage string) string {
	reply, err := gs.requestChatReply(ctx, user, lastMessage)
	if err != nil {
		log.Printf("⚠️ Using fallback chat reply: %v", err)
		return fallbackChatReplies[gs.Random.Intn(len(fallbackChatReplies))]
	}
	return reply
}

func (gs *GeminiService) requestChatReply(ctx context.Context, user models.User, lastMessage string) (string, error) {
	if gs.APIKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	prompt := fmt.Sprintf(`You are roleplaying as %s, a %d-year-old at a club.
Your Bio: "%s"
Your Vibe/Tags: %s.

The user just sent you this message: "%s"

Reply to them.
Rules:
- Keep it short (under 15 words).
- Be casual, slightly flirty or friendly depending on the bio.
- Respond directly to their text.
- Do not include hashtags or emojis unless appropriate for the persona.
`, user.Name, user.Age, user.Bio, strings.Join(user.Tags, ", "), lastMessage)

	body := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}

	text, err := gs.generateContent(ctx, body)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("empty reply text")
	}
	return text, nil
}

// generateContent performs the single HTTP attempt and extracts the first
// candidate's text.
func (gs *GeminiService) generateContent(ctx context.Context, body geminiRequest) (string, error) {
	var parsed geminiResponse
	resp, err := gs.Client.R().
		SetContext(ctx).
		SetQueryParam("key", gs.APIKey).
		SetBody(body).
		SetResult(&parsed).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", gs.Model))
	if err != nil {
		return "", fmt.Errorf("generateContent request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("generateContent returned status %d", resp.StatusCode())
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

func (gs *GeminiService) fallbackInteraction() models.Interaction {
	return models.Interaction{
		Type:     models.InteractionTypeQuestion,
		Content:  fallbackQuestions[gs.Random.Intn(len(fallbackQuestions))],
		BoldMove: fallbackBoldMoves[gs.Random.Intn(len(fallbackBoldMoves))],
	}
}

// FallbackQuestions exposes the question pool for membership checks.
func FallbackQuestions() []string { return fallbackQuestions }

// FallbackBoldMoves exposes the bold-move pool for membership checks.
func FallbackBoldMoves() []string { return fallbackBoldMoves }

// FallbackChatReplies exposes the reply pool for membership checks.
func FallbackChatReplies() []string { return fallbackChatReplies }
