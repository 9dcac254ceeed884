package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DilipRaja06/match-spot/models"

	"github.com/stretchr/testify/assert"
)

func newTestGemini(baseURL, apiKey string) *GeminiService {
	return NewGeminiService(baseURL, apiKey, "gemini-2.5-flash", time.Second, NewSeededRandomSource(1))
}

// geminiStub serves canned generateContent payloads.
func geminiStub(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": text}}}},
			},
		})
	}))
}

func TestGetInteractionParsesServiceResponse(t *testing.T) {
	payload := `{"type":"game","content":"Two truths and a lie, go.","bold_move":"Hold up three fingers from across the room."}`
	ts := geminiStub(t, http.StatusOK, payload)
	defer ts.Close()

	gs := newTestGemini(ts.URL, "test-key")
	interaction := gs.GetInteraction(context.Background())

	assert.Equal(t, models.InteractionTypeGame, interaction.Type)
	assert.Equal(t, "Two truths and a lie, go.", interaction.Content)
	assert.Equal(t, "Hold up three fingers from across the room.", interaction.BoldMove)
}

func TestGetInteractionFallsBackWithoutAPIKey(t *testing.T) {
	gs := newTestGemini("http://localhost:1", "")
	interaction := gs.GetInteraction(context.Background())

	assert.Equal(t, models.InteractionTypeQuestion, interaction.Type)
	assert.Contains(t, FallbackQuestions(), interaction.Content)
	assert.Contains(t, FallbackBoldMoves(), interaction.BoldMove)
}

func TestGetInteractionFallsBackOnQuotaError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	gs := newTestGemini(ts.URL, "test-key")
	interaction := gs.GetInteraction(context.Background())

	assert.Equal(t, models.InteractionTypeQuestion, interaction.Type)
	assert.Contains(t, FallbackQuestions(), interaction.Content)
}

func TestGetInteractionFallsBackOnMalformedJSON(t *testing.T) {
	ts := geminiStub(t, http.StatusOK, "sorry, no JSON today")
	defer ts.Close()

	gs := newTestGemini(ts.URL, "test-key")
	interaction := gs.GetInteraction(context.Background())

	assert.Equal(t, models.InteractionTypeQuestion, interaction.Type)
	assert.Contains(t, FallbackQuestions(), interaction.Content)
	assert.Contains(t, FallbackBoldMoves(), interaction.BoldMove)
}

func TestGetInteractionFallsBackOnMissingFields(t *testing.T) {
	ts := geminiStub(t, http.StatusOK, `{"type":"question","content":"Where's the bold move?"}`)
	defer ts.Close()

	gs := newTestGemini(ts.URL, "test-key")
	interaction := gs.GetInteraction(context.Background())

	assert.Contains(t, FallbackQuestions(), interaction.Content)
}

func TestGetInteractionAlwaysNonEmpty(t *testing.T) {
	gs := newTestGemini("http://localhost:1", "")
	for i := 0; i < 25; i++ {
		interaction := gs.GetInteraction(context.Background())
		assert.NotEmpty(t, interaction.Content)
		assert.NotEmpty(t, interaction.BoldMove)
	}
}

func TestGetChatReplyUsesServiceText(t *testing.T) {
	ts := geminiStub(t, http.StatusOK, "Only if you bring snacks.")
	defer ts.Close()

	gs := newTestGemini(ts.URL, "test-key")
	user := models.User{Name: "Diana", Age: 27, Bio: "Veterinarian.", Tags: []string{"Dog Lover"}}
	reply := gs.GetChatReply(context.Background(), user, "Want to split an appetizer?")

	assert.Equal(t, "Only if you bring snacks.", reply)
}

func TestGetChatReplyFallsBackOnFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	gs := newTestGemini(ts.URL, "test-key")
	reply := gs.GetChatReply(context.Background(), models.User{Name: "Ethan"}, "hey")

	assert.Contains(t, FallbackChatReplies(), reply)
	assert.NotEmpty(t, reply)
}

func TestGetChatReplyFallsBackWithoutAPIKey(t *testing.T) {
	gs := newTestGemini("http://localhost:1", "")
	reply := gs.GetChatReply(context.Background(), models.User{Name: "Ethan"}, "hey")
	assert.Contains(t, FallbackChatReplies(), reply)
}
