package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qawamdev/qawam/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-flash-preview"
	requestTimeout = 15 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the API key is missing, expired or invalid.
	ErrUnauthorized = errors.New("advisor: unauthorized (API key invalid)")
	// ErrRateLimited indicates the model quota was exhausted.
	ErrRateLimited = errors.New("advisor: rate limited")
	// ErrBadReply indicates the model answered with something the client
	// could not turn into a recommendation.
	ErrBadReply = errors.New("advisor: unusable model reply")
)

// Client talks to a generateContent-style LLM endpoint.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	lang    model.Language
	http    *http.Client
}

// NewClient creates a remote advisor for the given API key.
// Returns nil if the key is empty; callers treat nil as "offline only".
func NewClient(apiKey, baseURL, modelName string, lang model.Language) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if modelName == "" {
		modelName = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   modelName,
		lang:    lang,
		http:    &http.Client{},
	}
}

var _ Advisor = (*Client)(nil)

// RecommendRule sends the ledger to the model and parses its rule answer.
func (c *Client) RecommendRule(ctx context.Context, salary float64, expenses []model.Expense) (*Recommendation, error) {
	system := fmt.Sprintf(`Context: User Salary = %.2f. Language: %s.

ROLE:
You are a personal budget analyzer.

TASK:
1. Analyze the provided list of expenses.
2. Calculate the actual Needs ratio.
3. Recommend the best budget rule for their situation:
   - If Needs are around 50%%, recommend 50/30/20.
   - If Needs are high (e.g. over 55%%), recommend 60/20/20 or 70/20/10 to be realistic.
   - Explain clearly why this rule fits them.
4. Return a JSON response.

OUTPUT FORMAT (JSON ONLY):
{
  "analysis_message": "A concise explanation (max 3 sentences) of why this rule is chosen.",
  "recommended_rule": { "needs": 60, "wants": 20, "savings": 20 }
}`, salary, languageName(c.lang))

	user := fmt.Sprintf("User Data: %s. Analyze and recommend rule in JSON.", ledgerJSON(expenses))

	text, err := c.generate(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var payload rulePayload
	if err := json.Unmarshal(extractJSON(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReply, err)
	}
	if payload.RecommendedRule == nil || payload.AnalysisMessage == "" {
		return nil, ErrBadReply
	}

	return &Recommendation{
		Rule: model.BudgetRule{
			Needs:   payload.RecommendedRule.Needs,
			Wants:   payload.RecommendedRule.Wants,
			Savings: payload.RecommendedRule.Savings,
		},
		Message: payload.AnalysisMessage,
		Remote:  true,
	}, nil
}

// Chat sends a free-text message alongside the ledger. The model may answer
// with plain text, a rule suggestion, expenses it extracted from the
// message, or any combination.
func (c *Client) Chat(ctx context.Context, message string, salary float64, expenses []model.Expense) (*ChatReply, error) {
	system := fmt.Sprintf(`Context: User Salary = %.2f. Language: %s.
Current expenses: %s.

You are a personal budget assistant. The user writes free text. If the text
describes one or more expenses, extract them. You may also suggest a budget
rule when asked.

OUTPUT FORMAT (JSON ONLY):
{
  "message": "your answer to the user",
  "rule": { "needs": 50, "wants": 30, "savings": 20 },
  "expenses": [ { "name": "...", "amount": 0, "type": "need|want|saving" } ]
}
Omit "rule" and "expenses" when they do not apply.`, salary, languageName(c.lang), ledgerJSON(expenses))

	text, err := c.generate(ctx, system, message)
	if err != nil {
		return nil, err
	}

	var payload chatPayload
	if err := json.Unmarshal(extractJSON(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReply, err)
	}
	if payload.Message == "" {
		return nil, ErrBadReply
	}

	reply := &ChatReply{Message: payload.Message}
	if payload.Rule != nil {
		reply.Rule = &model.BudgetRule{
			Needs:   payload.Rule.Needs,
			Wants:   payload.Rule.Wants,
			Savings: payload.Rule.Savings,
		}
	}
	for _, e := range payload.Expenses {
		if e.Name == "" || e.Amount <= 0 {
			continue
		}
		reply.Expenses = append(reply.Expenses, ExtractedExpense{
			Name:     e.Name,
			Amount:   e.Amount,
			Category: model.ParseCategory(e.Type),
		})
	}
	return reply, nil
}

// generate performs one generateContent call and returns the reply text.
func (c *Client) generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqBody := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: system}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: user}}}},
		GenerationConfig:  &generationConfig{Temperature: 0.1, ResponseMimeType: "application/json"},
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("advisor: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("advisor: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("advisor: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("advisor: reading response: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("advisor: parsing response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", ErrBadReply
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// extractJSON pulls the JSON object out of a reply that may be wrapped in
// markdown code fences or surrounding prose.
func extractJSON(text string) []byte {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "```"); i >= 0 {
		rest := text[i+3:]
		rest = strings.TrimPrefix(rest, "json")
		if j := strings.Index(rest, "```"); j >= 0 {
			text = rest[:j]
		} else {
			text = rest
		}
		text = strings.TrimSpace(text)
	}
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return []byte(text)
}

func ledgerJSON(expenses []model.Expense) string {
	type item struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Type   string  `json:"type"`
	}
	items := make([]item, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, item{Name: e.Name, Amount: e.Amount, Type: string(e.Category)})
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func languageName(lang model.Language) string {
	if lang == model.Arabic {
		return "Arabic"
	}
	return "English"
}
