package advisor

// Wire types for the generateContent endpoint. Only the fields the client
// reads or writes are modeled.

type generateRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// rulePayload is the model's JSON answer for a rule analysis.
type rulePayload struct {
	AnalysisMessage string    `json:"analysis_message"`
	RecommendedRule *ruleJSON `json:"recommended_rule"`
}

// chatPayload is the model's JSON answer for a free-text chat turn.
type chatPayload struct {
	Message  string        `json:"message"`
	Rule     *ruleJSON     `json:"rule"`
	Expenses []expenseJSON `json:"expenses"`
}

type ruleJSON struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

type expenseJSON struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}
