package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qawamdev/qawam/internal/model"
)

func replyWith(t *testing.T, text string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("path = %s, want a generateContent call", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("missing api key header")
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if c := NewClient("", "", "", model.English); c != nil {
		t.Fatal("empty key must yield a nil client")
	}
	if c := NewClient("   ", "", "", model.English); c != nil {
		t.Fatal("blank key must yield a nil client")
	}
}

func TestClientRecommendRule(t *testing.T) {
	srv := httptest.NewServer(replyWith(t,
		`{"analysis_message":"Needs are high.","recommended_rule":{"needs":60,"wants":20,"savings":20}}`))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "test-model", model.English)
	rec, err := c.RecommendRule(context.Background(), 10000,
		[]model.Expense{exp("Rent", 6000, model.Need)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Rule != (model.BudgetRule{Needs: 60, Wants: 20, Savings: 20}) {
		t.Fatalf("rule = %+v, want 60/20/20", rec.Rule)
	}
	if rec.Message != "Needs are high." {
		t.Fatalf("message = %q", rec.Message)
	}
	if !rec.Remote {
		t.Fatal("remote recommendation not flagged remote")
	}
}

func TestClientToleratesCodeFences(t *testing.T) {
	srv := httptest.NewServer(replyWith(t,
		"Here you go:\n```json\n{\"analysis_message\":\"ok\",\"recommended_rule\":{\"needs\":50,\"wants\":30,\"savings\":20}}\n```"))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "", model.English)
	rec, err := c.RecommendRule(context.Background(), 10000, nil)
	if err != nil {
		t.Fatalf("fenced JSON rejected: %v", err)
	}
	if rec.Rule != model.DefaultRule() {
		t.Fatalf("rule = %+v, want default", rec.Rule)
	}
}

func TestClientStatusErrors(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusTooManyRequests, ErrRateLimited},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))
		c := NewClient("test-key", srv.URL, "", model.English)
		_, err := c.RecommendRule(context.Background(), 10000, nil)
		srv.Close()
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestClientRejectsIncompleteReply(t *testing.T) {
	srv := httptest.NewServer(replyWith(t, `{"analysis_message":"no rule here"}`))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "", model.English)
	_, err := c.RecommendRule(context.Background(), 10000, nil)
	if !errors.Is(err, ErrBadReply) {
		t.Fatalf("err = %v, want ErrBadReply", err)
	}
}

func TestClientChatExtractsExpenses(t *testing.T) {
	srv := httptest.NewServer(replyWith(t,
		`{"message":"Added two items.","expenses":[{"name":"Gym","amount":200,"type":"want"},{"name":"","amount":50,"type":"need"},{"name":"Rent","amount":-1,"type":"need"}]}`))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "", model.English)
	reply, err := c.Chat(context.Background(), "I pay 200 for the gym", 10000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reply.Expenses) != 1 {
		t.Fatalf("expenses = %d, want 1 (nameless and non-positive dropped)", len(reply.Expenses))
	}
	e := reply.Expenses[0]
	if e.Name != "Gym" || e.Amount != 200 || e.Category != model.Want {
		t.Fatalf("extracted = %+v", e)
	}
	if reply.Rule != nil {
		t.Fatal("no rule in reply but Rule set")
	}
}

func TestRecommendFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "", model.English)
	rec := Recommend(context.Background(), c, model.English, 10000,
		[]model.Expense{exp("Rent", 7000, model.Need)})
	if rec == nil || rec.Remote {
		t.Fatalf("expected the local fallback, got %+v", rec)
	}
	if rec.Rule.Needs != 70 {
		t.Fatalf("fallback rule = %+v, want 70/20/10", rec.Rule)
	}
}
