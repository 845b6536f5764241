package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/web3hub/hub-engine/internal/models"
)

// stubCompleter returns a canned response or error.
type stubCompleter struct {
	response string
	err      error

	lastPrompt            string
	lastSystemInstruction string
}

func (s *stubCompleter) Complete(_ context.Context, prompt, systemInstruction string) (string, error) {
	s.lastPrompt = prompt
	s.lastSystemInstruction = systemInstruction
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestBotReplyParsesDirectives(t *testing.T) {
	stub := &stubCompleter{response: "Get my playbook. [ACTION: Download|hub]"}
	bot := NewBot(stub)

	msg := bot.Reply(context.Background(), "where do I start?", nil)
	if msg.Sender != models.SenderAI {
		t.Errorf("sender = %q", msg.Sender)
	}
	if msg.Text != "Get my playbook." {
		t.Errorf("text = %q", msg.Text)
	}
	if len(msg.Actions) != 1 || msg.Actions[0].View != models.ViewHub {
		t.Errorf("actions = %v", msg.Actions)
	}
	if stub.lastSystemInstruction == "" {
		t.Error("system instruction not passed to completer")
	}
}

func TestBotReplyFallsBackOnError(t *testing.T) {
	bot := NewBot(&stubCompleter{err: errors.New("quota exceeded")})

	msg := bot.Reply(context.Background(), "hello", nil)
	if msg.Text != fallbackText {
		t.Errorf("text = %q, want the fixed fallback", msg.Text)
	}
	if len(msg.Actions) != 0 {
		t.Errorf("fallback must carry no actions, got %v", msg.Actions)
	}
}

func TestBotReplyWithoutCompleter(t *testing.T) {
	bot := NewBot(nil)

	msg := bot.Reply(context.Background(), "hello", nil)
	if msg.Text != unavailableText {
		t.Errorf("text = %q", msg.Text)
	}
}

func TestBotReplyIncludesArticleContext(t *testing.T) {
	stub := &stubCompleter{response: "ok"}
	bot := NewBot(stub)

	learn := []models.Content{
		{ID: "1", Title: "The Sovereign Stack", Category: "Strategy", Description: "Own your rails.", Type: models.ContentArticle, FullContent: "body"},
		{ID: "demo1", Title: "Mint an NFT", Type: models.ContentDemo},
	}
	bot.Reply(context.Background(), "what is web3?", learn)

	if !strings.Contains(stub.lastPrompt, "The Sovereign Stack") {
		t.Error("article title missing from prompt context")
	}
	if strings.Contains(stub.lastPrompt, "Mint an NFT") {
		t.Error("demo descriptors must not be in the prompt context")
	}
}

func TestStrategyBriefPropagatesFailure(t *testing.T) {
	bot := NewBot(&stubCompleter{err: errors.New("boom")})

	if _, err := bot.StrategyBrief(context.Background(), "my mint failed"); !errors.Is(err, ErrBriefFailed) {
		t.Errorf("expected ErrBriefFailed, got %v", err)
	}
}

func TestWidgetFallbacks(t *testing.T) {
	bot := NewBot(&stubCompleter{err: errors.New("boom")})
	ctx := context.Background()

	if got := bot.HubAnswer(ctx, "what is a DAO?", nil); got != hubAnswerFallback {
		t.Errorf("hub answer = %q", got)
	}
	if got := bot.LearningPath(ctx, "learn solidity", nil); got != learningPathFallback {
		t.Errorf("learning path = %q", got)
	}
	if got := bot.MembershipRecommendation(ctx, []string{"community"}); got != membershipFallback {
		t.Errorf("membership = %q", got)
	}
	if got := bot.Roadmap(ctx, "launch a token"); got != roadmapFallback {
		t.Errorf("roadmap = %q", got)
	}
}
