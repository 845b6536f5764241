package chatbot

import (
	"context"
	"log/slog"

	"github.com/web3hub/hub-engine/internal/models"
)

// Fixed transcript texts.
const (
	// GreetingText opens every new chat transcript.
	GreetingText = "Hello. I am the Strategic AI Analyst. Are you here to get my free Web3 Leader's Playbook, or are you ready to explore my premium Mastery Tracks and Inner Circle memberships?"

	// fallbackText is appended when the AI call fails; the transcript
	// stays interactive.
	fallbackText = "I'm sorry, I encountered an error while processing your request. Please try again."

	// unavailableText is used when no completer is configured at all.
	unavailableText = "I'm sorry, the AI service is currently unavailable. Please contact the site administrator."
)

// Bot converts user messages into AI transcript turns carrying parsed
// navigation actions.
type Bot struct {
	completer Completer
}

// NewBot creates a chatbot over the given completer. completer may be nil
// when the integration is unconfigured; every reply is then the fixed
// unavailable message.
func NewBot(completer Completer) *Bot {
	return &Bot{completer: completer}
}

// Reply produces the AI transcript turn for one user message. It never
// returns an error: AI failures degrade to a fixed fallback message with
// no actions.
func (b *Bot) Reply(ctx context.Context, message string, learnContent []models.Content) models.ChatMessage {
	if b.completer == nil {
		return models.ChatMessage{Sender: models.SenderAI, Text: unavailableText}
	}

	raw, err := b.completer.Complete(ctx, buildChatPrompt(message, learnContent), chatSystemInstruction)
	if err != nil {
		slog.Error("chat completion failed", "error", err)
		return models.ChatMessage{Sender: models.SenderAI, Text: fallbackText}
	}

	text, actions := ParseDirectives(raw)
	return models.ChatMessage{Sender: models.SenderAI, Text: text, Actions: actions}
}
