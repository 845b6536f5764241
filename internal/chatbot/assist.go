package chatbot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/web3hub/hub-engine/internal/models"
)

// ErrBriefFailed is returned when the strategy brief could not be
// generated. Unlike the other widgets, the brief has no useful fallback
// text.
var ErrBriefFailed = errors.New("could not generate a strategic brief")

const briefSystemInstruction = `You are Muhammad Ahsan Khan's Strategic AI Analyst. Your task is to analyze a user's stated challenge and structure it into a concise, professional brief for an Executive Strategy Session with him. Your tone should be sharp, insightful, and professional.

Your output MUST be in Markdown format.

The brief must contain the following sections, using my exact heading structure:

- **Primary Objective:** A clear, one-sentence summary of the user's core goal.
- **Key Themes I've Identified:** A bulleted list of the main strategic domains present in the user's input (e.g., Market Entry Strategy, Token Economic Design, Community Architecture, Competitive Positioning).
- **Initial Strategic Questions:** A bulleted list of 3-4 powerful questions I would ask to guide the session. These should be designed to uncover root problems and frame the discussion strategically.`

const hubAnswerSystemInstruction = "You are an AI Analyst answering questions based strictly on the provided articles written by Muhammad Ahsan Khan. Be concise, accurate, and maintain his expert tone."

const learningPathSystemInstruction = "You are an expert curriculum designer, creating learning paths based on Muhammad Ahsan Khan's articles. Your tone is encouraging yet authoritative. Present the path as a numbered list."

// Widget fallback texts, returned verbatim when the model call fails.
const (
	hubAnswerFallback    = "Sorry, I encountered an error while analyzing the knowledge base. Please try asking in a different way."
	learningPathFallback = "Sorry, I encountered an error while creating your learning path. Please try describing your goal differently."
	membershipFallback   = "I was unable to generate a recommendation. Please review the tiers and choose the one that best fits your strategic needs."
	roadmapFallback      = "Your first step is non-negotiable: download **My Web3 Leader's Playbook** in the Intelligence Core."
)

// StrategyBrief structures a free-text challenge into a consultation
// brief. It is the one widget that propagates failure to the caller.
func (b *Bot) StrategyBrief(ctx context.Context, userInput string) (string, error) {
	if b.completer == nil {
		return "", ErrUnavailable
	}

	prompt := fmt.Sprintf("User's Challenge/Objective: %q", userInput)
	text, err := b.completer.Complete(ctx, prompt, briefSystemInstruction)
	if err != nil {
		slog.Error("strategy brief generation failed", "error", err)
		return "", ErrBriefFailed
	}
	return text, nil
}

// HubAnswer answers a question strictly from the article bodies. When the
// model call fails the fixed fallback text is returned with a nil error,
// so the widget always renders something.
func (b *Bot) HubAnswer(ctx context.Context, question string, learnContent []models.Content) string {
	if b.completer == nil {
		return hubAnswerFallback
	}

	var contextStr strings.Builder
	for _, c := range learnContent {
		if c.Type != models.ContentArticle || c.FullContent == "" {
			continue
		}
		fmt.Fprintf(&contextStr, "**Article: %s**\n%s\n\n---\n\n", c.Title, c.FullContent)
	}

	prompt := fmt.Sprintf("Based *only* on the context from Muhammad Ahsan Khan's articles below, answer the user's question. Your tone should be authoritative and direct. Format your response in clear Markdown. If the answer is not in the context, state that the information isn't available in the current knowledge base and suggest a broader exploration of the Hub.\n\n**CONTEXT:**\n%s\n\n**USER QUESTION:**\n%s", contextStr.String(), question)

	text, err := b.completer.Complete(ctx, prompt, hubAnswerSystemInstruction)
	if err != nil {
		slog.Error("hub answer generation failed", "error", err)
		return hubAnswerFallback
	}
	return text
}

// LearningPath orders the article catalog into a step-by-step path toward
// the stated goal.
func (b *Bot) LearningPath(ctx context.Context, goal string, learnContent []models.Content) string {
	if b.completer == nil {
		return learningPathFallback
	}

	var titles strings.Builder
	for _, c := range learnContent {
		if c.Type != models.ContentArticle {
			continue
		}
		fmt.Fprintf(&titles, "- %q (Category: %s)\n", c.Title, c.Category)
	}

	prompt := fmt.Sprintf("A user wants to achieve this goal: %q.\n\nBased on my available articles, create a logical, step-by-step learning path for them. List the titles of my articles in the recommended order. For each step, add a brief sentence explaining its strategic importance for their journey.\n\n**My Available Articles:**\n%s", goal, titles.String())

	text, err := b.completer.Complete(ctx, prompt, learningPathSystemInstruction)
	if err != nil {
		slog.Error("learning path generation failed", "error", err)
		return learningPathFallback
	}
	return text
}

// MembershipRecommendation picks a tier for the selected goals.
func (b *Bot) MembershipRecommendation(ctx context.Context, goals []string) string {
	if b.completer == nil {
		return membershipFallback
	}

	prompt := fmt.Sprintf(`A user has selected the following goals: %s. Based on my three membership tiers (Strategist, Architect, Visionary), recommend the best tier for them and explain why in 1-2 powerful sentences. Frame it as my direct, expert recommendation. Format the response with the recommended tier name in bold.

**My Tiers:**
- **Strategist:** For professionals who need to master fundamentals and stay current. Access my core intelligence, frameworks, and community.
- **Architect:** For builders and founders. All Strategist benefits + access to all Mastery Tracks, templates, and live AMAs. This is the implementation toolkit.
- **Visionary:** For leaders requiring direct access to me. All Architect benefits + monthly 1-on-1 strategy calls and project feedback. This is for shaping markets.`, strings.Join(goals, ", "))

	text, err := b.completer.Complete(ctx, prompt, "")
	if err != nil {
		slog.Error("membership recommendation failed", "error", err)
		return membershipFallback
	}
	return text
}

// Roadmap funnels a stated goal to a single next-step sentence. Its
// fallback doubles as the top-of-funnel recommendation.
func (b *Bot) Roadmap(ctx context.Context, goal string) string {
	if b.completer == nil {
		return roadmapFallback
	}

	prompt := fmt.Sprintf(`A user has stated their goal: %q. Based on my offerings, provide a single, clear, actionable next step. Your response MUST be a single, powerful sentence that funnels the user to the correct offering.

**My Offerings & Funnel Logic:**
1.  **"My Web3 Leader's Playbook" (E-Book, in Intelligence Core):** This is the TOP of the funnel. If the goal is about learning, understanding basics, getting started, or any foundational topic (e.g., "learn about web3", "what are DAOs"), you MUST recommend this.
2.  **Mastery Tracks (Courses):** If the goal is about acquiring a specific, hard skill (e.g., "build a dApp", "learn Solidity", "understand tokenomics"), recommend exploring my **Mastery Tracks**.
3.  **Inner Circle (Memberships):** If the goal is about ongoing growth, staying up to date, community access, or advanced strategy, recommend joining my **Inner Circle**.
4.  **Executive Strategy Session:** If the goal is a high-stakes, complex business objective (e.g., "launch my company's NFT project", "develop a go-to-market strategy", "fundraise for my startup"), you MUST recommend booking an **Executive Strategy Session**.`, goal)

	text, err := b.completer.Complete(ctx, prompt, "")
	if err != nil {
		slog.Error("roadmap generation failed", "error", err)
		return roadmapFallback
	}
	return text
}
