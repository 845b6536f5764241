// Package chatbot wraps the generative-AI integration: the action
// directive protocol layered on free-text responses, the sales-funnel
// prompt contract, and the assistant widgets.
package chatbot

import (
	"regexp"
	"strings"

	"github.com/web3hub/hub-engine/internal/models"
)

// directivePattern matches the inline action grammar the model is
// instructed to emit: [ACTION: <label>|<view>].
var directivePattern = regexp.MustCompile(`\[ACTION:\s*(.*?)\s*\|\s*(.*?)\]`)

// permittedViews is the closed set of view tokens a directive may target.
// Course-scoped and admin views are deliberately not reachable from chat.
var permittedViews = map[models.View]bool{
	models.ViewHome:     true,
	models.ViewHub:      true,
	models.ViewServices: true,
	models.ViewBook:     true,
	models.ViewCourses:  true,
}

// ParseDirectives extracts all well-formed action directives from a raw
// model response, in left-to-right order. Directives whose view token is
// outside the permitted set are dropped silently. Every matched directive
// substring is removed from the returned display text either way.
func ParseDirectives(raw string) (string, []models.Action) {
	var actions []models.Action

	for _, match := range directivePattern.FindAllStringSubmatch(raw, -1) {
		label := strings.TrimSpace(match[1])
		view := models.View(strings.TrimSpace(match[2]))
		if !permittedViews[view] {
			continue
		}
		actions = append(actions, models.Action{Label: label, View: view})
	}

	text := strings.TrimSpace(directivePattern.ReplaceAllString(raw, ""))
	return text, actions
}
