package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownView is returned when a raw view token is outside the closed
// view set.
var ErrUnknownView = errors.New("unknown view")

// View is one named top-level screen state of the application.
type View string

const (
	ViewHome         View = "home"
	ViewHub          View = "hub"
	ViewCourses      View = "courses"
	ViewCourseDetail View = "courseDetail"
	ViewTakingCourse View = "takingCourse"
	ViewServices     View = "services"
	ViewBook         View = "book"
	ViewAdmin        View = "admin"
)

// AllViews is the closed set of navigable views.
var AllViews = []View{
	ViewHome,
	ViewHub,
	ViewCourses,
	ViewCourseDetail,
	ViewTakingCourse,
	ViewServices,
	ViewBook,
	ViewAdmin,
}

// IsValid reports whether v is a member of the closed view set.
func (v View) IsValid() bool {
	for _, known := range AllViews {
		if v == known {
			return true
		}
	}
	return false
}

// RequiresCourse reports whether the view renders nothing without a
// selected course.
func (v View) RequiresCourse() bool {
	return v == ViewCourseDetail || v == ViewTakingCourse
}

// ParseView validates a raw view token against the closed set.
func ParseView(raw string) (View, error) {
	v := View(raw)
	if !v.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, raw)
	}
	return v, nil
}

// Action is a structured (label, target view) pair derived from a chat
// directive, rendered client-side as a clickable control.
type Action struct {
	Label string `json:"label"`
	View  View   `json:"view"`
}

// ChatSender identifies who produced a chat message.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderAI   ChatSender = "ai"
)

// ChatMessage is one turn in the chatbot transcript. The transcript is
// ordered and append-only; only AI messages carry actions.
type ChatMessage struct {
	Sender  ChatSender `json:"sender"`
	Text    string     `json:"text"`
	Actions []Action   `json:"actions,omitempty"`
	SentAt  time.Time  `json:"sent_at"`
}
