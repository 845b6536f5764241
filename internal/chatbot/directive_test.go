package chatbot

import (
	"testing"

	"github.com/web3hub/hub-engine/internal/models"
)

func TestParseDirectivesExtractsActions(t *testing.T) {
	raw := "Download my playbook now. [ACTION: Get My Free Playbook|hub]"

	text, actions := ParseDirectives(raw)
	if text != "Download my playbook now." {
		t.Errorf("text = %q", text)
	}
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if actions[0].Label != "Get My Free Playbook" {
		t.Errorf("label = %q", actions[0].Label)
	}
	if actions[0].View != models.ViewHub {
		t.Errorf("view = %q", actions[0].View)
	}
}

func TestParseDirectivesPreservesOrder(t *testing.T) {
	raw := "For skills, my Mastery Tracks. [ACTION: View Mastery Tracks|courses] For a tailored plan, book me. [ACTION: Book a Session|book]"

	_, actions := ParseDirectives(raw)
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if actions[0].View != models.ViewCourses || actions[1].View != models.ViewBook {
		t.Errorf("actions out of order: %v", actions)
	}
}

func TestParseDirectivesDropsUnknownViews(t *testing.T) {
	raw := "Go here. [ACTION: Secret Area|backstage] Or here. [ACTION: My Services|services]"

	text, actions := ParseDirectives(raw)
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d: %v", len(actions), actions)
	}
	if actions[0].View != models.ViewServices {
		t.Errorf("view = %q", actions[0].View)
	}
	// The malformed directive is stripped from the text either way.
	if text != "Go here.  Or here." {
		t.Errorf("text = %q", text)
	}
}

func TestParseDirectivesCourseScopedViewsNotPermitted(t *testing.T) {
	for _, view := range []string{"courseDetail", "takingCourse", "admin"} {
		raw := "Go. [ACTION: Jump|" + view + "]"
		_, actions := ParseDirectives(raw)
		if len(actions) != 0 {
			t.Errorf("view %q must not be reachable from chat, got %v", view, actions)
		}
	}
}

func TestParseDirectivesTrimsWhitespaceInsideDirective(t *testing.T) {
	raw := "[ACTION:   Get the Playbook Now  |  hub  ]"

	text, actions := ParseDirectives(raw)
	if text != "" {
		t.Errorf("text = %q", text)
	}
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if actions[0].Label != "Get the Playbook Now" {
		t.Errorf("label = %q", actions[0].Label)
	}
	if actions[0].View != models.ViewHub {
		t.Errorf("view = %q", actions[0].View)
	}
}

func TestParseDirectivesNoDirectives(t *testing.T) {
	text, actions := ParseDirectives("Just a plain answer.")
	if text != "Just a plain answer." {
		t.Errorf("text = %q", text)
	}
	if len(actions) != 0 {
		t.Errorf("expected no actions, got %v", actions)
	}
}
