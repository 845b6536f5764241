package router

import (
	"testing"

	"github.com/web3hub/hub-engine/internal/models"
)

func TestNavigateKnownViews(t *testing.T) {
	s := &models.Session{View: models.ViewHome}

	for _, view := range []string{"hub", "courses", "services", "book", "admin", "home"} {
		got, err := Navigate(s, view)
		if err != nil {
			t.Fatalf("Navigate(%q) failed: %v", view, err)
		}
		if got != models.View(view) {
			t.Errorf("Navigate(%q) = %q", view, got)
		}
		if s.View != models.View(view) {
			t.Errorf("session view = %q after Navigate(%q)", s.View, view)
		}
	}
}

func TestNavigateUnknownViewKeepsState(t *testing.T) {
	s := &models.Session{View: models.ViewServices}

	if _, err := Navigate(s, "checkout"); err == nil {
		t.Fatal("expected error for unknown view")
	}
	if s.View != models.ViewServices {
		t.Errorf("view changed to %q on failed navigation", s.View)
	}
}

func TestNavigateCourseViewsWithoutSelectionRedirects(t *testing.T) {
	for _, view := range []string{"courseDetail", "takingCourse"} {
		s := &models.Session{View: models.ViewHome}
		got, err := Navigate(s, view)
		if err != nil {
			t.Fatalf("Navigate(%q) failed: %v", view, err)
		}
		if got != models.ViewCourses {
			t.Errorf("Navigate(%q) without selection = %q, want courses", view, got)
		}
	}
}

func TestNavigateCourseViewsWithSelection(t *testing.T) {
	s := &models.Session{View: models.ViewCourses, SelectedCourseID: "course-free-01"}
	if got, _ := Navigate(s, "courseDetail"); got != models.ViewCourseDetail {
		t.Errorf("Navigate(courseDetail) with selection = %q", got)
	}

	s = &models.Session{View: models.ViewCourses, ActiveCourseID: "course-free-01"}
	if got, _ := Navigate(s, "takingCourse"); got != models.ViewTakingCourse {
		t.Errorf("Navigate(takingCourse) with active course = %q", got)
	}
}

func TestSelectCourse(t *testing.T) {
	s := &models.Session{View: models.ViewCourses}
	course := &models.Course{ID: "course-free-01", Type: models.CourseFree}

	if got := SelectCourse(s, course); got != models.ViewCourseDetail {
		t.Errorf("SelectCourse = %q", got)
	}
	if s.SelectedCourseID != "course-free-01" {
		t.Errorf("selected course = %q", s.SelectedCourseID)
	}
}

func TestEnrollFreeCourse(t *testing.T) {
	s := &models.Session{View: models.ViewCourseDetail, SelectedCourseID: "course-free-01"}
	course := &models.Course{ID: "course-free-01", Type: models.CourseFree}

	resp, err := Enroll(s, course)
	if err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if resp.View != models.ViewTakingCourse {
		t.Errorf("view = %q, want takingCourse", resp.View)
	}
	if resp.PurchaseLink != "" {
		t.Errorf("unexpected purchase link %q for free course", resp.PurchaseLink)
	}
	if s.ActiveCourseID != "course-free-01" {
		t.Errorf("active course = %q", s.ActiveCourseID)
	}
	if s.Certificate == nil {
		t.Error("certificate walkthrough not started")
	}
}

func TestEnrollPaidCourseKeepsView(t *testing.T) {
	s := &models.Session{View: models.ViewCourseDetail, SelectedCourseID: "course-paid-01"}
	course := &models.Course{
		ID:           "course-paid-01",
		Type:         models.CoursePaid,
		PurchaseLink: "https://gumroad.com",
	}

	resp, err := Enroll(s, course)
	if err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if resp.View != models.ViewCourseDetail {
		t.Errorf("view = %q, paid enroll must not change it", resp.View)
	}
	if resp.PurchaseLink != "https://gumroad.com" {
		t.Errorf("purchase link = %q", resp.PurchaseLink)
	}
	if s.ActiveCourseID != "" {
		t.Errorf("paid enroll set active course %q", s.ActiveCourseID)
	}
	if s.View != models.ViewCourseDetail {
		t.Errorf("session view = %q after paid enroll", s.View)
	}
}

func TestEnrollPaidCourseWithoutLink(t *testing.T) {
	s := &models.Session{View: models.ViewCourseDetail}
	course := &models.Course{ID: "broken", Type: models.CoursePaid}

	if _, err := Enroll(s, course); err != ErrNoPurchaseLink {
		t.Errorf("expected ErrNoPurchaseLink, got %v", err)
	}
}

func TestExitCourseClearsSelections(t *testing.T) {
	s := &models.Session{
		View:             models.ViewTakingCourse,
		SelectedCourseID: "course-free-01",
		ActiveCourseID:   "course-free-01",
	}
	course := &models.Course{ID: "course-free-01", Type: models.CourseFree}
	if _, err := Enroll(s, course); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}

	if got := ExitCourse(s); got != models.ViewCourses {
		t.Errorf("ExitCourse = %q", got)
	}
	if s.SelectedCourseID != "" || s.ActiveCourseID != "" {
		t.Errorf("selections not cleared: %q / %q", s.SelectedCourseID, s.ActiveCourseID)
	}
	if s.Certificate != nil {
		t.Error("certificate state not cleared")
	}
}
