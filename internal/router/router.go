// Package router implements the navigation state machine over the closed
// view set. Transitions mutate a session record in place; there is no
// history stack, so "back" actions are fixed-target transitions chosen by
// the caller.
package router

import (
	"errors"
	"fmt"

	"github.com/web3hub/hub-engine/internal/demos"
	"github.com/web3hub/hub-engine/internal/models"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrNoPurchaseLink  = errors.New("paid course has no purchase link")
	ErrNoCourseActive  = errors.New("no free course is active")
)

// Navigate performs a direct, unconditional transition to a named view.
// Views that require a course selection cannot be entered directly:
// instead of reproducing the original blank render, the transition lands
// on the courses overview.
func Navigate(s *models.Session, rawView string) (models.View, error) {
	view, err := models.ParseView(rawView)
	if err != nil {
		return s.View, fmt.Errorf("navigate: %w", err)
	}

	if view.RequiresCourse() {
		if view == models.ViewCourseDetail && s.SelectedCourseID != "" {
			s.View = view
			return s.View, nil
		}
		if view == models.ViewTakingCourse && s.ActiveCourseID != "" {
			s.View = view
			return s.View, nil
		}
		s.View = models.ViewCourses
		return s.View, nil
	}

	s.View = view
	return s.View, nil
}

// SelectCourse sets the course selection and enters courseDetail.
func SelectCourse(s *models.Session, course *models.Course) models.View {
	s.SelectedCourseID = course.ID
	s.View = models.ViewCourseDetail
	return s.View
}

// Enroll acts on the currently selected course. A free course starts the
// in-app learning experience and moves to takingCourse; a paid course
// leaves the view unchanged and surfaces the external purchase link as
// the only observable effect.
func Enroll(s *models.Session, course *models.Course) (models.EnrollResponse, error) {
	switch course.Type {
	case models.CourseFree:
		s.ActiveCourseID = course.ID
		s.Certificate = demos.NewCertificateState()
		s.View = models.ViewTakingCourse
		return models.EnrollResponse{View: s.View}, nil
	case models.CoursePaid:
		if course.PurchaseLink == "" {
			return models.EnrollResponse{}, ErrNoPurchaseLink
		}
		return models.EnrollResponse{View: s.View, PurchaseLink: course.PurchaseLink}, nil
	default:
		return models.EnrollResponse{}, fmt.Errorf("enroll: unknown course type %q", course.Type)
	}
}

// ExitCourse leaves the learning experience, clearing both selections
// unconditionally, and returns to the courses overview.
func ExitCourse(s *models.Session) models.View {
	s.SelectedCourseID = ""
	s.ActiveCourseID = ""
	s.Certificate = nil
	s.View = models.ViewCourses
	return s.View
}
