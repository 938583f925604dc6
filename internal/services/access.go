package services

import (
	"fmt"

	"github.com/learnhub/backend/internal/apperrors"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

var (
	errNotEnrollmentParticipant = apperrors.Forbidden("you do not have access to this enrollment")
	errNotEnrollmentOwner       = apperrors.Forbidden("enrollment belongs to another student")
	errNotCourseInstructor      = apperrors.Forbidden("only the course instructor can perform this action")
)

// authorizeEnrollment allows the enrolled student and the instructor of the enrollment's course
func authorizeEnrollment(p models.Principal, enrollment *models.Enrollment, course *models.Course) error {
	if p.UserID == enrollment.StudentID || p.UserID == course.InstructorID {
		return nil
	}
	return errNotEnrollmentParticipant
}

// authorizeEnrollmentOwner allows only the enrolled student
func authorizeEnrollmentOwner(p models.Principal, enrollment *models.Enrollment) error {
	if p.UserID == enrollment.StudentID {
		return nil
	}
	return errNotEnrollmentOwner
}

// authorizeCourseOwner allows only the instructor of the course
func authorizeCourseOwner(p models.Principal, course *models.Course) error {
	if p.UserID == course.InstructorID {
		return nil
	}
	return errNotCourseInstructor
}

// logUnexpected logs and wraps errors that carry no classification.
// Classified errors are returned unchanged so handlers can map them.
func logUnexpected(logger *zap.Logger, msg string, err error, fields ...zap.Field) error {
	if apperrors.KindOf(err) != apperrors.KindInternal {
		return err
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", msg, err)
}
