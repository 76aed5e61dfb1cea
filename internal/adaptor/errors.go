package adaptor

import (
	"errors"
	"net/http"

	"course-enrollment/internal/usecase"
	"course-enrollment/pkg/utils"

	"go.uber.org/zap"
)

type clientError struct {
	target  error
	status  int
	message string
}

// clientErrors lists the domain errors a caller can act on. The message is
// what the client sees; internal details stay in the log.
var clientErrors = []clientError{
	{usecase.ErrInvalidID, http.StatusBadRequest, "Invalid ID"},
	{usecase.ErrNothingToUpdate, http.StatusBadRequest, "At least one field must be provided"},
	{usecase.ErrUserExists, http.StatusBadRequest, "User already exists"},
	{usecase.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
	{usecase.ErrInstructorNotFound, http.StatusBadRequest, "Instructor does not exist"},
	{usecase.ErrInvalidReference, http.StatusBadRequest, "Course or user does not exist"},
	{usecase.ErrAlreadyEnrolled, http.StatusBadRequest, "User is already enrolled in this course"},
	{usecase.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{usecase.ErrCourseNotFound, http.StatusNotFound, "Course not found"},
	{usecase.ErrEnrollmentNotFound, http.StatusNotFound, "Enrollment not found"},
	{usecase.ErrReviewNotFound, http.StatusNotFound, "Review not found"},
}

// handleServiceError writes the response for a failed service call
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	if errors.Is(err, usecase.ErrValidation) {
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	for _, ce := range clientErrors {
		if !errors.Is(err, ce.target) {
			continue
		}
		log.Warn(operation+" failed",
			zap.Error(err),
			zap.Int("status", ce.status),
			zap.String("operation", operation))
		utils.ResponseJSON(w, ce.status, utils.Response{
			"status":  false,
			"message": ce.message,
		})
		return
	}

	log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
