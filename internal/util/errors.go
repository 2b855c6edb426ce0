package util

import "errors"

var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrDatasetNotLoaded   = errors.New("performance dataset not loaded")
	ErrQuestionNotFound   = errors.New("question not found for this student")
	ErrPlanNotCreated     = errors.New("study plan not created yet")
	ErrPlanAlreadyExists  = errors.New("study plan already exists")
	ErrUnknownCheckpoint  = errors.New("unknown checkpoint week")
)
