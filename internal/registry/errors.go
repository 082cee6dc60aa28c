package registry

import (
	"errors"
	"fmt"
)

// Error codes carried by TemplateError.
const (
	CodeTemplateNotFound   = "TEMPLATE_NOT_FOUND"
	CodeFileNotFound       = "FILE_NOT_FOUND"
	CodeInvalidProjectName = "INVALID_PROJECT_NAME"
	CodeSyncError          = "SYNC_ERROR"
)

// Sentinel errors matched by TemplateError.Is.
var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrSync               = errors.New("sync failed")
)

// TemplateError is a coded error surfaced to CLI and API callers.
type TemplateError struct {
	Code    string
	Message string
}

func (e *TemplateError) Error() string {
	return e.Message
}

func (e *TemplateError) Is(target error) bool {
	switch e.Code {
	case CodeTemplateNotFound:
		return target == ErrTemplateNotFound
	case CodeFileNotFound:
		return target == ErrFileNotFound
	case CodeInvalidProjectName:
		return target == ErrInvalidProjectName
	case CodeSyncError:
		return target == ErrSync
	}
	return false
}

// NewTemplateNotFound reports a template whose directory does not exist.
func NewTemplateNotFound(name string) *TemplateError {
	return &TemplateError{Code: CodeTemplateNotFound, Message: fmt.Sprintf("Template %q not found", name)}
}

// NewFileNotFound reports a missing file or directory.
func NewFileNotFound(path string) *TemplateError {
	return &TemplateError{Code: CodeFileNotFound, Message: fmt.Sprintf("File or directory not found: %s", path)}
}

// NewInvalidProjectName reports a project name that cannot be used.
func NewInvalidProjectName(name, reason string) *TemplateError {
	return &TemplateError{Code: CodeInvalidProjectName, Message: fmt.Sprintf("Invalid project name %q: %s", name, reason)}
}

// NewSyncError reports a failed config sync.
func NewSyncError(message string) *TemplateError {
	return &TemplateError{Code: CodeSyncError, Message: message}
}

// Code extracts the TemplateError code from err, or "" when err is not one.
func Code(err error) string {
	var te *TemplateError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}
