package fileops

import (
	"github.com/toyz/fwdgen/internal/errors"
)

// ErrorWrapper provides consistent error wrapping for file operations
type ErrorWrapper struct{}

// NewErrorWrapper creates a new ErrorWrapper instance
func NewErrorWrapper() *ErrorWrapper {
	return &ErrorWrapper{}
}

// WrapFileReadError wraps file reading errors with context
func (ew *ErrorWrapper) WrapFileReadError(filePath string, err error) error {
	return errors.WrapFileSystemError("read", filePath, err)
}

// WrapFileWriteError wraps file writing errors with context
func (ew *ErrorWrapper) WrapFileWriteError(filePath string, err error) error {
	return errors.WrapFileSystemError("write", filePath, err)
}

// WrapPathError wraps a path that failed validation
func (ew *ErrorWrapper) WrapPathError(filePath string, err error) error {
	return errors.WrapFileSystemError("access", filePath, err)
}

// WrapDirectoryCreateError wraps a failure to create an output directory
func (ew *ErrorWrapper) WrapDirectoryCreateError(dirPath string, err error) error {
	return errors.WrapOutputDirectoryError(dirPath, err)
}
