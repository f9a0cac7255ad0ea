// Package fileops wraps the few file system calls the generator makes with
// path validation and typed errors.
package fileops

import (
	"os"
	"path/filepath"
)

// DirPerm and FilePerm are used for created directories and written files
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// FileOps provides a unified interface for common file operations
// combining path validation and error handling
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
}

// NewFileOps creates a new FileOps instance with all components
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
	}
}

// PathValidator returns the path validator instance
func (fo *FileOps) PathValidator() *PathValidator {
	return fo.pathValidator
}

// ReadFile reads a file and returns its contents as a string
func (fo *FileOps) ReadFile(filePath string) (string, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return "", fo.errorWrapper.WrapPathError(filePath, err)
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}

	return string(content), nil
}

// EnsureParentDir creates every missing directory above filePath. A
// directory that already exists is fine; anything else that stops the
// directory from existing is an error.
func (fo *FileOps) EnsureParentDir(filePath string) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return fo.errorWrapper.WrapPathError(filePath, err)
	}

	dir := filepath.Dir(cleanPath)
	if dir == "." || fo.pathValidator.IsDir(dir) {
		return nil
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(dir, err)
	}
	return nil
}

// WriteFile writes content to a file in a single call
func (fo *FileOps) WriteFile(filePath string, content []byte) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return fo.errorWrapper.WrapPathError(filePath, err)
	}

	if err := os.WriteFile(cleanPath, content, FilePerm); err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}
	return nil
}
