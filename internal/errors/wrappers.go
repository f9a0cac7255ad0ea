package errors

import "fmt"

// Common error constructors used across the extraction and generation stages

// MissingRegionMarkers reports that the reflect sentinels were not found and
// the whole file was used as the region
func MissingRegionMarkers(beginFound, endFound bool) *BaseError {
	return New(MissingRegionMarkersCode, "reflect region markers not found, using the whole file as the region").
		WithContext("begin_marker_found", beginFound).
		WithContext("end_marker_found", endFound).
		WithSuggestions(
			"Wrap the declarations in '// reflect begin' and '// reflect end' comments",
			"Make sure '// reflect end' appears after '// reflect begin'",
		)
}

// UnbalancedBraces reports a brace that is never closed, or a closing brace
// with no opening partner
func UnbalancedBraces(line int, reason string) *BaseError {
	return Newf(UnbalancedBracesCode, "unbalanced braces: %s", reason).
		WithLocation(SourceLocation{Line: line}).
		WithSuggestion("Check that every inline method body has a matching closing brace")
}

// MalformedDeclaration reports a declaration line that cannot be split into
// return type, name, parameter list and qualifiers
func MalformedDeclaration(line int, text, reason string) *BaseError {
	return Newf(MalformedDeclarationCode, "malformed declaration %q: %s", text, reason).
		WithLocation(SourceLocation{Line: line}).
		WithContext("declaration", text).
		WithSuggestions(
			"Write one method declaration per line, e.g. 'virtual int read(char* buf, int n) const = 0;'",
			"Move non-method content outside the reflect region",
		)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapOutputDirectoryError wraps a failure to create the output directory
func WrapOutputDirectoryError(dir string, cause error) *BaseError {
	message := fmt.Sprintf("failed to create output directory '%s'", dir)
	return Wrap(OutputDirectoryCode, message, cause).
		WithContext("path", dir).
		WithSuggestion("Check that the parent of the output path is writable")
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName).
		WithContext("stage", operation)
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(item string, cause error) *BaseError {
	return Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s", item), cause)
}

// ConfigurationError creates a configuration error
func ConfigurationError(field, message string) *BaseError {
	fullMessage := fmt.Sprintf("configuration error in '%s': %s", field, message)
	return New(ConfigurationErrorCode, fullMessage).
		WithContext("field", field)
}
