package status

import (
	"fmt"
)

// FileFormatter defines how file operations and status should be formatted
type FileFormatter interface {
	// FormatFileOperation formats a file status message
	FormatFileOperation(path, profile string, status FileStatus) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file status message with emojis
func (f *DefaultFileFormatter) FormatFileOperation(path, profile string, status FileStatus) string {
	suffix := ""
	if profile != "" {
		suffix = fmt.Sprintf(" [%s]", profile)
	}

	switch status {
	case StatusLoaded:
		return fmt.Sprintf("📖 Loaded %s%s", path, suffix)
	case StatusModified:
		return fmt.Sprintf("🧹 Cleaned %s%s", path, suffix)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s%s", path, suffix)
	default:
		return fmt.Sprintf("👍 Unchanged %s%s", path, suffix)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
