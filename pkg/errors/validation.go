package errors

import (
	"strings"
	"unicode"
)

// MaxPrecision is the largest accepted decimal precision. float64 cannot
// represent more significant decimal digits, so higher values only
// inflate the output.
const MaxPrecision = 15

// ValidatePrecision validates a decimal-places setting for the numeric
// formatter.
func ValidatePrecision(decimals int) error {
	if decimals < 0 {
		return New(ErrCodeInvalidInput, "decimal places must be non-negative, got %d", decimals)
	}
	if decimals > MaxPrecision {
		return New(ErrCodeInvalidInput, "decimal places too large (max %d), got %d", MaxPrecision, decimals)
	}
	return nil
}

// ValidateFilePath validates a user-supplied file path before it is
// handed to the OS.
//
// The validation rules are intentionally conservative:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateOutputPath validates the output file path and rejects writing
// the result over the input in place. Streaming reads and writes run
// concurrently, so in-place optimization would corrupt the source.
func ValidateOutputPath(input, output string) error {
	if err := ValidateFilePath(output); err != nil {
		return err
	}
	if strings.TrimSpace(input) == strings.TrimSpace(output) {
		return New(ErrCodeInvalidInput, "output path must differ from input path")
	}
	return nil
}
