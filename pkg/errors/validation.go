package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds draggable and droppable identifiers.
const maxIDLength = 128

// ValidateID validates a draggable or droppable identifier.
//
// The rules are intentionally conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - Maximum length of 128 characters
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidScene, "%s id cannot be empty", kind)
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidScene, "%s id too long (max %d characters)", kind, maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidScene, "%s id %q contains whitespace or control characters", kind, id)
		}
	}

	return nil
}

// ValidatePath validates a scene or output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateMoves validates a move script such as "ffbf".
// Only 'f' (forward) and 'b' (backward) are accepted; spaces and commas are
// ignored.
func ValidateMoves(moves string) error {
	for i, r := range moves {
		switch r {
		case 'f', 'F', 'b', 'B', ' ', ',':
		default:
			return New(ErrCodeInvalidInput, "invalid move %q at position %d (use f or b)", r, i)
		}
	}
	if strings.Trim(moves, " ,") == "" {
		return New(ErrCodeInvalidInput, "move script cannot be empty")
	}
	return nil
}
