package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// regionIDRegex matches valid region identifiers: a letter or digit followed
// by letters, digits, underscores, hyphens, or dots.
var regionIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateRegionID validates a region identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - Maximum length of 128 characters
//
// Region ids are used as map keys, group names, and SVG element ids, so the
// character set is restricted to what is safe in all three contexts.
func ValidateRegionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidRegion, "region id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidRegion, "region id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidRegion, "region id contains invalid characters: %q", id)
		}
	}

	if !regionIDRegex.MatchString(id) {
		return New(ErrCodeInvalidRegion, "invalid region id: %q", id)
	}

	return nil
}

// ValidateGroupName validates a group name. Group names share the region id
// namespace (a tier entry naming a region falls back to a singleton group),
// so they follow the same rules.
func ValidateGroupName(name string) error {
	if err := ValidateRegionID(name); err != nil {
		return New(ErrCodeInvalidInput, "invalid group name: %q", name)
	}
	return nil
}

// ValidateMapPath validates a map definition file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateMapPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "map path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "map path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "map path contains invalid characters")
		}
	}

	return nil
}

// ValidateStateName validates a named state used by the session store.
// It ensures the name is a simple identifier, not a path.
func ValidateStateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "state name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "state name cannot contain path separators")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidInput, "state name cannot start with a dot")
	}

	return nil
}
