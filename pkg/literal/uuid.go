package literal

import "github.com/google/uuid"

// IsUUID reports whether quoted is a quoted hyphenated uuid such as
// '5ef4a4c2-8c3f-4a3e-9f2a-6a1b2c3d4e5f'.
func IsUUID(quoted string) bool {
	s, ok := body(quoted)
	if !ok || len(s) != 36 {
		return false
	}
	// uuid.Parse also accepts urn and braced forms; the grammar does not.
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
