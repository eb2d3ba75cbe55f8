package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reUsername = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	rePetName  = regexp.MustCompile(`^[A-Za-z0-9 '\-]{1,20}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUsername.MatchString(s)
}

// PetName allows short displayable names only.
func PetName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePetName.MatchString(s)
}

// ID validates a simple resource identifier (species/item/inventory ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Password enforces a simple length window for login checks.
func Password(s string) bool {
	l := len(s)
	return l >= 8 && l <= 64
}
