package users

import (
	"fmt"
	"unicode/utf8"
)

const MinPasswordLength = 8

// CheckPasswordStrength: mínimo 8 caracteres, al menos una minúscula,
// una mayúscula, un dígito y un símbolo (cualquier cosa fuera de [A-Za-z0-9]).
func CheckPasswordStrength(pw string) error {
	if utf8.RuneCountInString(pw) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, MinPasswordLength)
	}

	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	if !lower || !upper || !digit || !symbol {
		return fmt.Errorf("%w: must include uppercase, lowercase, number, and special character", ErrWeakPassword)
	}
	return nil
}
