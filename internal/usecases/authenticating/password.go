package authenticating

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/vfg2006/strategy-dashboard-api/pkg/apiErrors"
)

const (
	minPasswordLength = 8

	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	allChars     = lowerChars + upperChars + numberChars + specialChars
)

// generateStrongPassword gera uma senha com pelo menos um caractere de cada classe
func generateStrongPassword(length int) (string, error) {
	if length < minPasswordLength {
		length = minPasswordLength
	}

	password := make([]byte, length)

	for i, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		c, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	for i := 4; i < length; i++ {
		c, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	// Embaralhar para que as classes não fiquem em posições previsíveis
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randomInt gera um número aleatório seguro entre 0 e max-1
func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength exige 8 caracteres com maiúscula, minúscula, número e caractere especial
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, "a senha deve conter pelo menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, "a senha deve conter pelo menos uma letra maiúscula")
	case !hasLower:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, "a senha deve conter pelo menos uma letra minúscula")
	case !hasNumber:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, "a senha deve conter pelo menos um número")
	case !hasSpecial:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, "a senha deve conter pelo menos um caractere especial")
	}

	return nil
}
