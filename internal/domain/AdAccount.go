package domain

import (
	"errors"
	"regexp"
	"strings"
)

var accountIDPattern = regexp.MustCompile(`^act_\d+$`)

var ErrInvalidAccountID = errors.New("ID de conta inválido: use o formato act_<número>")

// NormalizeAccountID remove espaços e valida o formato act_<dígitos>
func NormalizeAccountID(accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if !accountIDPattern.MatchString(accountID) {
		return "", ErrInvalidAccountID
	}

	return accountID, nil
}
