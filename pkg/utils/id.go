package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// alfabeto sem caracteres ambíguos (0/O, 1/l/I)
const queryIDAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	QueryIDPrefix = "q_"
	queryIDLength = 10
)

// NewQueryID gera o identificador de uma resposta do motor de consultas, ex: q_7hKpM2xQaZ
func NewQueryID() (string, error) {
	id, err := gonanoid.Generate(queryIDAlphabet, queryIDLength)
	if err != nil {
		return "", err
	}
	return QueryIDPrefix + id, nil
}
