package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um id curto alfanumérico de tamanho size
func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}
