package authenticating

import "errors"

var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrUnexpectedSigningAlgo = errors.New("algoritmo de assinatura inesperado")
)
