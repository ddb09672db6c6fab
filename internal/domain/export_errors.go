package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Erros de autenticação
	ErrAuthentication      = errors.New("authentication failed")
	ErrCredentialsNotFound = errors.New("credentials file not found")
	ErrInvalidCredentials  = errors.New("invalid service account key")
	ErrTokenRejected       = errors.New("access token rejected by identity provider")

	// Erros da consulta ao GA4
	ErrFetch             = errors.New("report fetch failed")
	ErrInvalidPropertyID = errors.New("property id is required")
	ErrMalformedResponse = errors.New("malformed report response")

	// Erros de escrita
	ErrWrite        = errors.New("csv write failed")
	ErrMalformedRow = errors.New("malformed report row")

	// Erros de configuração
	ErrConfig           = errors.New("invalid configuration")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// AuthenticationError indica que não foi possível obter um cliente autenticado
type AuthenticationError struct {
	Err     error  // Erro base
	Path    string // Caminho do arquivo de chave
	Details string // Detalhes adicionais
}

func (e *AuthenticationError) Error() string {
	return formatStageError(ErrAuthentication, e.Err, e.Details)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

func NewAuthenticationError(baseErr error, path string, details string) *AuthenticationError {
	return &AuthenticationError{
		Err:     baseErr,
		Path:    path,
		Details: details,
	}
}

// FetchError carrega a causa de uma falha na chamada runReport
type FetchError struct {
	Err        error
	PropertyID string
	Details    string
}

func (e *FetchError) Error() string {
	return formatStageError(ErrFetch, e.Err, e.Details)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

func NewFetchError(baseErr error, propertyID string, details string) *FetchError {
	return &FetchError{
		Err:        baseErr,
		PropertyID: propertyID,
		Details:    details,
	}
}

// WriteError indica falha ao gravar o CSV
type WriteError struct {
	Err     error
	Path    string
	Details string
}

func (e *WriteError) Error() string {
	return formatStageError(ErrWrite, e.Err, e.Details)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

func NewWriteError(baseErr error, path string, details string) *WriteError {
	return &WriteError{
		Err:     baseErr,
		Path:    path,
		Details: details,
	}
}

// ConfigError indica argumentos ou configuração inválidos
type ConfigError struct {
	Err     error
	Field   string
	Details string
}

func (e *ConfigError) Error() string {
	details := e.Details
	if e.Field != "" {
		details = strings.TrimSpace(fmt.Sprintf("%s %s", e.Field, e.Details))
	}
	return formatStageError(ErrConfig, e.Err, details)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func NewConfigError(baseErr error, field string, details string) *ConfigError {
	return &ConfigError{
		Err:     baseErr,
		Field:   field,
		Details: details,
	}
}

func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

func IsWriteError(err error) bool {
	var writeErr *WriteError
	return errors.As(err, &writeErr)
}

func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

func formatStageError(stage error, cause error, details string) string {
	msg := stage.Error()
	if details != "" {
		msg = fmt.Sprintf("%s: %s", msg, details)
	}
	if cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, cause.Error())
	}
	return msg
}
