package exporting

import "github.com/vfg2006/ga4-traffic-export/internal/domain"

// Códigos de saída do processo por etapa que falhou
const (
	ExitOK           = 0
	ExitUnknownError = 1
	ExitConfigError  = 2
	ExitAuthError    = 3
	ExitFetchError   = 4
	ExitWriteError   = 5
)

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case domain.IsConfigError(err):
		return ExitConfigError
	case domain.IsAuthenticationError(err):
		return ExitAuthError
	case domain.IsFetchError(err):
		return ExitFetchError
	case domain.IsWriteError(err):
		return ExitWriteError
	default:
		return ExitUnknownError
	}
}
