package log

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é uma interface que define os métodos de log
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// contextKey para armazenar o ID da execução no contexto
type contextKey string

// RunIDKey é a chave para armazenar o ID da execução no contexto
const RunIDKey contextKey = "run_id"
const runIDField = "run_id"

// Options define o destino e o nível do logger de uma execução
type Options struct {
	Level    string
	FilePath string    // arquivo de log em modo append; vazio desativa
	Stdout   io.Writer // nil usa os.Stdout
}

// logger implementa a interface Logger e encapsula logrus
type logger struct {
	entry *logrus.Entry
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New cria o logger de uma execução. O io.Closer retornado fecha o arquivo de log.
func New(opts Options) (Logger, io.Closer, error) {
	base := logrus.New()

	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableColors:   opts.FilePath != "",
	})

	level, levelErr := logrus.ParseLevel(opts.Level)
	if levelErr != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	var closer io.Closer = nopCloser{}
	if opts.FilePath == "" {
		base.SetOutput(stdout)
	} else {
		file, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "log: open %s", opts.FilePath)
		}
		base.SetOutput(io.MultiWriter(stdout, file))
		closer = file
	}

	if levelErr != nil {
		base.Warnf("Nível de log inválido: %s, usando 'info'", opts.Level)
	}

	return FromLogrus(base), closer, nil
}

// FromLogrus adapta uma instância de logrus, útil em testes com hooks/test
func FromLogrus(l *logrus.Logger) Logger {
	return &logger{entry: logrus.NewEntry(l)}
}

// WithField adiciona um único campo ao Logger
func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields adiciona múltiplos campos ao Logger
func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithError adiciona um erro ao Logger
func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext extrai informações do contexto para o Logger
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return l.WithField(runIDField, runID)
	}

	return l
}

// Debug loga uma mensagem no nível debug
func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

// Debugf loga uma mensagem formatada no nível debug
func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Info loga uma mensagem no nível info
func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

// Infof loga uma mensagem formatada no nível info
func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warn loga uma mensagem no nível warning
func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

// Warnf loga uma mensagem formatada no nível warning
func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error loga uma mensagem no nível error
func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

// Errorf loga uma mensagem formatada no nível error
func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// WithRunID adiciona um ID de execução ao contexto
func WithRunID(ctx context.Context) (context.Context, string) {
	runID := uuid.New().String()
	return context.WithValue(ctx, RunIDKey, runID), runID
}

// GetRunID obtém o ID da execução do contexto
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}
