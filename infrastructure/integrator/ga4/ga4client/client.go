package ga4client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/vfg2006/ga4-traffic-export/internal/config"
	"github.com/vfg2006/ga4-traffic-export/internal/domain"
	"github.com/vfg2006/ga4-traffic-export/pkg/log"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"
)

type Client interface {
	RunReport(ctx context.Context, query domain.ReportQuery) (*analyticsdata.RunReportResponse, error)
}

type GA4Client struct {
	service *analyticsdata.Service
}

// NewClient cria o cliente da Data API autenticado com as credenciais carregadas
func NewClient(ctx context.Context, cfg *config.Config, creds *Credentials) (Client, error) {
	opts := []option.ClientOption{
		option.WithTokenSource(creds.TokenSource),
	}

	if cfg.GA4.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.GA4.Endpoint))
	}

	return NewClientWithOptions(ctx, opts...)
}

// NewClientWithOptions permite apontar o cliente para outro endpoint ou http.Client
func NewClientWithOptions(ctx context.Context, opts ...option.ClientOption) (Client, error) {
	service, err := analyticsdata.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "ga4: create analytics data service")
	}

	return &GA4Client{service: service}, nil
}

// Authenticator carrega a chave da conta de serviço e devolve um Client pronto para uso
type Authenticator struct {
	cfg        *config.Config
	fs         afero.Fs
	httpClient *http.Client
	logger     log.Logger
}

func NewAuthenticator(cfg *config.Config, fs afero.Fs, logger log.Logger) *Authenticator {
	return &Authenticator{
		cfg:    cfg,
		fs:     fs,
		logger: logger,
	}
}

// WithHTTPClient define o http.Client usado na troca de token
func (a *Authenticator) WithHTTPClient(client *http.Client) *Authenticator {
	a.httpClient = client
	return a
}

// tokenHTTPClient limita cada troca de token ao GA4_REQUEST_TIMEOUT, inclusive
// as renovações feitas depois do Load
func (a *Authenticator) tokenHTTPClient() *http.Client {
	client := &http.Client{}
	if a.httpClient != nil {
		copied := *a.httpClient
		client = &copied
	}

	if client.Timeout == 0 {
		client.Timeout = a.cfg.GA4.RequestTimeout
	}

	return client
}

func (a *Authenticator) Load(ctx context.Context) (Client, error) {
	logger := a.logger.WithContext(ctx).WithField("credentials_file", a.cfg.GA4.CredentialsFile)

	ctx = contextWithHTTPClient(ctx, a.tokenHTTPClient())

	creds, err := LoadCredentials(ctx, a.fs, a.cfg.GA4.CredentialsFile)
	if err != nil {
		logger.WithError(err).Error("Authentication failed")
		return nil, err
	}

	logger.WithField("client_email", creds.ClientEmail).Info("Authentication successful!")
	logger.Debugf("Access token received: %s", creds.TokenPreview)

	client, err := NewClient(ctx, a.cfg, creds)
	if err != nil {
		logger.WithError(err).Error("Authentication failed")
		return nil, domain.NewAuthenticationError(err, a.cfg.GA4.CredentialsFile, "creating analytics data client")
	}

	return client, nil
}
