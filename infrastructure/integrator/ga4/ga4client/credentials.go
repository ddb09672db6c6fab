package ga4client

import (
	"context"
	"net/http"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"github.com/vfg2006/ga4-traffic-export/internal/domain"
	"github.com/vfg2006/ga4-traffic-export/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AnalyticsReadonlyScope limita o token à leitura do Analytics
const AnalyticsReadonlyScope = "https://www.googleapis.com/auth/analytics.readonly"

const serviceAccountType = "service_account"

// tokenPreviewLength é quantos caracteres do token podem aparecer em log
const tokenPreviewLength = 8

// ServiceAccountKey representa os campos usados do arquivo JSON da conta de serviço
type ServiceAccountKey struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	TokenURI     string `json:"token_uri"`
}

// Credentials existe só em memória durante a execução
type Credentials struct {
	ProjectID    string
	ClientEmail  string
	TokenPreview string
	TokenSource  oauth2.TokenSource
}

func ParseServiceAccountKey(data []byte) (*ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, err
	}

	switch {
	case key.Type != serviceAccountType:
		return nil, domain.ErrInvalidCredentials
	case key.ClientEmail == "":
		return nil, domain.ErrInvalidCredentials
	case key.PrivateKey == "":
		return nil, domain.ErrInvalidCredentials
	}

	return &key, nil
}

// LoadCredentials lê a chave, monta as credenciais com escopo somente leitura
// e obtém um token para confirmar que o provedor de identidade aceita a chave.
func LoadCredentials(ctx context.Context, fs afero.Fs, path string) (*Credentials, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewAuthenticationError(domain.ErrCredentialsNotFound, path, err.Error())
		}
		return nil, domain.NewAuthenticationError(err, path, "reading key file")
	}

	key, err := ParseServiceAccountKey(data)
	if err != nil {
		return nil, domain.NewAuthenticationError(err, path, "parsing key file")
	}

	creds, err := google.CredentialsFromJSON(ctx, data, AnalyticsReadonlyScope)
	if err != nil {
		return nil, domain.NewAuthenticationError(err, path, "building credentials")
	}

	token, err := creds.TokenSource.Token()
	if err != nil {
		return nil, domain.NewAuthenticationError(domain.ErrTokenRejected, path, err.Error())
	}

	return &Credentials{
		ProjectID:    key.ProjectID,
		ClientEmail:  key.ClientEmail,
		TokenPreview: utils.MaskSecret(token.AccessToken, tokenPreviewLength),
		TokenSource:  creds.TokenSource,
	}, nil
}

func contextWithHTTPClient(ctx context.Context, client *http.Client) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, client)
}
