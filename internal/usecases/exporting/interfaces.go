package exporting

import (
	"context"

	"github.com/vfg2006/ga4-traffic-export/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/ga4-traffic-export/internal/domain"
)

// CredentialLoader define a interface para obter um cliente GA4 autenticado
type CredentialLoader interface {
	// Load lê a chave da conta de serviço e devolve um cliente pronto para consultas
	Load(ctx context.Context) (ga4client.Client, error)
}

// ReportFetcher define a interface para buscar o relatório de origens de tráfego
type ReportFetcher interface {
	// FetchReport executa uma única consulta para a property e o período informados
	FetchReport(ctx context.Context, client ga4client.Client, propertyID string, dateRange domain.DateRange) (*domain.ReportResult, error)
}

// CSVExporter define a interface para gravar o relatório em disco
type CSVExporter interface {
	// Export grava o resultado e retorna o caminho do arquivo criado
	Export(result *domain.ReportResult, dateRange domain.DateRange) (string, error)
}
