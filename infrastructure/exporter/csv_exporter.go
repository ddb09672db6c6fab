package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/vfg2006/ga4-traffic-export/internal/config"
	"github.com/vfg2006/ga4-traffic-export/internal/domain"
	"github.com/vfg2006/ga4-traffic-export/pkg/log"
	"github.com/vfg2006/ga4-traffic-export/pkg/utils"
)

const filePrefix = "ga_4_traffic_sources"

type CSVExporter struct {
	fs        afero.Fs
	outputDir string
	logger    log.Logger
}

func NewCSVExporter(cfg *config.Config, fs afero.Fs, logger log.Logger) *CSVExporter {
	outputDir := cfg.Export.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	return &CSVExporter{
		fs:        fs,
		outputDir: outputDir,
		logger:    logger,
	}
}

// FileName deriva o nome do arquivo do período, trocando "-" por "_" nas datas
func FileName(dateRange domain.DateRange) string {
	start := strings.ReplaceAll(dateRange.StartString(), "-", "_")
	end := strings.ReplaceAll(dateRange.EndString(), "-", "_")

	return fmt.Sprintf("%s_%s_to_%s.csv", filePrefix, start, end)
}

// Export grava o resultado em um arquivo temporário e o renomeia sobre o destino.
// Em caso de falha o destino anterior, se existir, não é alterado.
func (e *CSVExporter) Export(result *domain.ReportResult, dateRange domain.DateRange) (string, error) {
	target := filepath.Join(e.outputDir, FileName(dateRange))
	logger := e.logger.WithField("file", target)

	if err := e.fs.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", domain.NewWriteError(err, target, "creating output directory")
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return "", domain.NewWriteError(err, target, "generating temp file name")
	}
	tmp := fmt.Sprintf("%s.tmp-%s", target, suffix)

	if err := e.writeFile(tmp, result); err != nil {
		if removeErr := e.fs.Remove(tmp); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.WithError(removeErr).Warn("export: failed to remove temp file")
		}
		logger.WithError(err).Error("Failed to save data to CSV")
		return "", domain.NewWriteError(err, target, "")
	}

	if err := e.fs.Rename(tmp, target); err != nil {
		_ = e.fs.Remove(tmp)
		logger.WithError(err).Error("Failed to save data to CSV")
		return "", domain.NewWriteError(err, target, "renaming temp file")
	}

	rows := 0
	if result != nil {
		rows = len(result.Rows)
	}
	logger.WithField("row_count", rows).Debug("export: csv written")

	return target, nil
}

func (e *CSVExporter) writeFile(path string, result *domain.ReportResult) (err error) {
	file, err := e.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(domain.CSVHeader); err != nil {
		return err
	}

	if result != nil {
		for _, row := range result.Rows {
			record, err := domain.NewCSVRecord(row)
			if err != nil {
				return err
			}
			if err := writer.Write(record.Fields()); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return file.Sync()
}
