package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/retailpulse/bi_backend/internal/apperrors"
	"github.com/retailpulse/bi_backend/internal/core/domain"
	portsrepo "github.com/retailpulse/bi_backend/internal/core/ports/repositories"
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
	"github.com/retailpulse/bi_backend/internal/report"
)

// IngestionService processes upload batches: per file it detects the report
// kind from the filename, decodes the spreadsheet, parses typed records and
// bulk-inserts them stamped with the batch's reporting period.
type IngestionService struct {
	salesRepo  portsrepo.SalesFactWriter
	profitRepo portsrepo.ProfitFactRepository
	stockRepo  portsrepo.StockFactRepository
	logger     *slog.Logger
}

// NewIngestionService creates a new IngestionService.
func NewIngestionService(
	salesRepo portsrepo.SalesFactRepository,
	profitRepo portsrepo.ProfitFactRepository,
	stockRepo portsrepo.StockFactRepository,
	logger *slog.Logger,
) *IngestionService {
	return &IngestionService{
		salesRepo:  salesRepo,
		profitRepo: profitRepo,
		stockRepo:  stockRepo,
		logger:     logger,
	}
}

// Ensure implementation matches interface
var _ portssvc.IngestionSvcFacade = (*IngestionService)(nil)

// DetectReportKind maps a filename to its report kind by case-insensitive
// prefix. Anything unrecognized is ReportUnknown and gets skipped upstream.
func DetectReportKind(filename string) domain.ReportKind {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasPrefix(lower, "sales_day_book"):
		return domain.ReportSales
	case strings.HasPrefix(lower, "profit_margin_report"):
		return domain.ReportProfit
	case strings.HasPrefix(lower, "stock_ageing_analysis"):
		return domain.ReportStock
	default:
		return domain.ReportUnknown
	}
}

// IngestBatch processes the files sequentially for one (month, year) period
// and returns the total rows inserted. Unknown filenames are skipped without
// error; a file that cannot be decoded or whose insert fails aborts the
// whole batch (there is no per-file partial-success reporting).
func (s *IngestionService) IngestBatch(ctx context.Context, files []portssvc.UploadedFile, month, year int) (int64, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	var total int64
	for _, file := range files {
		kind := DetectReportKind(file.Filename)
		if kind == domain.ReportUnknown {
			s.logger.Info("Skipping unrecognized upload file", slog.String("filename", file.Filename))
			continue
		}

		grid, err := decodeGrid(file.Content)
		if err != nil {
			return total, fmt.Errorf("failed to decode spreadsheet %s: %w", file.Filename, err)
		}

		inserted, err := s.ingestGrid(ctx, grid, kind, month, year)
		if err != nil {
			return total, fmt.Errorf("failed to ingest %s: %w", file.Filename, err)
		}

		s.logger.Info("Ingested report file",
			slog.String("filename", file.Filename),
			slog.String("kind", string(kind)),
			slog.Int64("rows_inserted", inserted),
		)
		total += inserted
	}
	return total, nil
}

func (s *IngestionService) ingestGrid(ctx context.Context, grid [][]report.Cell, kind domain.ReportKind, month, year int) (int64, error) {
	switch kind {
	case domain.ReportSales:
		facts := report.ParseSales(grid)
		for i := range facts {
			facts[i].PeriodMonth = month
			facts[i].PeriodYear = year
		}
		if len(facts) == 0 {
			return 0, nil
		}
		return s.salesRepo.SaveSalesFacts(ctx, facts)
	case domain.ReportProfit:
		facts := report.ParseProfit(grid)
		for i := range facts {
			facts[i].PeriodMonth = month
			facts[i].PeriodYear = year
		}
		if len(facts) == 0 {
			return 0, nil
		}
		return s.profitRepo.SaveProfitFacts(ctx, facts)
	case domain.ReportStock:
		facts := report.ParseStock(grid)
		for i := range facts {
			facts[i].PeriodMonth = month
			facts[i].PeriodYear = year
		}
		if len(facts) == 0 {
			return 0, nil
		}
		return s.stockRepo.SaveStockFacts(ctx, facts)
	}
	return 0, nil
}

// decodeGrid opens a spreadsheet from memory and returns the first sheet as
// a grid of classified cells. Raw cell values are requested so date cells
// arrive as their numeric day serials instead of locale-formatted text.
func decodeGrid(content []byte) ([][]report.Cell, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rawRows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	grid := make([][]report.Cell, len(rawRows))
	for i, rawRow := range rawRows {
		row := make([]report.Cell, len(rawRow))
		for j, raw := range rawRow {
			row[j] = report.CellFromRaw(raw)
		}
		grid[i] = row
	}
	return grid, nil
}
