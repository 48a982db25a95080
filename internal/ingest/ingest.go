// Package ingest loads supplier CSV price lists into the parts store.
// Suppliers publish heterogeneous files: headers vary, delimiters vary,
// numbers come in European formats, and warehouse codes sometimes live in
// the file name instead of a column. The pipeline normalizes all of that
// into domain.Part records and writes them in batches.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/domain"
)

const defaultBatchSize = 500

var errNoPartNumberColumn = errors.New("no part number column detected")

// Sink receives normalized parts in batches.
type Sink interface {
	PutBatch(ctx context.Context, parts []domain.Part) error
}

// FileReport describes the outcome of one price list.
type FileReport struct {
	File    string
	Records int64
	Skipped int64
	Err     error
}

// Report aggregates a directory run.
type Report struct {
	Files   []FileReport
	Records int64
	Took    time.Duration
}

// Failed returns the file reports that carry an error.
func (r Report) Failed() []FileReport {
	var failed []FileReport
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Ingestor streams CSV price lists into a sink.
type Ingestor struct {
	sink      Sink
	logger    *zap.Logger
	batchSize int
}

// New creates an ingestor.
func New(sink Sink, logger *zap.Logger) *Ingestor {
	return &Ingestor{sink: sink, logger: logger, batchSize: defaultBatchSize}
}

// WithBatchSize overrides the sink batch size.
func (ing *Ingestor) WithBatchSize(n int) *Ingestor {
	if n > 0 {
		ing.batchSize = n
	}
	return ing
}

// IngestDir processes every .csv file in dir, in file-name order so runs
// are reproducible. A broken file fails its own report, not the run; the
// run errors only when no file produced any records.
func (ing *Ingestor) IngestDir(ctx context.Context, dir string) (Report, error) {
	start := time.Now()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Report{}, fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return Report{}, fmt.Errorf("no csv files in %s", dir)
	}
	sort.Strings(files)

	report := Report{Files: make([]FileReport, 0, len(files))}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		fr := ing.IngestFile(ctx, path)
		report.Files = append(report.Files, fr)
		report.Records += fr.Records

		if fr.Err != nil {
			ing.logger.Warn("price list failed",
				zap.String("file", fr.File), zap.Error(fr.Err))
			continue
		}
		ing.logger.Info("price list ingested",
			zap.String("file", fr.File),
			zap.Int64("records", fr.Records),
			zap.Int64("skipped", fr.Skipped))
	}

	report.Took = time.Since(start)
	if report.Records == 0 {
		return report, errors.New("no records ingested")
	}
	return report, nil
}

// IngestFile processes a single price list.
func (ing *Ingestor) IngestFile(ctx context.Context, path string) FileReport {
	fr := FileReport{File: filepath.Base(path)}

	f, err := os.Open(path)
	if err != nil {
		fr.Err = fmt.Errorf("open: %w", err)
		return fr
	}
	defer f.Close()

	delim, err := detectDelimiter(f)
	if err != nil {
		fr.Err = fmt.Errorf("detect delimiter: %w", err)
		return fr
	}

	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		fr.Err = fmt.Errorf("read header: %w", err)
		return fr
	}
	cols := mapColumns(header)
	if cols.partNumber < 0 {
		fr.Err = errNoPartNumberColumn
		return fr
	}

	fileStockCode := stockCodeFromFilename(fr.File)

	batch := make([]domain.Part, 0, ing.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ing.sink.PutBatch(ctx, batch); err != nil {
			return fmt.Errorf("store batch: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Ragged or malformed row, skip it.
			fr.Skipped++
			continue
		}

		part, ok := rowToPart(row, cols, fileStockCode)
		if !ok {
			fr.Skipped++
			continue
		}

		batch = append(batch, part)
		fr.Records++
		if len(batch) >= ing.batchSize {
			if err := flush(); err != nil {
				fr.Err = err
				return fr
			}
		}
	}

	if err := flush(); err != nil {
		fr.Err = err
	}
	return fr
}

// rowToPart normalizes one CSV row. Rows without a part number are
// dropped; everything else gets defaults for the fields the supplier
// omitted.
func rowToPart(row []string, cols columnMap, fileStockCode string) (domain.Part, bool) {
	partNumber := field(row, cols.partNumber)
	if partNumber == "" {
		return domain.Part{}, false
	}

	stockCode := field(row, cols.stockCode)
	if stockCode == "" {
		stockCode = fileStockCode
	}
	currency := field(row, cols.currency)
	if currency == "" {
		currency = "AED"
	}
	weightUnit := field(row, cols.weightUnit)
	if weightUnit == "" {
		weightUnit = "kg"
	}
	stock := field(row, cols.stock)
	if stock == "" {
		stock = "unknown"
	}
	minOrderQty := parseCount(field(row, cols.minOrderQty))
	if minOrderQty < 1 {
		minOrderQty = 1
	}

	return domain.Part{
		PartNumber:   partNumber,
		Description:  field(row, cols.description),
		Brand:        field(row, cols.brand),
		Supplier:     field(row, cols.supplier),
		Price:        parseAmount(field(row, cols.price)),
		Currency:     currency,
		Quantity:     parseCount(field(row, cols.quantity)),
		MinOrderQty:  minOrderQty,
		Stock:        stock,
		StockCode:    stockCode,
		Weight:       parseAmount(field(row, cols.weight)),
		WeightUnit:   weightUnit,
		Volume:       parseAmount(field(row, cols.volume)),
		DeliveryDays: parseCount(field(row, cols.deliveryDays)),
		Category:     field(row, cols.category),
		Subcategory:  field(row, cols.subcategory),
	}, true
}

// stockCodeFromFilename pulls the warehouse code out of names like
// "APMG price 1 day_DS1_part1.csv".
func stockCodeFromFilename(name string) string {
	idx := strings.LastIndex(name, "_part")
	if idx < 0 {
		return ""
	}
	before := name[:idx]
	underscore := strings.LastIndexByte(before, '_')
	if underscore < 0 {
		return ""
	}
	return before[underscore+1:]
}

// detectDelimiter sniffs the first line and rewinds. Semicolon-delimited
// lists are common from European suppliers.
func detectDelimiter(f *os.File) (rune, error) {
	buf := make([]byte, 4096)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return 0, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	line := string(buf[:n])
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';', nil
	}
	return ',', nil
}
