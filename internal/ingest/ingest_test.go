package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/domain"
)

// --- Mocks ---

type mockSink struct {
	batches [][]domain.Part
	err     error
}

func (m *mockSink) PutBatch(_ context.Context, parts []domain.Part) error {
	if m.err != nil {
		return m.err
	}
	cp := make([]domain.Part, len(parts))
	copy(cp, parts)
	m.batches = append(m.batches, cp)
	return nil
}

func (m *mockSink) all() []domain.Part {
	var out []domain.Part
	for _, b := range m.batches {
		out = append(out, b...)
	}
	return out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// --- Tests ---

func TestIngestFile_CommaDelimited(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "acme_DXB_part1.csv",
		"Part Number,Description,Brand,Price,Qty,Delivery Days\n"+
			"RC0009,radiator cap,FEBI,36.70,120,2\n"+
			"06A115561B,oil filter,MAHLE,\"1,234.56\",4,\n"+
			",missing part number,X,1,1,1\n")

	sink := &mockSink{}
	fr := New(sink, zap.NewNop()).IngestFile(context.Background(), path)

	if fr.Err != nil {
		t.Fatalf("IngestFile: %v", fr.Err)
	}
	if fr.Records != 2 || fr.Skipped != 1 {
		t.Errorf("records/skipped = %d/%d, want 2/1", fr.Records, fr.Skipped)
	}

	parts := sink.all()
	if len(parts) != 2 {
		t.Fatalf("sink got %d parts", len(parts))
	}
	first := parts[0]
	if first.PartNumber != "RC0009" || first.Brand != "FEBI" {
		t.Errorf("first part = %+v", first)
	}
	if first.Price != 36.70 || first.Quantity != 120 || first.DeliveryDays != 2 {
		t.Errorf("numerics = %v/%d/%d", first.Price, first.Quantity, first.DeliveryDays)
	}
	if parts[1].Price != 1234.56 {
		t.Errorf("thousand-separated price = %v, want 1234.56", parts[1].Price)
	}
}

func TestIngestFile_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list_DS1_part2.csv",
		"sku,name\nABC123,some part\n")

	sink := &mockSink{}
	fr := New(sink, zap.NewNop()).IngestFile(context.Background(), path)
	if fr.Err != nil {
		t.Fatalf("IngestFile: %v", fr.Err)
	}

	p := sink.all()[0]
	if p.Currency != "AED" {
		t.Errorf("Currency = %q, want AED default", p.Currency)
	}
	if p.WeightUnit != "kg" {
		t.Errorf("WeightUnit = %q, want kg default", p.WeightUnit)
	}
	if p.Stock != "unknown" {
		t.Errorf("Stock = %q, want unknown default", p.Stock)
	}
	if p.MinOrderQty != 1 {
		t.Errorf("MinOrderQty = %d, want 1 floor", p.MinOrderQty)
	}
	if p.StockCode != "DS1" {
		t.Errorf("StockCode = %q, want DS1 from filename", p.StockCode)
	}
}

func TestIngestFile_StockCodeColumnWinsOverFilename(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list_DS1_part1.csv",
		"sku,warehouse\nABC123,SHJ\n")

	sink := &mockSink{}
	fr := New(sink, zap.NewNop()).IngestFile(context.Background(), path)
	if fr.Err != nil {
		t.Fatalf("IngestFile: %v", fr.Err)
	}
	if got := sink.all()[0].StockCode; got != "SHJ" {
		t.Errorf("StockCode = %q, want column value SHJ", got)
	}
}

func TestIngestFile_SemicolonEuropeanDecimals(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "euro.csv",
		"Vendor Code;Desc;Price;Min Lot\nXYZ9;gasket;12,34;5\n")

	sink := &mockSink{}
	fr := New(sink, zap.NewNop()).IngestFile(context.Background(), path)
	if fr.Err != nil {
		t.Fatalf("IngestFile: %v", fr.Err)
	}

	p := sink.all()[0]
	if p.PartNumber != "XYZ9" {
		t.Errorf("PartNumber = %q", p.PartNumber)
	}
	if p.Price != 12.34 {
		t.Errorf("Price = %v, want 12.34 from decimal comma", p.Price)
	}
	if p.MinOrderQty != 5 {
		t.Errorf("MinOrderQty = %d, want 5", p.MinOrderQty)
	}
}

func TestIngestFile_NoPartNumberColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.csv", "foo,bar\n1,2\n")

	fr := New(&mockSink{}, zap.NewNop()).IngestFile(context.Background(), path)
	if !errors.Is(fr.Err, errNoPartNumberColumn) {
		t.Errorf("err = %v, want errNoPartNumberColumn", fr.Err)
	}
}

func TestIngestFile_BatchFlushes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.csv",
		"sku\nA1\nA2\nA3\nA4\nA5\n")

	sink := &mockSink{}
	fr := New(sink, zap.NewNop()).WithBatchSize(2).IngestFile(context.Background(), path)
	if fr.Err != nil {
		t.Fatalf("IngestFile: %v", fr.Err)
	}
	if len(sink.batches) != 3 {
		t.Errorf("batches = %d, want 3 (2+2+1)", len(sink.batches))
	}
	if fr.Records != 5 {
		t.Errorf("Records = %d, want 5", fr.Records)
	}
}

func TestIngestFile_SinkError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "x.csv", "sku\nA1\n")

	fr := New(&mockSink{err: errors.New("redis gone")}, zap.NewNop()).
		IngestFile(context.Background(), path)
	if fr.Err == nil {
		t.Error("expected sink error to surface in the report")
	}
}

func TestIngestDir_BrokenFileDoesNotFailRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_good.csv", "sku\nA1\nA2\n")
	writeFile(t, dir, "b_bad.csv", "foo,bar\n1,2\n")
	writeFile(t, dir, "notes.txt", "not a price list")

	sink := &mockSink{}
	report, err := New(sink, zap.NewNop()).IngestDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("IngestDir: %v", err)
	}
	if report.Records != 2 {
		t.Errorf("Records = %d, want 2", report.Records)
	}
	if len(report.Files) != 2 {
		t.Errorf("Files = %d, want 2 csv files only", len(report.Files))
	}
	if failed := report.Failed(); len(failed) != 1 || failed[0].File != "b_bad.csv" {
		t.Errorf("Failed = %v, want just b_bad.csv", failed)
	}
}

func TestIngestDir_NoFiles(t *testing.T) {
	_, err := New(&mockSink{}, zap.NewNop()).IngestDir(context.Background(), t.TempDir())
	if err == nil {
		t.Error("expected error for directory without csv files")
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"":            0,
		"36.70":       36.7,
		"1,234.56":    1234.56,
		"12,34":       12.34,
		"1,234":       1234,
		"AED 99.50":   99.5,
		"$ 1,000,000": 1000000,
		"n/a":         0,
	}
	for in, want := range cases {
		if got := parseAmount(in); got != want {
			t.Errorf("parseAmount(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseCount(t *testing.T) {
	cases := map[string]int64{
		"":         0,
		"120":      120,
		"10+":      10,
		">100 pcs": 100,
		"none":     0,
	}
	for in, want := range cases {
		if got := parseCount(in); got != want {
			t.Errorf("parseCount(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStockCodeFromFilename(t *testing.T) {
	cases := map[string]string{
		"APMG price 1 day_DS1_part1.csv": "DS1",
		"list_DXB_part12.csv":            "DXB",
		"plain.csv":                      "",
		"no_underscore-part.csv":         "",
	}
	for in, want := range cases {
		if got := stockCodeFromFilename(in); got != want {
			t.Errorf("stockCodeFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapColumns_HeaderVariants(t *testing.T) {
	m := mapColumns([]string{"Vendor Code", "Title", "Manufacturer", "Cost", "QTY", "MOQ", "Warehouse", "Lead_Time"})

	if m.partNumber != 0 || m.description != 1 || m.brand != 2 {
		t.Errorf("identity columns = %d/%d/%d", m.partNumber, m.description, m.brand)
	}
	if m.price != 3 || m.quantity != 4 || m.minOrderQty != 5 {
		t.Errorf("numeric columns = %d/%d/%d", m.price, m.quantity, m.minOrderQty)
	}
	if m.stockCode != 6 || m.deliveryDays != 7 {
		t.Errorf("stockCode/delivery = %d/%d", m.stockCode, m.deliveryDays)
	}
	if m.category != -1 {
		t.Errorf("category = %d, want -1 for absent column", m.category)
	}
}
