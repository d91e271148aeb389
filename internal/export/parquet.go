package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/ovolkova/clinicgen/internal/model"
)

// WriteParquet writes the dataset as a Parquet file with the tagged
// VisitRecord schema.
func WriteParquet(path string, records []model.VisitRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet: %w", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[model.VisitRecord](f)
	if _, err := w.Write(records); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

// Reader streams VisitRecord rows out of a Parquet dataset file.
type Reader struct {
	file   *os.File
	reader *parquet.GenericReader[model.VisitRecord]
}

// OpenParquet opens a Parquet dataset file for streaming reads.
func OpenParquet(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	r := parquet.NewGenericReader[model.VisitRecord](pf)
	if err := validateSchema(r.Schema()); err != nil {
		r.Close()
		f.Close()
		return nil, err
	}
	return &Reader{file: f, reader: r}, nil
}

// NumRows returns the total number of rows in the file.
func (r *Reader) NumRows() int64 {
	return r.reader.NumRows()
}

// Read reads up to len(rows) records into the provided slice.
// Returns the number of rows read and io.EOF when done.
func (r *Reader) Read(rows []model.VisitRecord) (int, error) {
	n, err := r.reader.Read(rows)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read parquet rows: %w", err)
	}
	return n, err
}

// Close releases all resources.
func (r *Reader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}

// ReadParquet reads an entire Parquet dataset file into memory.
func ReadParquet(path string) ([]model.VisitRecord, error) {
	r, err := OpenParquet(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	records := make([]model.VisitRecord, 0, r.NumRows())
	buf := make([]model.VisitRecord, 256)
	for {
		n, err := r.Read(buf)
		records = append(records, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

// validateSchema checks that the Parquet schema carries the columns the
// validator needs.
func validateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}
	required := []string{"fio", "passport_data", "passport_country", "visit_date", "analysis_date", "payment_card"}
	for _, col := range required {
		if !columns[col] {
			return fmt.Errorf("missing required column: %s", col)
		}
	}
	return nil
}
