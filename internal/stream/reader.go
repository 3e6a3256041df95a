package stream

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ruralpay/txengine/internal/models"
	"github.com/ruralpay/txengine/internal/services"
)

// rawRecord is one CSV row before parsing, fields still as trimmed strings.
type rawRecord struct {
	Type   string `validate:"required,oneof=deposit withdrawal dispute resolve chargeback"`
	Client string `validate:"required,number"`
	Tx     string `validate:"required,number"`
	Amount string
}

// Reader yields parsed transactions from a delimited input stream, one at a
// time in file order. Any malformed row is a fatal error; the caller is
// expected to abort the run.
type Reader struct {
	csv       *csv.Reader
	validator *services.ValidationHelper
	line      int
	skipped   bool // header row consumed
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // dispute-family rows may omit the amount column
	return &Reader{
		csv:       cr,
		validator: services.NewValidationHelper(),
	}
}

// Next returns the next transaction, io.EOF at end of stream, or a parse
// error describing the offending line.
func (r *Reader) Next() (*models.Transaction, error) {
	if !r.skipped {
		r.skipped = true
		r.line++
		if _, err := r.csv.Read(); err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("line %d: reading header: %w", r.line, err)
		}
	}

	row, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("line %d: %w", r.line+1, err)
	}
	r.line++

	raw, err := rowToRaw(row)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", r.line, err)
	}
	if err := r.validator.ValidateStruct(raw); err != nil {
		return nil, fmt.Errorf("line %d: %w", r.line, err)
	}

	tx, err := raw.parse()
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", r.line, err)
	}
	return tx, nil
}

func rowToRaw(row []string) (*rawRecord, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("expected at least 3 columns, got %d", len(row))
	}
	raw := &rawRecord{
		Type:   strings.TrimSpace(row[0]),
		Client: strings.TrimSpace(row[1]),
		Tx:     strings.TrimSpace(row[2]),
	}
	if len(row) > 3 {
		raw.Amount = strings.TrimSpace(row[3])
	}
	return raw, nil
}

func (raw *rawRecord) parse() (*models.Transaction, error) {
	kind, err := models.ParseKind(raw.Type)
	if err != nil {
		return nil, err
	}

	client, err := strconv.ParseUint(raw.Client, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client id %q: %w", raw.Client, err)
	}

	id, err := strconv.ParseUint(raw.Tx, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id %q: %w", raw.Tx, err)
	}

	tx := &models.Transaction{
		ID:       uint32(id),
		Kind:     kind,
		ClientID: uint16(client),
	}

	if kind.Monetary() {
		if raw.Amount == "" {
			return nil, fmt.Errorf("%s requires an amount", kind)
		}
		amount, err := decimal.NewFromString(raw.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", raw.Amount, err)
		}
		tx.Amount = amount
	}

	return tx, nil
}
