package ingestors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"trade-analytics/internal/models"
)

var (
	ErrMalformedLine     = errors.New("malformed line")
	ErrTooFewFields      = errors.New("too few fields")
	ErrUnparseableField  = errors.New("unparseable field")
	errNonFiniteQuantity = errors.New("quantity is not finite")
)

const (
	fieldSeparator = ","
	minFieldCount  = 8

	fieldAction    = 0
	fieldToken     = 1
	fieldTimestamp = 6
)

//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	// Parse turns one raw line into an EventRecord. Every failure wraps ErrMalformedLine.
	Parse(line string) (models.EventRecord, error)
}

type recordParser struct{}

func NewRecordParser() RecordParser {
	return recordParser{}
}

// Parse expects at least eight comma separated fields: action, token, four ignored fields,
// the raw epoch timestamp, and the quantity in the last field.
func (recordParser) Parse(line string) (models.EventRecord, error) {
	fields := strings.Split(strings.TrimSpace(line), fieldSeparator)
	if len(fields) < minFieldCount {
		return models.EventRecord{}, fmt.Errorf("%w: %w: got %d, want at least %d", ErrMalformedLine, ErrTooFewFields, len(fields), minFieldCount)
	}

	rawTimestamp := strings.TrimSpace(fields[fieldTimestamp])
	epoch, err := strconv.ParseInt(rawTimestamp, 10, 64)
	if err != nil {
		return models.EventRecord{}, fmt.Errorf("%w: %w: timestamp %q: %w", ErrMalformedLine, ErrUnparseableField, rawTimestamp, err)
	}
	timestamp, err := NormalizeTimestamp(epoch)
	if err != nil {
		return models.EventRecord{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	rawQuantity := strings.TrimSpace(fields[len(fields)-1])
	quantity, err := strconv.ParseFloat(rawQuantity, 64)
	if err != nil {
		return models.EventRecord{}, fmt.Errorf("%w: %w: quantity %q: %w", ErrMalformedLine, ErrUnparseableField, rawQuantity, err)
	}
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return models.EventRecord{}, fmt.Errorf("%w: %w: quantity %q: %w", ErrMalformedLine, ErrUnparseableField, rawQuantity, errNonFiniteQuantity)
	}

	return models.EventRecord{
		Action:    strings.TrimSpace(fields[fieldAction]),
		Token:     strings.TrimSpace(fields[fieldToken]),
		Timestamp: timestamp,
		Quantity:  quantity,
	}, nil
}
