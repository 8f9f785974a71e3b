// Package common provides the delimited-file helpers shared by the pipeline
// writers.
package common

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"fjacquet/sales-analytics/internal/fileutils"
	"fjacquet/sales-analytics/internal/logging"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is used when a zero rune is passed to the writers.
const DefaultDelimiter = ','

func newWriter(w io.Writer, delimiter rune) *gocsv.SafeCSVWriter {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter
	return gocsv.NewSafeCSVWriter(csvWriter)
}

// rawWriter joins each record with the delimiter and writes it as one line.
// Fields are never quoted or escaped.
type rawWriter struct {
	w         *bufio.Writer
	delimiter string
	err       error
}

func newRawWriter(w io.Writer, delimiter rune) *rawWriter {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &rawWriter{w: bufio.NewWriter(w), delimiter: string(delimiter)}
}

func (r *rawWriter) Write(record []string) error {
	if r.err != nil {
		return r.err
	}
	_, r.err = r.w.WriteString(strings.Join(record, r.delimiter) + "\n")
	return r.err
}

func (r *rawWriter) Flush() {
	if err := r.w.Flush(); err != nil && r.err == nil {
		r.err = err
	}
}

func (r *rawWriter) Error() error { return r.err }

// AppendCSVFile appends rows to filePath. The header is written only when the
// file is created by this call.
func AppendCSVFile[TRow any](filePath string, rows []TRow, delimiter rune, logger logging.Logger) error {
	logger = logging.OrDefault(logger)

	file, created, err := fileutils.OpenForAppend(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file", logging.F(logging.FieldFile, filePath))
		}
	}()

	writer := newWriter(file, delimiter)
	if created {
		err = gocsv.MarshalCSV(rows, writer)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(rows, writer)
	}
	if err != nil {
		return fmt.Errorf("error appending CSV data: %w", err)
	}
	return nil
}

// WriteDelimitedFile writes rows with a header to filePath as plain
// delimiter-joined lines, replacing any previous content. Fields are
// written verbatim.
func WriteDelimitedFile[TRow any](filePath string, rows []TRow, delimiter rune, logger logging.Logger) error {
	logger = logging.OrDefault(logger)
	if rows == nil {
		rows = []TRow{}
	}

	file, err := fileutils.CreateFile(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file", logging.F(logging.FieldFile, filePath))
		}
	}()

	if err := gocsv.MarshalCSV(rows, newRawWriter(file, delimiter)); err != nil {
		return fmt.Errorf("error writing delimited data: %w", err)
	}

	logger.Debug("Wrote delimited file",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}
