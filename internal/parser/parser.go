package parser

import (
	"io"

	"fjacquet/sales-analytics/internal/models"
)

// Parser turns an input stream into transactions.
type Parser interface {
	// Parse reads data from r and returns the transactions it contains.
	// Malformed records are skipped; only stream-level failures such as an
	// undecodable input are returned as errors.
	Parse(r io.Reader) ([]models.Transaction, error)
}

// FileParser is a Parser that can also open its input by path.
type FileParser interface {
	Parser
	ParseFile(path string) ([]models.Transaction, error)
}
