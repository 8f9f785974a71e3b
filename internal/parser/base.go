// Package parser provides the parser interfaces and the shared base embedded
// by concrete parsers.
package parser

import (
	"fjacquet/sales-analytics/internal/logging"
)

// BaseParser carries the logger shared by parser implementations.
//
// Parsers embed it:
//
//	type SalesParser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger selects the default logger.
func NewBaseParser(logger logging.Logger) BaseParser {
	return BaseParser{
		logger: logging.OrDefault(logger),
	}
}

// SetLogger replaces the logger; nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}
