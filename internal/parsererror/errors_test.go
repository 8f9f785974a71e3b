package parsererror

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "quantity not an integer",
			err: &ParseError{
				Parser: "sales",
				Field:  "Quantity",
				Value:  "two",
				Err:    errors.New("invalid syntax"),
			},
			expected: "sales: failed to parse Quantity='two': invalid syntax",
		},
		{
			name: "empty value",
			err: &ParseError{
				Parser: "sales",
				Field:  "UnitPrice",
				Value:  "",
				Err:    errors.New("empty price"),
			},
			expected: "sales: failed to parse UnitPrice='': empty price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{Parser: "sales", Field: "fields", Value: "a|b", Err: originalErr}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{TransactionID: "X002", Field: "TransactionID", Rule: "startswith"}
	assert.Equal(t, "transaction 'X002' failed validation: field TransactionID violates rule 'startswith'", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name:     "without snippet",
			err:      &InvalidFormatError{FilePath: "sales.txt", ExpectedFormat: "utf-8, iso-8859-1 or windows-1252 text", Msg: "cannot decode"},
			expected: "invalid format in file 'sales.txt': cannot decode. Expected: utf-8, iso-8859-1 or windows-1252 text",
		},
		{
			name:     "with snippet",
			err:      &InvalidFormatError{FilePath: "sales.txt", ExpectedFormat: "text", Msg: "binary", ActualContentSnippet: "\\x00"},
			expected: "invalid format in file 'sales.txt': binary. Expected: text. Content snippet: '\\x00'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestStageError(t *testing.T) {
	wrapped := fmt.Errorf("reading input: %w", os.ErrNotExist)
	err := &StageError{Stage: "read", Err: wrapped}

	assert.Equal(t, "stage read failed: reading input: file does not exist", err.Error())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var stageErr *StageError
	require.True(t, errors.As(fmt.Errorf("run: %w", err), &stageErr))
	assert.Equal(t, "read", stageErr.Stage)
}
