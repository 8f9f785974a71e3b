package validation

import (
	"errors"
	"reflect"
	"sort"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/parsererror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator applies the strict rule set declared by the validate tags on
// models.Transaction.
type Validator struct {
	validate *validator.Validate
	logger   logging.Logger
}

// NewValidator creates a Validator. A nil logger selects the default logger.
func NewValidator(logger logging.Logger) *Validator {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	return &Validator{
		validate: v,
		logger:   logging.OrDefault(logger),
	}
}

// decimalValue exposes decimal.Decimal fields to numeric rules such as gt=0.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// CheckTransaction returns nil when tx satisfies every strict rule, or a
// *parsererror.ValidationError describing the first violation.
func (v *Validator) CheckTransaction(tx models.Transaction) error {
	err := v.validate.Struct(tx)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &parsererror.ValidationError{
			TransactionID: tx.TransactionID,
			Field:         fieldErrs[0].StructField(),
			Rule:          fieldErrs[0].Tag(),
		}
	}
	return err
}

// ValidateAndFilter drops records that break a strict rule, then applies the
// region filter and finally the inclusive amount range on Quantity × UnitPrice.
// It returns the surviving records, the number of invalid records and a
// summary of what each step removed.
func (v *Validator) ValidateAndFilter(txs []models.Transaction, opts models.FilterOptions) ([]models.Transaction, int, models.FilterSummary) {
	summary := models.FilterSummary{TotalInput: len(txs)}

	valid := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if err := v.CheckTransaction(tx); err != nil {
			summary.Invalid++
			v.logger.WithError(err).Debug("Rejected transaction",
				logging.F(logging.FieldTransactionID, tx.TransactionID))
			continue
		}
		valid = append(valid, tx)
	}

	v.logAvailableOptions(valid)

	filtered := valid
	if opts.Region != "" {
		before := len(filtered)
		filtered = filterByRegion(filtered, opts.Region)
		summary.FilteredByRegion = before - len(filtered)
	}

	if opts.MinAmount != nil || opts.MaxAmount != nil {
		before := len(filtered)
		filtered = filterByAmount(filtered, opts.MinAmount, opts.MaxAmount)
		summary.FilteredByAmount = before - len(filtered)
	}

	summary.FinalCount = len(filtered)
	v.logger.Info("Validation and filtering complete",
		logging.F("total_input", summary.TotalInput),
		logging.F(logging.FieldInvalidCount, summary.Invalid),
		logging.F("filtered_by_region", summary.FilteredByRegion),
		logging.F("filtered_by_amount", summary.FilteredByAmount),
		logging.F("final_count", summary.FinalCount))

	return filtered, summary.Invalid, summary
}

func (v *Validator) logAvailableOptions(valid []models.Transaction) {
	if len(valid) == 0 {
		v.logger.Info("No valid transactions to filter")
		return
	}

	regions := make(map[string]struct{})
	minAmount, maxAmount := valid[0].Revenue(), valid[0].Revenue()
	for _, tx := range valid {
		regions[tx.Region] = struct{}{}
		amount := tx.Revenue()
		if amount.LessThan(minAmount) {
			minAmount = amount
		}
		if amount.GreaterThan(maxAmount) {
			maxAmount = amount
		}
	}

	names := make([]string, 0, len(regions))
	for r := range regions {
		names = append(names, r)
	}
	sort.Strings(names)

	v.logger.Info("Available filter options",
		logging.F("regions", names),
		logging.F("min_amount", minAmount.String()),
		logging.F("max_amount", maxAmount.String()))
}

func filterByRegion(txs []models.Transaction, region string) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Region == region {
			out = append(out, tx)
		}
	}
	return out
}

func filterByAmount(txs []models.Transaction, minAmount, maxAmount *decimal.Decimal) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		amount := tx.Revenue()
		if minAmount != nil && amount.LessThan(*minAmount) {
			continue
		}
		if maxAmount != nil && amount.GreaterThan(*maxAmount) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
