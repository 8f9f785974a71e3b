package logging

// Standard field names so log lines from every stage can be filtered the same way.
const (
	FieldFile          = "file_path"
	FieldRunID         = "run_id"
	FieldStage         = "stage"
	FieldTransactionID = "transaction_id"
	FieldProductID     = "product_id"
	FieldRegion        = "region"
	FieldReason        = "reason"
	FieldLine          = "line"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldValidCount    = "valid_count"
	FieldInvalidCount  = "invalid_count"
	FieldEncoding      = "encoding"
	FieldURL           = "url"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
