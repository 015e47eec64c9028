package models

// ProcessedRecord is the per-item entry of the output report.
//
// Result is nil only when processing of Input failed; Logs then describes the
// failure instead of the success annotation.
type ProcessedRecord struct {
	Input  Item    `json:"input"`
	Result *string `json:"result"`
	Logs   string  `json:"logs"`
}

// NewProcessedRecord builds a [ProcessedRecord] from its parts.
func NewProcessedRecord(input Item, result *string, logs string) ProcessedRecord {
	return ProcessedRecord{
		Input:  input,
		Result: result,
		Logs:   logs,
	}
}

// Succeeded reports whether the record carries a transformation result.
func (r ProcessedRecord) Succeeded() bool {
	return r.Result != nil
}
