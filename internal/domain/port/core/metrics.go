package core

// MetricsRecorder receives domain events worth counting
type MetricsRecorder interface {
	LedgerOperation(operation, outcome string, amount int64)
	LinkCreated(linkType string, durationKey string)
	LinkExtended(linkType string, weeks int)
	PaymentVerification(source, outcome string)
	UnknownDurationPriced(durationKey string)
	BonusClaim(outcome string)
}
