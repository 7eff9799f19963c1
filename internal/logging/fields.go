package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldFeed       = "feed"
	FieldAttempt    = "attempt"
	FieldKind       = "kind"
	FieldSource     = "source"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldURL        = "url"
	FieldDurationMS = "duration_ms"
)
