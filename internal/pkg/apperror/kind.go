package apperror

// Kind classifies failures into the buckets the application reports on.
type Kind string

const (
	KindFileNotFound     Kind = "file_not_found"
	KindPermissionDenied Kind = "permission_denied"
	KindInvalidPath      Kind = "invalid_path"
	KindInvalidFilename  Kind = "invalid_filename"
	KindFileExists       Kind = "file_exists"
	KindRaceCondition    Kind = "race_condition"
	KindValidation       Kind = "validation_error"
	KindConversion       Kind = "conversion_error"
	KindNetwork          Kind = "network_error"
	KindUnknown          Kind = "unknown"
)

// Kinds lists every kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindFileNotFound,
		KindPermissionDenied,
		KindInvalidPath,
		KindInvalidFilename,
		KindFileExists,
		KindRaceCondition,
		KindValidation,
		KindConversion,
		KindNetwork,
		KindUnknown,
	}
}
