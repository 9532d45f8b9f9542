package apperror

// suggestionTable maps kinds to advisory remediation text shown in the
// UI. The text is never acted on programmatically.
var suggestionTable = map[Kind][]string{
	KindFileNotFound: {
		"Check that the file still exists at the listed path.",
		"Refresh the file list (F5) and try again.",
	},
	KindPermissionDenied: {
		"Check that you have write access to the folder.",
		"Close any application that may be holding the file open.",
	},
	KindInvalidPath: {
		"Check the folder path for typos or removed drives.",
	},
	KindInvalidFilename: {
		"Remove characters not allowed in filenames: < > : \" / \\ | ? *",
		"Avoid reserved device names such as CON or LPT1.",
	},
	KindFileExists: {
		"A file with the target name already exists; adjust the rename steps.",
		"Add a counter token such as {n} to make names unique.",
	},
	KindRaceCondition: {
		"The folder changed while renaming; refresh (F5) and re-apply.",
	},
	KindValidation: {
		"Review the rename steps; one of them produced an invalid value.",
	},
	KindConversion: {
		"The file could not be converted; check that it is a valid PDF.",
	},
	KindNetwork: {
		"Check the network connection to the file share.",
	},
}

// Suggestions returns the remediation text for kind, or a generic
// one-item fallback for kinds without an entry.
func Suggestions(kind Kind) []string {
	if s, ok := suggestionTable[kind]; ok {
		return s
	}
	return []string{"Retry the operation, or check the application log for details."}
}
