package rules

//go:generate go tool stringer -type=ConditionKind -output=kind_string.go

// ConditionKind discriminates the closed set of condition variants.
type ConditionKind int

const (
	_ ConditionKind = iota // skip zero value, use it as the invalid (unrecognized) kind

	KindFilenameGlob
	KindExcludeFilenameGlob
	KindFilepathGlob
	KindExcludeFilepathGlob
	KindJSONValue
)

// Condition tags as they appear in rule-set documents.
const (
	tagFilenameGlob        = "filename_glob"
	tagExcludeFilenameGlob = "exclude_filename_glob"
	tagFilepathGlob        = "filepath_glob"
	tagExcludeFilepathGlob = "exclude_filepath_glob"
	tagJSONValue           = "json_value"
)

// kindFromTag maps a document tag to its kind. Unrecognized tags map to
// the zero value; evaluation treats those as fail-closed.
func kindFromTag(tag string) ConditionKind {
	switch tag {
	case tagFilenameGlob:
		return KindFilenameGlob
	case tagExcludeFilenameGlob:
		return KindExcludeFilenameGlob
	case tagFilepathGlob:
		return KindFilepathGlob
	case tagExcludeFilepathGlob:
		return KindExcludeFilepathGlob
	case tagJSONValue:
		return KindJSONValue
	default:
		return 0
	}
}
