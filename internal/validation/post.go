package validation

import (
	"fmt"
	"strings"
)

// Post field names.
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSummary  = "summary"
	FieldCategory = "category"
	FieldAuthorID = "author_id"
)

var (
	msgTitle    = fmt.Sprintf("Title must contain one of: %s", quoteAll(TitleMarkers))
	msgContent  = fmt.Sprintf("Content must be at least %d characters long", ContentMinLength)
	msgSummary  = fmt.Sprintf("Summary must be a maximum of %d characters", SummaryMaxLength)
	msgCategory = fmt.Sprintf("Category must be either %s", strings.Join(Categories, " or "))
)

// ValidatePost checks a post payload. Every rule only fires when its field
// holds a non-empty value:
//
//   - title: PolicyViolation unless it contains one of TitleMarkers
//   - content: TooShort below ContentMinLength characters
//   - summary: TooLong above SummaryMaxLength characters
//   - category: InvalidEnum unless it is one of Categories
//   - author_id: InvalidFormat unless it is an integer (no existence check)
//
// A missing title is not an error here; the store rejects it on insert.
func ValidatePost(fields Fields) Errors {
	errs := Errors{}

	errs.optionalString(fields, FieldTitle, "Title", "clickbait", msgTitle)
	errs.optionalString(fields, FieldContent, "Content", fmt.Sprintf("min=%d", ContentMinLength), msgContent)
	errs.optionalString(fields, FieldSummary, "Summary", fmt.Sprintf("max=%d", SummaryMaxLength), msgSummary)
	errs.optionalString(fields, FieldCategory, "Category", oneOfTag(Categories), msgCategory)

	if _, _, err := fields.Int64(FieldAuthorID); err != nil {
		errs.Add(FieldAuthorID, InvalidFormat, "Author id must be an integer")
	}

	return errs
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
