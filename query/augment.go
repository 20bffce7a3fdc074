package query

import (
	"fmt"
	"strings"

	"medassist/config"
)

// Augment prepends optional demographic context to a raw question so the
// search expression and the answer prompt can account for it. Age is free
// text and accepted verbatim; gender defaults to the unspecified option.
// With no age and the default gender the question passes through unchanged.
func Augment(question, age, gender string) string {
	if gender == "" {
		gender = config.GenderUnspecified
	}

	if age == "" && gender == config.GenderUnspecified {
		return question
	}

	return fmt.Sprintf("For a %s-year-old %s, %s", age, strings.ToLower(gender), question)
}
