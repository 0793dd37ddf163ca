package htn

import (
	"fmt"
	"regexp"
)

var copySuffixPattern = regexp.MustCompile(`_copy_[0-9]*$`)
var trailingNumberPattern = regexp.MustCompile(`_[0-9]*$`)

// nextCopyName produces the name to use for an unnamed copy of oldName,
// bumping *counter as a side effect. If oldName already ends in
// "_copy_<n>", the trailing number is replaced; otherwise "_copy_<n>" is
// appended. Mirrors GTPyhop's _name_for_copy.
func nextCopyName(oldName string, counter *int) string {
	n := *counter
	*counter++
	if copySuffixPattern.MatchString(oldName) {
		return trailingNumberPattern.ReplaceAllString(oldName, fmt.Sprintf("_%d", n))
	}
	return fmt.Sprintf("%s_copy_%d", oldName, n)
}
