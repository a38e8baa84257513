package domain

import "regexp"

// uncheckedTask matches a bullet whose brackets contain only whitespace, e.g.
// "- [ ] task" or "  * [ ] nested". Checked items carry some non-whitespace
// marker inside the brackets; which marker counts as checked is not
// prescribed, only the absence of the unchecked shape matters.
var uncheckedTask = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+\[[ \t]*\]`)

// checkedTask matches a bullet whose brackets carry an x marker.
var checkedTask = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+\[[xX]\]`)

// HasUnfinishedTasks reports whether any line of a checklist document still
// carries an unchecked task bullet.
func HasUnfinishedTasks(document string) bool {
	return uncheckedTask.MatchString(document)
}

// TaskCounts reports how many tasks are still open and how many are checked
// off. Only display code uses these; the loop condition is
// HasUnfinishedTasks.
func TaskCounts(document string) (unchecked, checked int) {
	return len(uncheckedTask.FindAllString(document, -1)),
		len(checkedTask.FindAllString(document, -1))
}
