package api

import (
	"strconv"
	"strings"
)

//Record is a raw spreadsheet row: field name to cell value
type Record map[string]string

//Field returns the trimmed value for the given field, or "" if it is missing
func (r Record) Field(key string) string {
	return strings.TrimSpace(r[key])
}

//Float returns the value for the given field parsed as a number, or 0 if it is
//missing or malformed
func (r Record) Float(key string) float64 {
	f, err := strconv.ParseFloat(r.Field(key), 64)
	if err != nil {
		return 0
	}
	return f
}

//noValue reports whether the cell holds one of the "unset" sentinels
func noValue(s string) bool {
	return s == "" || s == "-" || s == "None"
}

//parseAssignments converts a current_assignment cell to a list of mission ids.
//Sentinel values ("", "-", "None") yield an empty list. The cell may hold a
//comma-separated list of ids; a single id is the common case.
func parseAssignments(s string) []string {
	if noValue(strings.TrimSpace(s)) {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if noValue(part) {
			continue
		}
		ids = append(ids, part)
	}
	return ids
}
