package sqlite

import "strings"

func isNotNullViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "NOT NULL constraint failed")
}

func isCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "CHECK constraint failed")
}
