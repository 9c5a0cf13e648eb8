package vehicle

import (
	"strings"
	"time"
)

const vinLength = 17

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidVIN(vin string) bool {
	return len(strings.TrimSpace(vin)) == vinLength
}

func isValidYear(year int) bool {
	return year >= 1900 && year <= time.Now().Year()+1
}

func isValidStatus(status string) bool {
	switch status {
	case "active", "maintenance", "retired":
		return true
	default:
		return false
	}
}
