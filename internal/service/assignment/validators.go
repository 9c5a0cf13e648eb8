package assignment

func isValidAssignmentStatus(status string) bool {
	switch status {
	case "active", "completed":
		return true
	default:
		return false
	}
}
