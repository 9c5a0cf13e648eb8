package user

import "strings"

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

func isValidRole(role string) bool {
	switch role {
	case "admin", "manager", "user":
		return true
	default:
		return false
	}
}
