package helper_util

import "strings"

// ExtractEmailDomain returns the lowercased domain part of an email address,
// or "" if the address has no domain part.
func ExtractEmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// IsPersonalEmailDomain reports whether the domain belongs to a consumer
// email provider and therefore never counts as a connected work domain.
func IsPersonalEmailDomain(domain string, personalDomains []string) bool {
	domain = strings.ToLower(domain)
	for _, personal := range personalDomains {
		if domain == strings.ToLower(personal) {
			return true
		}
	}
	return false
}
