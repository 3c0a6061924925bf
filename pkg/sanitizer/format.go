package sanitizer

import "strings"

// NormalizeEmail lowercases and trims an address and collapses repeated
// dots in the local part. Values without exactly one "@" are only trimmed
// and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}
	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone keeps digits and a leading plus sign.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	digits := strings.ReplaceAll(phoneJunkRegex.ReplaceAllString(phone, ""), "+", "")
	if plus && digits != "" {
		return "+" + digits
	}
	return digits
}
