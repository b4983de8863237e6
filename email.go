package parcontact

import "regexp"

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

// ExtractEmails returns every email address found in text, in order of
// appearance. Repeated addresses are returned once per occurrence.
func ExtractEmails(text string) []string {
	return emailRe.FindAllString(text, -1)
}

// IsEmail reports whether s is exactly one email address.
func IsEmail(s string) bool {
	loc := emailRe.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
