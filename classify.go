package parcontact

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Contacts holds one email address (or NotFound) per role.
type Contacts struct {
	General     string
	Pedagogical string
	Admin       string
}

// NoContacts returns Contacts with every role set to NotFound.
func NoContacts() Contacts {
	return Contacts{General: NotFound, Pedagogical: NotFound, Admin: NotFound}
}

var (
	pedagogicalKeywords    = []string{"pédagogique", "pedagogique"}
	administrativeKeywords = []string{"administratif", "administration"}
)

// Classify assigns the emails of a contact section to roles.
//
// Keywords are searched in the whole section text, not around each address:
// a "pédagogique" anywhere in the section makes the first address the
// pedagogical contact whatever its position. Addresses left over by the
// keyword pass are assigned by position: the first remaining one to the
// pedagogical role, the next to the administrative role. With two or more
// addresses and none left over, an unset pedagogical role takes the first
// address and an unset administrative role the second. A keyword-less
// section never fills the general role.
func Classify(sectionText string, emails []string) Contacts {
	c := NoContacts()

	text := strings.ToLower(norm.NFC.String(sectionText))
	hasPedagogical := containsAny(text, pedagogicalKeywords)
	hasAdministrative := containsAny(text, administrativeKeywords)

	var remaining []string
	for _, email := range emails {
		switch {
		case hasPedagogical && c.Pedagogical == NotFound:
			c.Pedagogical = email
		case hasAdministrative && c.Admin == NotFound:
			c.Admin = email
		case (hasPedagogical || hasAdministrative) && c.General == NotFound:
			c.General = email
		default:
			remaining = append(remaining, email)
		}
	}

	next := func(fallback string) string {
		if len(remaining) == 0 {
			return fallback
		}
		email := remaining[0]
		remaining = remaining[1:]
		return email
	}

	switch {
	case len(emails) >= 2:
		if c.Pedagogical == NotFound {
			c.Pedagogical = next(emails[0])
		}
		if c.Admin == NotFound {
			c.Admin = next(emails[1])
		}
	case len(remaining) == 1:
		if c.Pedagogical == NotFound {
			c.Pedagogical = remaining[0]
		}
	}

	return c
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
