package parcontact

// ContactMarker is the heading text of the contact block of a listing page.
const ContactMarker = "Contacter et échanger"

// ContactSection is the part of a listing page describing how to reach the
// institution.
type ContactSection struct {
	// Text is the rendered text of the ancestor element that holds the
	// emails.
	Text string

	// Emails are the addresses found in Text, in order.
	Emails []string
}

// ContactLocator finds the contact section of a listing page.
type ContactLocator interface {
	// FindContactSection returns false if the page has no contact marker or
	// no email near it. Malformed HTML is treated as having no section.
	FindContactSection(html string) (*ContactSection, bool)
}

// SiteResolver finds the institution's own website on a listing page.
type SiteResolver interface {
	// ResolveOfficialSite returns the first external http(s) link, or false.
	ResolveOfficialSite(html string) (string, bool)
}

// TextRenderer renders the full text content of a page.
type TextRenderer interface {
	RenderText(html string) string
}
