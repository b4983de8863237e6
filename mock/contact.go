package mock

import "github.com/fwojciec/parcontact"

var _ parcontact.ContactLocator = (*ContactLocator)(nil)

// ContactLocator is a mock implementation of parcontact.ContactLocator.
type ContactLocator struct {
	FindContactSectionFn func(html string) (*parcontact.ContactSection, bool)
}

func (l *ContactLocator) FindContactSection(html string) (*parcontact.ContactSection, bool) {
	return l.FindContactSectionFn(html)
}

var _ parcontact.SiteResolver = (*SiteResolver)(nil)

// SiteResolver is a mock implementation of parcontact.SiteResolver.
type SiteResolver struct {
	ResolveOfficialSiteFn func(html string) (string, bool)
}

func (r *SiteResolver) ResolveOfficialSite(html string) (string, bool) {
	return r.ResolveOfficialSiteFn(html)
}

var _ parcontact.TextRenderer = (*TextRenderer)(nil)

// TextRenderer is a mock implementation of parcontact.TextRenderer.
type TextRenderer struct {
	RenderTextFn func(html string) string
}

func (r *TextRenderer) RenderText(html string) string {
	return r.RenderTextFn(html)
}
