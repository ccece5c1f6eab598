package web

import (
	"golang.org/x/text/message"

	"github.com/louisbranch/password-sheet/internal/platform/i18n"
)

// PageParams feeds the information page.
type PageParams struct {
	Lang          string
	Loc           *message.Printer
	DownloadURL   string
	RepositoryURL string
}

// T returns the localized copy for key, falling back to the default language.
func (p PageParams) T(key string) string {
	loc := p.Loc
	if loc == nil {
		loc = i18n.Printer(i18n.Default())
	}
	return loc.Sprintf(key)
}

var featureKeys = []string{
	i18n.KeyFeatureCut,
	i18n.KeyFeatureGlyphs,
	i18n.KeyFeatureBalance,
	i18n.KeyFeatureSecure,
}
