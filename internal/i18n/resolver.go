package i18n

import "golang.org/x/text/language"

var supportedTags = []language.Tag{
	language.English,
	language.Turkish,
}

var matcher = language.NewMatcher(supportedTags)

// Resolve maps an Accept-Language header value to a supported locale key.
// Malformed, empty or unsupported hints resolve to the default locale.
func Resolve(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return Locales()[idx]
}
