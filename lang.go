package forecast

// Lang selects the language for the human-readable summary fields in the
// response.
type Lang int

const (
	LangArabic Lang = iota
	LangAzerbaijani
	LangBelarusian
	LangBulgarian
	LangBosnian
	LangCatalan
	LangCzech
	LangDanish
	LangGerman
	LangGreek
	LangEnglish
	LangSpanish
	LangEstonian
	LangFinnish
	LangFrench
	LangCroatian
	LangHungarian
	LangIndonesian
	LangIcelandic
	LangItalian
	LangJapanese
	LangGeorgian
	LangKorean
	LangCornish
	LangNorwegianBokmal
	LangDutch
	LangPolish
	LangPortuguese
	LangRomanian
	LangRussian
	LangSlovak
	LangSlovenian
	LangSerbian
	LangSwedish
	LangTetum
	LangTurkish
	LangUkrainian
	LangIgpayAtinlay
	LangSimplifiedChinese
	LangTraditionalChinese
)

var langTokens = map[Lang]string{
	LangArabic:             "ar",
	LangAzerbaijani:        "az",
	LangBelarusian:         "be",
	LangBulgarian:          "bg",
	LangBosnian:            "bs",
	LangCatalan:            "ca",
	LangCzech:              "cz",
	LangDanish:             "da",
	LangGerman:             "de",
	LangGreek:              "el",
	LangEnglish:            "en",
	LangSpanish:            "es",
	LangEstonian:           "et",
	LangFinnish:            "fi",
	LangFrench:             "fr",
	LangCroatian:           "hr",
	LangHungarian:          "hu",
	LangIndonesian:         "id",
	LangIcelandic:          "is",
	LangItalian:            "it",
	LangJapanese:           "ja",
	LangGeorgian:           "ka",
	LangKorean:             "ko",
	LangCornish:            "kw",
	LangNorwegianBokmal:    "nb",
	LangDutch:              "nl",
	LangPolish:             "pl",
	LangPortuguese:         "pt",
	LangRomanian:           "ro",
	LangRussian:            "ru",
	LangSlovak:             "sk",
	LangSlovenian:          "sl",
	LangSerbian:            "sr",
	LangSwedish:            "sv",
	LangTetum:              "tet",
	LangTurkish:            "tr",
	LangUkrainian:          "uk",
	LangIgpayAtinlay:       "x-pig-latin",
	LangSimplifiedChinese:  "zh",
	LangTraditionalChinese: "zh-tw",
}

var langValues = make(map[string]Lang, len(langTokens)+1)

func init() {
	for lang, token := range langTokens {
		langValues[token] = lang
	}
	// The API historically accepted "no" for Norwegian Bokmål. The alias is
	// input-only: encoding always emits "nb".
	langValues["no"] = LangNorwegianBokmal
}

// String returns the bare wire token for the language. NorwegianBokmal
// always encodes as "nb", regardless of which accepted token produced it.
func (l Lang) String() string {
	return langTokens[l]
}

// ParseLang decodes a wire token into a Lang. It accepts both "nb" and the
// legacy alias "no" for NorwegianBokmal.
func ParseLang(token string) (Lang, error) {
	l, ok := langValues[token]
	if !ok {
		return 0, &UnrecognizedTokenError{Kind: "lang", Token: token}
	}
	return l, nil
}

func (l Lang) MarshalText() ([]byte, error) {
	token, ok := langTokens[l]
	if !ok {
		return nil, &UnrecognizedTokenError{Kind: "lang", Token: ""}
	}
	return []byte(token), nil
}

func (l *Lang) UnmarshalText(text []byte) error {
	parsed, err := ParseLang(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
