package forecast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLangRoundTrip(t *testing.T) {
	for lang, token := range langTokens {
		parsed, err := ParseLang(lang.String())
		require.NoError(t, err)
		assert.Equal(t, lang, parsed, "token %q", token)
	}
}

func TestLangNorwegianAlias(t *testing.T) {
	// "no" is accepted on input only; output is always "nb".
	fromAlias, err := ParseLang("no")
	require.NoError(t, err)

	fromToken, err := ParseLang("nb")
	require.NoError(t, err)

	assert.Equal(t, LangNorwegianBokmal, fromAlias)
	assert.Equal(t, LangNorwegianBokmal, fromToken)
	assert.Equal(t, "nb", LangNorwegianBokmal.String())
}

func TestParseLangUnrecognized(t *testing.T) {
	_, err := ParseLang("xx")
	require.Error(t, err)

	var tokenErr *UnrecognizedTokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "xx", tokenErr.Token)
}

func TestLangJSON(t *testing.T) {
	type doc struct {
		No Lang `json:"no"`
		Nb Lang `json:"nb"`
		En Lang `json:"en"`
	}

	var parsed doc
	require.NoError(t, json.Unmarshal([]byte(`{"nb":"nb","no":"no","en":"en"}`), &parsed))

	assert.Equal(t, LangNorwegianBokmal, parsed.Nb)
	assert.Equal(t, LangNorwegianBokmal, parsed.No)
	assert.Equal(t, LangEnglish, parsed.En)

	// Both Norwegian fields serialize back to "nb".
	out, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nb":"nb","no":"nb","en":"en"}`, string(out))

	var reparsed doc
	require.NoError(t, json.Unmarshal(out, &reparsed))
	assert.Equal(t, parsed, reparsed)
}
