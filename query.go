package forecast

import (
	"net/url"
	"strings"
)

// queryBuilder accumulates query parameters in caller order. Parameters with
// absent values are never appended, so an empty builder encodes to "".
type queryBuilder struct {
	params []queryParam
}

type queryParam struct {
	key   string
	value string
}

// add appends a single-valued parameter.
func (q *queryBuilder) add(key, value string) {
	q.params = append(q.params, queryParam{key: key, value: value})
}

// addList appends a list-valued parameter whose tokens are comma-joined into
// one value. An empty token list appends nothing.
func (q *queryBuilder) addList(key string, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	q.add(key, strings.Join(tokens, ","))
}

// encode renders the accumulated parameters as a query string, preserving
// insertion order. Returns "" when no parameters were added.
func (q *queryBuilder) encode() string {
	if len(q.params) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, p := range q.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.key)
		sb.WriteByte('=')
		sb.WriteString(escapeQueryValue(p.value))
	}
	return sb.String()
}

// escapeQueryValue percent-encodes a query value, keeping commas literal as
// the API expects for its comma-joined list parameters.
func escapeQueryValue(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "%2C", ",")
}
