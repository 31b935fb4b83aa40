package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilderEmpty(t *testing.T) {
	var q queryBuilder
	assert.Equal(t, "", q.encode())
}

func TestQueryBuilderPreservesCallerOrder(t *testing.T) {
	var q queryBuilder
	q.add("units", "us")
	q.add("lang", "ar")
	q.add("extend", "hourly")

	assert.Equal(t, "units=us&lang=ar&extend=hourly", q.encode())
}

func TestQueryBuilderListJoinedWithLiteralComma(t *testing.T) {
	var q queryBuilder
	q.addList("exclude", []string{"hourly", "daily", "alerts"})

	assert.Equal(t, "exclude=hourly,daily,alerts", q.encode())
}

func TestQueryBuilderEmptyListOmitted(t *testing.T) {
	var q queryBuilder
	q.addList("exclude", nil)
	q.add("lang", "en")

	assert.Equal(t, "lang=en", q.encode())
}

func TestQueryBuilderEscapesValues(t *testing.T) {
	var q queryBuilder
	q.add("lang", "x-pig-latin")
	q.add("note", "a b&c")

	assert.Equal(t, "lang=x-pig-latin&note=a+b%26c", q.encode())
}
