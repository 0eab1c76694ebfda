package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryLoggerLatestFirst(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 2", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 3", time.Millisecond, 1, nil)

	queries := ql.GetQueries()
	require.Len(t, queries, 3)
	assert.Equal(t, "SELECT 3", queries[0].SQL)
	assert.Equal(t, "SELECT 1", queries[2].SQL)
}

func TestQueryLoggerCapsSize(t *testing.T) {
	ql := NewQueryLogger(5)

	for i := 0; i < 20; i++ {
		ql.LogQuery(fmt.Sprintf("SELECT %d", i), time.Millisecond, 0, nil)
	}

	queries := ql.GetQueries()
	require.Len(t, queries, 5)
	assert.Equal(t, "SELECT 19", queries[0].SQL)
	assert.Equal(t, "SELECT 15", queries[4].SQL)
}

func TestQueryLoggerTotalOutlivesRing(t *testing.T) {
	ql := NewQueryLogger(5)

	for i := 0; i < 20; i++ {
		ql.LogQuery(fmt.Sprintf("SELECT %d", i), time.Millisecond, 0, nil)
	}

	// The ring is capped, the total is not: per-request counting diffs
	// Total so it stays correct on a busy server.
	assert.Len(t, ql.GetQueries(), 5)
	assert.Equal(t, 20, ql.Total())

	ql.Clear()
	assert.Equal(t, 20, ql.Total())

	ql.LogQuery("SELECT 20", time.Millisecond, 0, nil)
	assert.Equal(t, 21, ql.Total())
}

func TestQueryLoggerRecordsErrors(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("SELECT broken", time.Millisecond, 0, errors.New("syntax error"))

	queries := ql.GetQueries()
	require.Len(t, queries, 1)
	assert.Equal(t, "syntax error", queries[0].Error)
}

func TestQueryLoggerClear(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.Clear()
	assert.Empty(t, ql.GetQueries())

	// IDs keep counting across a clear.
	ql.LogQuery("SELECT 2", time.Millisecond, 1, nil)
	assert.Equal(t, 2, ql.GetQueries()[0].ID)
}
