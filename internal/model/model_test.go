package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStoreFieldsSerializesArrays(t *testing.T) {
	fields := Candidates.StoreFields(map[string]any{
		"id":     "cand-1",
		"name":   "Ada Lovelace",
		"skills": []string{"Go", "Python"},
		"age":    30,
	})

	require.Equal(t, "cand-1", fields["id"])
	require.Equal(t, "Ada Lovelace", fields["name"])
	require.Equal(t, 30, fields["age"])
	require.JSONEq(t, `["Go","Python"]`, fields["skills"].(string))
}

func TestDocumentFromRowParsesArrays(t *testing.T) {
	doc := Candidates.DocumentFromRow(map[string]any{
		"id":     "cand-1",
		"skills": `["Go","Python"]`,
	})

	require.Equal(t, []string{"Go", "Python"}, doc["skills"])
}

func TestDocumentFromRowParsesDates(t *testing.T) {
	doc := Jobs.DocumentFromRow(map[string]any{
		"id":         "job-1",
		"postedDate": "2026-08-01T00:00:00Z",
	})

	posted, ok := doc["postedDate"].(time.Time)
	require.True(t, ok)
	require.Equal(t, 2026, posted.Year())
	require.Equal(t, time.August, posted.Month())
}

func TestDocumentFromRowLeavesMalformedColumnsAlone(t *testing.T) {
	doc := Candidates.DocumentFromRow(map[string]any{
		"id":     "cand-1",
		"skills": "not json",
	})

	// a column that fails to parse keeps its raw value instead of vanishing
	require.Equal(t, "not json", doc["skills"])
}

func TestStoreRoundTrip(t *testing.T) {
	original := map[string]any{
		"id":             "job-1",
		"title":          "Go Developer",
		"skillsRequired": []string{"Go", "SQL"},
	}

	fields := Jobs.StoreFields(original)
	doc := Jobs.DocumentFromRow(fields)

	require.Equal(t, original["id"], doc["id"])
	require.Equal(t, original["title"], doc["title"])
	require.Equal(t, original["skillsRequired"], doc["skillsRequired"])
}

func TestCollectionByKind(t *testing.T) {
	c, ok := CollectionByKind(KindCandidate)
	require.True(t, ok)
	require.Equal(t, "candidates", c.Table)

	c, ok = CollectionByKind(KindJob)
	require.True(t, ok)
	require.Equal(t, "jobs", c.Index)

	// applications have no authoritative table
	_, ok = CollectionByKind(KindApplication)
	require.False(t, ok)
}
