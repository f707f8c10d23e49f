package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmptyStore(t *testing.T) {
	s := newTestStore(t)

	records, err := s.List("")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListNoMatchIsEmptyNotError(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add("github", "alice", "")
	require.NoError(t, err)

	records, err := s.List("gitlab")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListFiltersByExactService(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add("github", "alice", "")
	require.NoError(t, err)
	_, err = s.Add("gitlab", "alice", "")
	require.NoError(t, err)
	_, err = s.Add("github", "bob", "")
	require.NoError(t, err)

	records, err := s.List("github")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "alice", records[0].Username)
	assert.Equal(t, "bob", records[1].Username)

	// Exact match only - no prefix or case-folded hits.
	records, err = s.List("git")
	require.NoError(t, err)
	assert.Empty(t, records)
	records, err = s.List("GitHub")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRoundTripPreservesOrderAndValues(t *testing.T) {
	s := newTestStore(t)

	want := []struct{ service, username, pw string }{
		{"github", "alice", "plain"},
		{"gitlab", "bob", "with,comma"},
		{"bitbucket", "carol", `with"quote`},
		{"sourcehut", "dave", "with\nnewline"},
	}
	for _, w := range want {
		_, err := s.Add(w.service, w.username, w.pw)
		require.NoError(t, err)
	}

	records, err := s.List("")
	require.NoError(t, err)
	require.Len(t, records, len(want))
	for i, w := range want {
		assert.Equal(t, w.service, records[i].Service)
		assert.Equal(t, w.username, records[i].Username)
		assert.Equal(t, w.pw, records[i].Password)
	}
	// Timestamps come back at second precision in insertion order.
	assert.Equal(t, "2024-01-15 10:30:00", records[0].FormatCreatedAt())
	assert.Equal(t, "2024-01-15 10:30:03", records[3].FormatCreatedAt())
}

func TestListHonorsExternalEdits(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add("github", "alice", "x")
	require.NoError(t, err)

	// Another invocation (simulated by hand) replaces the file wholesale.
	err = os.WriteFile(s.Path(),
		[]byte("service,username,password,created_at\n"+
			"gitlab,bob,y,2024-02-01 08:00:00\n"), 0o600)
	require.NoError(t, err)

	records, err := s.List("")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "gitlab", records[0].Service)
}

func TestListMissingFileIsStorageError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.Remove(s.Path()))

	_, err := s.List("")
	require.Error(t, err)
	assert.True(t, IsStorageIO(err))
}

func TestListMalformedHeader(t *testing.T) {
	s := newTestStore(t)

	err := os.WriteFile(s.Path(), []byte("service,username,password\n"), 0o600)
	require.NoError(t, err)

	_, listErr := s.List("")
	require.Error(t, listErr)
	assert.True(t, IsStorageIO(listErr))
	assert.Contains(t, listErr.Error(), "malformed store header")
}

func TestListMalformedRow(t *testing.T) {
	s := newTestStore(t)

	err := os.WriteFile(s.Path(),
		[]byte("service,username,password,created_at\n"+
			"github,alice\n"), 0o600)
	require.NoError(t, err)

	_, listErr := s.List("")
	require.Error(t, listErr)
	assert.True(t, IsStorageIO(listErr))
}

func TestListMalformedTimestamp(t *testing.T) {
	s := newTestStore(t)

	err := os.WriteFile(s.Path(),
		[]byte("service,username,password,created_at\n"+
			"github,alice,x,not-a-time\n"), 0o600)
	require.NoError(t, err)

	_, listErr := s.List("")
	require.Error(t, listErr)
	assert.True(t, IsStorageIO(listErr))
	assert.Contains(t, listErr.Error(), "created_at")
}
