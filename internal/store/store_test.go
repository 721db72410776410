package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-resumegen/pkg/testsupport"
)

func runContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	data := testsupport.SampleResume()

	created, err := s.Save(ctx, Record{Data: data})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, data.Achievements, got.Data.Achievements)
	assert.Equal(t, "Grace Hopper", got.Data.PersonalInfo.FullName)

	got.Data.Achievements = got.Data.Achievements[:1]
	updated, err := s.Save(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	again, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, again.Data.Achievements, 1)

	_, err = s.Save(ctx, Record{ID: "zz-named", Data: data})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "zz-named", list[1].ID)
	assert.Equal(t, "Grace Hopper", list[0].Name)

	require.NoError(t, s.Delete(ctx, created.ID))
	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, created.ID), ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	runContract(t, s)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	record, err := s.Save(ctx, Record{ID: "r1", Data: testsupport.SampleResume()})
	require.NoError(t, err)

	record.Data.Achievements[0].Title = "changed"
	got, err := s.Get(ctx, "r1")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", got.Data.Achievements[0].Title)
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	defer s.Close()
	runContract(t, s)
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("RESUMEGEN_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("RESUMEGEN_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	s, err := ConnectPostgres(ctx, url)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.pool.Exec(ctx, `TRUNCATE resumes`)
	require.NoError(t, err)
	runContract(t, s)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, "memory", "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	_, err = Open(ctx, "redis", "")
	assert.Error(t, err)

	_, err = Open(ctx, "postgres", "")
	assert.Error(t, err)
}
