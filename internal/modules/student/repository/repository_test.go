package repository

import (
	"context"
	"testing"

	"anoa.com/schoolregistry/internal/entity"
	"anoa.com/schoolregistry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAges(t *testing.T, repo StudentRepository, ages ...int) {
	t.Helper()
	for i, age := range ages {
		require.NoError(t, repo.Create(context.Background(), &entity.Student{Name: string(rune('A' + i)), Age: age}))
	}
}

func TestAgeFilters(t *testing.T) {
	repo := NewStudentRepository(testutil.NewDB(t))
	ctx := context.Background()
	seedAges(t, repo, 11, 12, 12, 17)

	byAge, err := repo.FindByAge(ctx, 12)
	require.NoError(t, err)
	assert.Len(t, byAge, 2)

	between, err := repo.FindByAgeBetween(ctx, 12, 17)
	require.NoError(t, err)
	assert.Len(t, between, 3)

	inverted, err := repo.FindByAgeBetween(ctx, 17, 12)
	require.NoError(t, err)
	assert.Empty(t, inverted)
}

func TestAggregates(t *testing.T) {
	repo := NewStudentRepository(testutil.NewDB(t))
	ctx := context.Background()

	avg, err := repo.AverageAge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	seedAges(t, repo, 10, 11, 12, 13, 14, 15)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)

	avg, err = repo.AverageAge(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, avg, 0.0001)

	last, err := repo.FindLast(ctx, 5)
	require.NoError(t, err)
	require.Len(t, last, 5)
	assert.Equal(t, 15, last[0].Age)
	assert.Equal(t, 11, last[4].Age)
}

func TestDeleteMissingStudentIsNoop(t *testing.T) {
	repo := NewStudentRepository(testutil.NewDB(t))
	assert.NoError(t, repo.Delete(context.Background(), 1234))
}
