package rest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatorWalksAllPages(t *testing.T) {
	var visited []int
	p := NewPaginator(func(ctx context.Context, page int) (bool, error) {
		visited = append(visited, page)
		return page < 2, nil
	})

	require.NoError(t, p.All(context.Background()))
	assert.Equal(t, []int{0, 1, 2}, visited)
}

func TestPaginatorPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	p := NewPaginator(func(ctx context.Context, page int) (bool, error) {
		return false, boom
	})

	assert.ErrorIs(t, p.All(context.Background()), boom)
}

func TestPaginatorHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pages := 0
	p := NewPaginator(func(ctx context.Context, page int) (bool, error) {
		pages++
		cancel()
		return true, nil
	})

	assert.ErrorIs(t, p.All(ctx), context.Canceled)
	assert.Equal(t, 1, pages)
}

func TestCursorFollowsTokens(t *testing.T) {
	var seen []string
	c := NewCursor(func(ctx context.Context, cursor string) (string, error) {
		seen = append(seen, cursor)
		switch cursor {
		case "":
			return "abc", nil
		case "abc":
			return "def", nil
		default:
			return "", ErrNoNextPage
		}
	})

	require.NoError(t, c.All(context.Background()))
	assert.Equal(t, []string{"", "abc", "def"}, seen)
}

func TestCursorStopsOnEmptyToken(t *testing.T) {
	calls := 0
	c := NewCursor(func(ctx context.Context, cursor string) (string, error) {
		calls++
		return "", nil
	})

	require.NoError(t, c.All(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCursorStopsOnRepeatedToken(t *testing.T) {
	calls := 0
	c := NewCursor(func(ctx context.Context, cursor string) (string, error) {
		calls++
		return "same", nil
	})

	require.NoError(t, c.All(context.Background()))
	assert.Equal(t, 2, calls)
}
