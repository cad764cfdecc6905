// Package paging turns paginated listing endpoints into lazy sequences.
//
// Two styles are supported. Offset pages are numbered from 1 and the listing
// ends with the first empty page. Cursor pages carry a PageInfo and the listing
// ends when HasNextPage is false.
package paging

import (
	"context"
	"iter"
)

// PageInfo is the continuation state of a cursor page.
type PageInfo struct {
	HasNextPage bool
	EndCursor   string
}

// OffsetFetch loads one numbered page.
type OffsetFetch[T any] func(ctx context.Context, page int) ([]T, error)

// CursorFetch loads the page after cursor. The first call gets an empty cursor.
type CursorFetch[T any] func(ctx context.Context, cursor string) ([]T, PageInfo, error)

// Offset yields every item of every page until a page comes back empty.
// A fetch error is yielded once and ends the sequence.
func Offset[T any](ctx context.Context, fetch OffsetFetch[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for page := 1; ; page++ {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			items, err := fetch(ctx, page)
			if err != nil {
				yield(zero, err)
				return
			}
			if len(items) == 0 {
				return
			}
			for _, it := range items {
				if !yield(it, nil) {
					return
				}
			}
		}
	}
}

// Cursor yields every item of every page, following EndCursor while
// HasNextPage is set.
func Cursor[T any](ctx context.Context, fetch CursorFetch[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var (
			zero   T
			cursor string
		)
		for {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			items, info, err := fetch(ctx, cursor)
			if err != nil {
				yield(zero, err)
				return
			}
			for _, it := range items {
				if !yield(it, nil) {
					return
				}
			}
			if !info.HasNextPage {
				return
			}
			cursor = info.EndCursor
		}
	}
}

// Collect drains seq, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for it, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}
