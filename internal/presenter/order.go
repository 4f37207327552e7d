package presenter

import (
	"cmp"
	"slices"
	"strings"

	"hacker-menu/internal/model"
	"hacker-menu/internal/sortkey"
)

type ranked struct {
	rank int
	post model.Post
}

// Present returns posts ordered for key. The input is left untouched and the
// result is always non-nil. Ties are broken by ID ascending, so the order
// only depends on (posts, key).
func Present(posts []model.Post, key sortkey.Key) []model.Post {
	rs := make([]ranked, len(posts))
	for i, p := range posts {
		rs[i] = ranked{rank: i, post: p}
	}
	by := comparator(key)
	slices.SortStableFunc(rs, func(a, b ranked) int {
		if c := by(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.post.ID, b.post.ID)
	})

	out := make([]model.Post, len(rs))
	for i, r := range rs {
		out[i] = r.post
	}
	return out
}

func comparator(key sortkey.Key) func(a, b ranked) int {
	switch key {
	case sortkey.Score:
		return func(a, b ranked) int { return descOpt(a.post.Score, b.post.Score) }
	case sortkey.Comments:
		return func(a, b ranked) int { return descOpt(a.post.Comments, b.post.Comments) }
	case sortkey.Time:
		return func(a, b ranked) int { return cmp.Compare(b.post.Time, a.post.Time) }
	case sortkey.Title:
		return func(a, b ranked) int { return titleAsc(a.post.Title, b.post.Title) }
	default:
		return func(a, b ranked) int { return cmp.Compare(a.rank, b.rank) }
	}
}

// descOpt orders present values high to low, absent values last.
func descOpt(a, b model.Opt[int]) int {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case aok && bok:
		return cmp.Compare(bv, av)
	case aok:
		return -1
	case bok:
		return 1
	}
	return 0
}

func titleAsc(a, b model.Opt[string]) int {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case aok && bok:
		return cmp.Compare(strings.ToLower(av), strings.ToLower(bv))
	case aok:
		return -1
	case bok:
		return 1
	}
	return 0
}
