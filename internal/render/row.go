package render

import (
	"net/url"
	"strings"
	"time"

	"hacker-menu/internal/dispatch"
	"hacker-menu/internal/model"
)

// RowView is everything a row needs on screen, computed against one instant.
type RowView struct {
	ID            int
	Title         string
	TitleURL      string
	TitleExternal bool
	Score         string
	Comments      string
	TypeBadge     string
	Timestamp     string
	DiscussionURL string
	Detail        []string
}

// Row builds the view for post. Links resolve through links so the title and
// the twin-link agree on what counts as a valid external URL.
func Row(post model.Post, now time.Time, links *dispatch.Dispatcher) RowView {
	hn := links.DiscussionURL(post)
	ext, hasExt := links.ExternalURL(post)

	v := RowView{
		ID:            post.ID,
		Title:         post.Title.OrElse(TitleGlyph),
		TitleURL:      hn,
		Score:         Compact(post.Score),
		Comments:      Compact(post.Comments),
		Timestamp:     Relative(post.Posted(), now),
		DiscussionURL: hn,
	}
	if hasExt {
		v.TitleURL = ext
		v.TitleExternal = true
	}
	if !post.IsStory() {
		v.TypeBadge = strings.ToUpper(post.Type)
	}
	v.Detail = detailLines(post, ext, hasExt, hn)
	return v
}

func detailLines(post model.Post, ext string, hasExt bool, hn string) []string {
	var lines []string
	if title, ok := post.Title.Get(); ok {
		lines = append(lines, title)
	}
	if hasExt {
		lines = append(lines, standardize(ext))
	}
	lines = append(lines,
		strings.ToUpper(post.Type)+" | "+standardize(hn),
		"▲ "+Full(post.Score)+"  ✉ "+Full(post.Comments),
		post.Posted().UTC().Format("2006-01-02 15:04:05 MST"),
	)
	return lines
}

// standardize cleans dot segments out of the path, like URL.standardized.
func standardize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.ResolveReference(&url.URL{}).String()
}
