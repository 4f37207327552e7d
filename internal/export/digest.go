// Package export renders a presented listing as a Markdown digest.
package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"hacker-menu/internal/dispatch"
	"hacker-menu/internal/model"
	"hacker-menu/internal/render"
	"hacker-menu/internal/sortkey"
)

type Item struct {
	Title         string
	URL           string
	Badge         string
	Score         string
	Comments      string
	DiscussionURL string
	Posted        string
}

type frontmatter struct {
	Title     string `yaml:"title"`
	List      string `yaml:"list"`
	Sort      string `yaml:"sort"`
	Generated string `yaml:"generated"`
	Count     int    `yaml:"count"`
}

type data struct {
	Title       string
	Frontmatter string
	Items       []Item
}

//go:embed digest.tmpl
var digestTpl string

var compiled = template.Must(template.New("digest").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(digestTpl))

// Markdown renders posts, already in display order, as a digest.
func Markdown(posts []model.Post, list string, key sortkey.Key, now time.Time, links *dispatch.Dispatcher) (string, error) {
	title := fmt.Sprintf("Hacker News %s by %s", list, key.Label())
	fm, err := yaml.Marshal(frontmatter{
		Title:     title,
		List:      list,
		Sort:      key.String(),
		Generated: now.UTC().Format("2006-01-02 15:04"),
		Count:     len(posts),
	})
	if err != nil {
		return "", err
	}
	d := data{Title: title, Frontmatter: string(fm), Items: make([]Item, 0, len(posts))}
	for _, p := range posts {
		v := render.Row(p, now, links)
		d.Items = append(d.Items, Item{
			Title:         v.Title,
			URL:           v.TitleURL,
			Badge:         v.TypeBadge,
			Score:         v.Score,
			Comments:      v.Comments,
			DiscussionURL: v.DiscussionURL,
			Posted:        v.Timestamp,
		})
	}
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
