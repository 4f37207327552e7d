package model

import "time"

// Post is one item in a Hacker News listing (story, job, poll, ...).
type Post struct {
	ID       int         `json:"id" yaml:"id"`
	Title    Opt[string] `json:"title" yaml:"title"`
	URL      Opt[string] `json:"url" yaml:"url"`
	Score    Opt[int]    `json:"score" yaml:"score"`
	Comments Opt[int]    `json:"comments" yaml:"comments"`
	Time     int64       `json:"time" yaml:"time"`
	Type     string      `json:"type" yaml:"type"`
	By       string      `json:"by,omitempty" yaml:"by,omitempty"`
}

// Posted returns the submission instant.
func (p Post) Posted() time.Time {
	return time.Unix(p.Time, 0)
}

// IsStory reports whether the post is a plain story; other types get annotated.
func (p Post) IsStory() bool {
	return p.Type == "story"
}
