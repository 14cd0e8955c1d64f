package post

import (
	"errors"
	"strings"
	"time"
)

// Post is the stored blog-post document.
// 'ID' and 'Created' are assigned by the repository at insert time and never
// change afterwards. 'Author' is kept structured in storage and flattened to a
// single string on the wire (see Wire).
type Post struct {
	ID      string    `json:"id" bson:"id"`
	Title   string    `json:"title" bson:"title"`
	Content string    `json:"content" bson:"content"`
	Author  Author    `json:"author" bson:"author"`
	Created time.Time `json:"created" bson:"created"`
}

// Author is the structured first/last name pair persisted with a post.
type Author struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// Full composes the wire form of the author, "First Last".
func (a Author) Full() string {
	return a.FirstName + " " + a.LastName
}

// ErrBadAuthor is returned by ParseAuthor when a composed author string
// cannot be split into a first and last name.
var ErrBadAuthor = errors.New("author must contain a first and last name")

// ParseAuthor splits a composed "First Last" string back into its parts.
// The first space separates the first name from the rest, so multi-word
// last names survive a round trip through Full.
func ParseAuthor(s string) (Author, error) {
	s = strings.TrimSpace(s)
	first, last, ok := strings.Cut(s, " ")
	if !ok || first == "" || strings.TrimSpace(last) == "" {
		return Author{}, ErrBadAuthor
	}
	return Author{FirstName: first, LastName: strings.TrimSpace(last)}, nil
}

// WirePost is the JSON shape exchanged over HTTP. It carries exactly the keys
// id, title, content, author and created, with author as a composed string.
type WirePost struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Created time.Time `json:"created"`
}

// Wire maps the stored document to its wire representation.
func (p *Post) Wire() WirePost {
	return WirePost{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author.Full(),
		Created: p.Created,
	}
}
