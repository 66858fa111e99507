package entities

import "time"

type Comic struct {
	ComicID   string
	Slug      string
	Name      string
	Author    string
	Content   string
	Status    string
	ThumbURL  string
	VIP       bool
	Likes     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Chapter struct {
	ChapterID string
	ComicID   string
	Name      string
	Path      string
	Images    []string
	CreatedAt time.Time
}
