package entities

import "time"

// HistoryEntry references one read chapter. Recency is append order; the
// most recent entry sits at the end of the history slice.
type HistoryEntry struct {
	ComicID   string
	ChapterID string
	AddedAt   time.Time
}

type ReaderLists struct {
	UserID  string
	History []HistoryEntry
	Saved   []string
	Likes   []string
}

func (l ReaderLists) Clone() ReaderLists {
	l.History = append([]HistoryEntry(nil), l.History...)
	l.Saved = append([]string(nil), l.Saved...)
	l.Likes = append([]string(nil), l.Likes...)
	return l
}

func (l ReaderLists) HasSaved(comicID string) bool {
	return containsString(l.Saved, comicID)
}

func (l ReaderLists) HasLiked(comicID string) bool {
	return containsString(l.Likes, comicID)
}

func (l ReaderLists) HasChapterInHistory(chapterID string) bool {
	for _, entry := range l.History {
		if entry.ChapterID == chapterID {
			return true
		}
	}
	return false
}

func containsString(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}
