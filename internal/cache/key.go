package cache

import (
	"strconv"
)

// Scope names a family of cache entries.
type Scope string

const (
	ScopeArticle Scope = "article"
	ScopeAuthor  Scope = "author"
	ScopeDate    Scope = "date"
)

// Key identifies one cache entry. Keys are always built through the
// constructors below so every caller renders the same string.
type Key struct {
	Scope Scope
	Param string
}

// ArticleKey is the entry for a single article.
func ArticleKey(id int64) Key {
	return Key{Scope: ScopeArticle, Param: strconv.FormatInt(id, 10)}
}

// AuthorKey is the first-page listing of an author's articles.
func AuthorKey(ownerID int64) Key {
	return Key{Scope: ScopeAuthor, Param: strconv.FormatInt(ownerID, 10)}
}

// DateKey is the first-page listing for one dd-mm-yyyy day.
func DateKey(day string) Key {
	return Key{Scope: ScopeDate, Param: day}
}

func (k Key) String() string {
	return string(k.Scope) + ":" + k.Param
}
