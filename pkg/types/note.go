package types

import "time"

// Notebook is an Evernote notebook as returned by the note-store API.
type Notebook struct {
	GUID            string `json:"guid"`
	Name            string `json:"name"`
	DefaultNotebook bool   `json:"defaultNotebook"`
}

// Note is an Evernote note. Content carries the full ENML document.
type Note struct {
	GUID         string   `json:"guid,omitempty"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	NotebookGUID string   `json:"notebookGuid,omitempty"`
	TagNames     []string `json:"tagNames,omitempty"`
}

// User identifies the account a token belongs to.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// HistoryEntry is one recorded save in the local history database.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	GUID      string    `json:"guid"`
	Title     string    `json:"title"`
	Notebook  string    `json:"notebook,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Sandbox   bool      `json:"sandbox"`
	CreatedAt time.Time `json:"created_at"`
}
