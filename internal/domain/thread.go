package domain

import (
	"time"

	"github.com/adiwijaya-dev/forum-api/internal/errors"
)

// TitleMaxLength is the maximum thread title length in runes.
const TitleMaxLength = 50

// NewThread is a validated thread creation payload.
type NewThread struct {
	Title string
	Body  string
	Owner string
}

var newThreadSchema = []field{
	{name: "title", kind: kindString, constraint: maxRunes("title", TitleMaxLength)},
	{name: "body", kind: kindString},
	{name: "owner", kind: kindString},
}

func ParseNewThread(p Payload) (NewThread, error) {
	if err := verifyPayload(p, newThreadSchema); err != nil {
		return NewThread{}, err
	}
	return NewThread{
		Title: stringField(p, "title"),
		Body:  stringField(p, "body"),
		Owner: stringField(p, "owner"),
	}, nil
}

// CreatedThread acknowledges a stored thread. It re-checks the
// repository-returned row so the storage boundary stays well-typed.
type CreatedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewCreatedThread(id, title, owner string) (CreatedThread, error) {
	switch {
	case id == "":
		return CreatedThread{}, errors.MissingField("id")
	case title == "":
		return CreatedThread{}, errors.MissingField("title")
	case owner == "":
		return CreatedThread{}, errors.MissingField("owner")
	}
	return CreatedThread{Id: id, Title: title, Owner: owner}, nil
}

// RawThread is a thread row as persisted, joined with its owner's username.
type RawThread struct {
	Id       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// ThreadDetail is the client-facing nested view of a thread.
type ThreadDetail struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// RenderThread attaches the assembled comment tree to the thread record.
func RenderThread(raw RawThread, comments []CommentDetail) (ThreadDetail, error) {
	switch {
	case raw.Id == "":
		return ThreadDetail{}, errors.MissingField("id")
	case raw.Username == "":
		return ThreadDetail{}, errors.MissingField("username")
	case raw.Date.IsZero():
		return ThreadDetail{}, errors.MissingField("date")
	}
	if comments == nil {
		comments = []CommentDetail{}
	}
	return ThreadDetail{
		Id:       raw.Id,
		Title:    raw.Title,
		Body:     raw.Body,
		Date:     formatDate(raw.Date),
		Username: raw.Username,
		Comments: comments,
	}, nil
}
