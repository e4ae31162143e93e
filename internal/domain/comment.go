package domain

import (
	"time"

	"github.com/adiwijaya-dev/forum-api/internal/errors"
)

// CommentDeletedPlaceholder replaces a deleted comment's content at render
// time. The stored content is never overwritten.
const CommentDeletedPlaceholder = "**komentar telah dihapus**"

// NewComment is a validated comment creation payload.
type NewComment struct {
	ThreadId string
	Content  string
	Owner    string
}

var newCommentSchema = []field{
	{name: "thread_id", kind: kindString},
	{name: "content", kind: kindString},
	{name: "owner", kind: kindString},
}

func ParseNewComment(p Payload) (NewComment, error) {
	if err := verifyPayload(p, newCommentSchema); err != nil {
		return NewComment{}, err
	}
	return NewComment{
		ThreadId: stringField(p, "thread_id"),
		Content:  stringField(p, "content"),
		Owner:    stringField(p, "owner"),
	}, nil
}

// DeleteComment is a validated comment deletion payload. The delete path
// validates separately from the add path.
type DeleteComment struct {
	ThreadId  string
	CommentId string
	Owner     string
}

var deleteCommentSchema = []field{
	{name: "thread_id", kind: kindString},
	{name: "comment_id", kind: kindString},
	{name: "owner", kind: kindString},
}

func ParseDeleteComment(p Payload) (DeleteComment, error) {
	if err := verifyPayload(p, deleteCommentSchema); err != nil {
		return DeleteComment{}, err
	}
	return DeleteComment{
		ThreadId:  stringField(p, "thread_id"),
		CommentId: stringField(p, "comment_id"),
		Owner:     stringField(p, "owner"),
	}, nil
}

// CreatedComment acknowledges a stored comment.
type CreatedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewCreatedComment(id, content, owner string) (CreatedComment, error) {
	switch {
	case id == "":
		return CreatedComment{}, errors.MissingField("id")
	case owner == "":
		return CreatedComment{}, errors.MissingField("owner")
	}
	return CreatedComment{Id: id, Content: content, Owner: owner}, nil
}

// RawComment is a comment row as persisted, joined with its owner's username.
// DeletedAt carries the soft-delete marker; content itself is never mutated.
type RawComment struct {
	Id        string
	Username  string
	Date      time.Time
	Content   string
	DeletedAt *time.Time
}

// CommentView is a single rendered comment.
type CommentView struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

// CommentDetail is a rendered comment with its replies and like tally.
type CommentDetail struct {
	CommentView
	Replies   []ReplyView `json:"replies"`
	LikeCount int         `json:"likeCount"`
}

// RenderComments produces one view per raw comment, preserving input order.
// Deleted comments stay visible as placeholders; only their content is
// redacted. Rows missing identity fields are rejected rather than skipped.
func RenderComments(rawComments []RawComment) ([]CommentView, error) {
	views := make([]CommentView, 0, len(rawComments))
	for _, c := range rawComments {
		switch {
		case c.Id == "":
			return nil, errors.MissingField("id")
		case c.Username == "":
			return nil, errors.MissingField("username")
		case c.Date.IsZero():
			return nil, errors.MissingField("date")
		}
		content := c.Content
		if c.DeletedAt != nil {
			content = CommentDeletedPlaceholder
		}
		views = append(views, CommentView{
			Id:       c.Id,
			Username: c.Username,
			Date:     formatDate(c.Date),
			Content:  content,
		})
	}
	return views, nil
}

// formatDate normalizes persisted timestamps to one canonical textual format.
func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
