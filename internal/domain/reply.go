package domain

import (
	"time"

	"github.com/adiwijaya-dev/forum-api/internal/errors"
)

// ReplyDeletedPlaceholder replaces a deleted reply's content at render time.
const ReplyDeletedPlaceholder = "**balasan telah dihapus**"

// NewReply is a validated reply creation payload.
type NewReply struct {
	ThreadId  string
	CommentId string
	Content   string
	Owner     string
}

var newReplySchema = []field{
	{name: "thread_id", kind: kindString},
	{name: "comment_id", kind: kindString},
	{name: "content", kind: kindString},
	{name: "owner", kind: kindString},
}

func ParseNewReply(p Payload) (NewReply, error) {
	if err := verifyPayload(p, newReplySchema); err != nil {
		return NewReply{}, err
	}
	return NewReply{
		ThreadId:  stringField(p, "thread_id"),
		CommentId: stringField(p, "comment_id"),
		Content:   stringField(p, "content"),
		Owner:     stringField(p, "owner"),
	}, nil
}

// DeleteReply is a validated reply deletion payload.
type DeleteReply struct {
	ThreadId  string
	CommentId string
	ReplyId   string
	Owner     string
}

var deleteReplySchema = []field{
	{name: "thread_id", kind: kindString},
	{name: "comment_id", kind: kindString},
	{name: "reply_id", kind: kindString},
	{name: "owner", kind: kindString},
}

func ParseDeleteReply(p Payload) (DeleteReply, error) {
	if err := verifyPayload(p, deleteReplySchema); err != nil {
		return DeleteReply{}, err
	}
	return DeleteReply{
		ThreadId:  stringField(p, "thread_id"),
		CommentId: stringField(p, "comment_id"),
		ReplyId:   stringField(p, "reply_id"),
		Owner:     stringField(p, "owner"),
	}, nil
}

// CreatedReply acknowledges a stored reply.
type CreatedReply struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewCreatedReply(id, content, owner string) (CreatedReply, error) {
	switch {
	case id == "":
		return CreatedReply{}, errors.MissingField("id")
	case owner == "":
		return CreatedReply{}, errors.MissingField("owner")
	}
	return CreatedReply{Id: id, Content: content, Owner: owner}, nil
}

// RawReply is a reply row as persisted, joined with its owner's username.
type RawReply struct {
	Id        string
	CommentId string
	Username  string
	Date      time.Time
	Content   string
	DeletedAt *time.Time
}

// ReplyView is a single rendered reply.
type ReplyView struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

// RenderReplies mirrors RenderComments for replies. A reply's redaction
// depends only on its own deletion marker, never its parent comment's.
func RenderReplies(rawReplies []RawReply) ([]ReplyView, error) {
	views := make([]ReplyView, 0, len(rawReplies))
	for _, r := range rawReplies {
		switch {
		case r.Id == "":
			return nil, errors.MissingField("id")
		case r.Username == "":
			return nil, errors.MissingField("username")
		case r.Date.IsZero():
			return nil, errors.MissingField("date")
		}
		content := r.Content
		if r.DeletedAt != nil {
			content = ReplyDeletedPlaceholder
		}
		views = append(views, ReplyView{
			Id:       r.Id,
			Username: r.Username,
			Date:     formatDate(r.Date),
			Content:  content,
		})
	}
	return views, nil
}
