package domain

// NewLike is a validated like toggle payload.
type NewLike struct {
	ThreadId  string
	CommentId string
	Owner     string
}

var newLikeSchema = []field{
	{name: "thread_id", kind: kindString},
	{name: "comment_id", kind: kindString},
	{name: "owner", kind: kindString},
}

func ParseNewLike(p Payload) (NewLike, error) {
	if err := verifyPayload(p, newLikeSchema); err != nil {
		return NewLike{}, err
	}
	return NewLike{
		ThreadId:  stringField(p, "thread_id"),
		CommentId: stringField(p, "comment_id"),
		Owner:     stringField(p, "owner"),
	}, nil
}

// RawLike is a like row as persisted. At most one row exists per
// (comment, owner) pair; the storage layer enforces that with a unique
// constraint, not this package.
type RawLike struct {
	Id        string
	ThreadId  string
	CommentId string
	Owner     string
}
