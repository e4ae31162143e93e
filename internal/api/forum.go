package api

import "github.com/adiwijaya-dev/forum-api/internal/domain"

// Response DTOs for the forum endpoints. Mutation requests have no typed
// DTOs: handlers pass the decoded body through as domain.Payload so the
// value object schemas report missing or mistyped fields.

type AddedThreadResponse struct {
	AddedThread domain.CreatedThread `json:"addedThread"`
}

type ThreadDetailResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type AddedCommentResponse struct {
	AddedComment domain.CreatedComment `json:"addedComment"`
}

type AddedReplyResponse struct {
	AddedReply domain.CreatedReply `json:"addedReply"`
}
