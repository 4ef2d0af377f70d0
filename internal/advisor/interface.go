package advisor

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat answers one farmer question: classify, dispatch to exactly one advisor, reply.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
}
