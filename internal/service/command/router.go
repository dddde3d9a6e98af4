// Package command classifies inbound text against the fixed slash
// command table and normalizes every outcome, success or failure, into
// a single outgoing reply.
package command

import (
	"context"
	"strings"
	"sync"

	"github.com/fernvale/parley/internal/core"
	"github.com/fernvale/parley/pkg/log"
)

// Router matches trimmed input against the command prefixes in table
// order; the first match wins and unmatched input produces no reply.
// A per-user mutex serializes handling, so concurrent deliveries from
// one user cannot interleave memory mutations; different users proceed
// independently.
type Router struct {
	commands []core.Command
	memory   core.Memory
	gw       core.Gateway
	locks    sync.Map // userID -> *sync.Mutex
}

func New(commands []core.Command, mem core.Memory, gw core.Gateway) *Router {
	return &Router{
		commands: commands,
		memory:   mem,
		gw:       gw,
	}
}

func (r *Router) Route(ctx context.Context, userID, raw string) core.Reply {
	input := strings.TrimSpace(raw)

	mu := r.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	for _, cmd := range r.commands {
		if !strings.HasPrefix(input, cmd.Prefix()) {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(input, cmd.Prefix()))
		log.FromCtx(ctx).Info().
			Str("user", userID).
			Str("command", cmd.Prefix()).
			Msg("dispatching command")

		reply, err := cmd.Execute(ctx, userID, payload)
		if err != nil {
			return r.failure(ctx, userID, err)
		}
		return reply
	}

	// Not a known command: silently ignored, by contract no reply.
	return core.Reply{}
}

// Converse runs the direct chat flow used for transcribed voice input:
// no command matching, no URL detection.
func (r *Router) Converse(ctx context.Context, userID, text string) core.Reply {
	mu := r.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	reply, err := r.converse(ctx, userID, text)
	if err != nil {
		return r.failure(ctx, userID, err)
	}
	return reply
}

func (r *Router) converse(ctx context.Context, userID, text string) (core.Reply, error) {
	if err := r.memory.Append(ctx, userID, core.RoleUser, text); err != nil {
		return core.Reply{}, err
	}

	history, err := r.memory.Get(ctx, userID)
	if err != nil {
		return core.Reply{}, err
	}

	answer, err := r.gw.ChatCompletion(ctx, history)
	if err != nil {
		return core.Reply{}, err
	}

	if err := r.memory.Append(ctx, userID, core.RoleAssistant, answer); err != nil {
		return core.Reply{}, err
	}
	return core.TextReply(answer), nil
}

// FailureReply normalizes an error that happened outside command
// dispatch (e.g. voice transcription in the adapter) with the same
// policy as command failures.
func (r *Router) FailureReply(ctx context.Context, userID string, err error) core.Reply {
	mu := r.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()
	return r.failure(ctx, userID, err)
}

// failure applies the uniform failure policy: the user's history is
// cleared so a half-applied turn never poisons the next request, and
// the error degrades to a single text reply.
func (r *Router) failure(ctx context.Context, userID string, err error) core.Reply {
	logger := log.FromCtx(ctx)
	logger.Error().Err(err).Str("user", userID).Msg("command failed")

	if clearErr := r.memory.Clear(ctx, userID); clearErr != nil {
		logger.Error().Err(clearErr).Str("user", userID).Msg("failed to clear history after error")
	}

	return core.TextReply(replyForError(err))
}

func (r *Router) lockFor(userID string) *sync.Mutex {
	v, _ := r.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}
