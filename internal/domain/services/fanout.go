package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// resolver fetches a batch of creature keys concurrently and returns whatever
// succeeded, in the order the keys were given.
type resolver struct {
	source         ports.CreatureSource
	maxConcurrency int
	logger         *zap.Logger
}

// resolveAll dispatches one fetch per key and waits for all of them to settle.
// A failed fetch never cancels its siblings; it is logged and dropped.
func (r *resolver) resolveAll(ctx context.Context, op string, keys []string) []entities.Creature {
	if len(keys) == 0 {
		return []entities.Creature{}
	}

	logger := r.logger.With(zap.String("op", op), zap.String("op_id", uuid.NewString()))
	slots := make([]*entities.Creature, len(keys))
	var notFound, failed atomic.Int32

	var g errgroup.Group
	if r.maxConcurrency > 0 {
		g.SetLimit(r.maxConcurrency)
	}
	for i, key := range keys {
		g.Go(func() error {
			c, err := r.source.FetchCreature(ctx, key)
			switch {
			case errors.Is(err, ports.ErrNotFound):
				notFound.Add(1)
				logger.Debug("creature not found", zap.String("key", key))
			case err != nil:
				failed.Add(1)
				logger.Warn("fetching creature", zap.String("key", key), zap.Error(err))
			default:
				slots[i] = c
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]entities.Creature, 0, len(keys))
	for _, c := range slots {
		if c != nil {
			out = append(out, *c)
		}
	}

	logger.Debug("batch settled",
		zap.Int("dispatched", len(keys)),
		zap.Int("resolved", len(out)),
		zap.Int32("not_found", notFound.Load()),
		zap.Int32("failed", failed.Load()))
	return out
}

// resolveOne fetches a single creature, absorbing not-found and transport
// failures. The boolean reports whether a creature was returned.
func (r *resolver) resolveOne(ctx context.Context, key string) (*entities.Creature, bool) {
	c, err := r.source.FetchCreature(ctx, key)
	if errors.Is(err, ports.ErrNotFound) {
		r.logger.Debug("creature not found", zap.String("key", key))
		return nil, false
	}
	if err != nil {
		r.logger.Warn("fetching creature", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return c, true
}
