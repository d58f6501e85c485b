// Package copier duplicates an entity and its dependent entities as one
// transactional copy chain.
//
// A Copier runs its own Step, then every registered child in order, all inside
// a single database transaction. The chain commits once after the last child
// succeeds and rolls back on the first failure, returning that failure
// unchanged.
package copier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-backend/internal/database"
)

// Step copies exactly one entity. It does not manage transactions and does
// not copy children; the Copier wrapping it does both.
type Step[S, R any] interface {
	CopyEntity(ctx context.Context, source S, cfg Config) (R, error)
}

// StepFunc adapts a function to Step.
type StepFunc[S, R any] func(ctx context.Context, source S, cfg Config) (R, error)

// CopyEntity calls f.
func (f StepFunc[S, R]) CopyEntity(ctx context.Context, source S, cfg Config) (R, error) {
	return f(ctx, source, cfg)
}

// Child is a member of a parent's copy chain.
type Child[S any] interface {
	CopyInto(ctx context.Context, source S, cfg Config) error
}

// Copier wraps a Step in a transaction and cascades to its children.
type Copier[S, R any] struct {
	name     string
	tx       database.Transactor
	step     Step[S, R]
	children []Child[S]
	log      zerolog.Logger
}

// New creates a Copier. Children run in the order given.
func New[S, R any](name string, tx database.Transactor, step Step[S, R], log zerolog.Logger, children ...Child[S]) *Copier[S, R] {
	return &Copier[S, R]{
		name:     name,
		tx:       tx,
		step:     step,
		children: children,
		log:      log.With().Str("copier", name).Logger(),
	}
}

// Name returns the copier's name.
func (c *Copier[S, R]) Name() string {
	return c.name
}

// Copy copies source and then its children.
//
// When ctx already carries a transaction the copy joins it; otherwise Copy
// opens one, commits after the whole chain succeeded and rolls back on any
// error. The error of the failing step is returned as is.
func (c *Copier[S, R]) Copy(ctx context.Context, source S, cfg Config) (R, error) {
	if database.TxFromContext(ctx) != nil {
		return c.run(ctx, source, cfg)
	}
	return c.runInTransaction(ctx, source, cfg)
}

// CopyInto lets a Copier be registered as another copier's child.
func (c *Copier[S, R]) CopyInto(ctx context.Context, source S, cfg Config) error {
	_, err := c.Copy(ctx, source, cfg)
	return err
}

func (c *Copier[S, R]) runInTransaction(ctx context.Context, source S, cfg Config) (R, error) {
	var zero R

	txCtx, tx, err := c.tx.Begin(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("begin transaction failed")
		return zero, err
	}
	c.log.Info().Msg("begin transaction")

	// Rollback must still reach the database when the request was cancelled.
	rollbackCtx := context.WithoutCancel(ctx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(rollbackCtx)
			c.log.Error().Interface("panic", p).Msg("rollback")
			panic(p)
		}
	}()

	result, err := c.run(txCtx, source, cfg)
	if err != nil {
		if rbErr := tx.Rollback(rollbackCtx); rbErr != nil {
			c.log.Error().Err(rbErr).Msg("rollback failed")
		}
		c.log.Error().Msg("rollback: " + err.Error())
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		if rbErr := tx.Rollback(rollbackCtx); rbErr != nil {
			c.log.Error().Err(rbErr).Msg("rollback failed")
		}
		c.log.Error().Msg("rollback: " + err.Error())
		return zero, fmt.Errorf("commit %s copy: %w", c.name, err)
	}
	c.log.Info().Msg("commit")

	return result, nil
}

func (c *Copier[S, R]) run(ctx context.Context, source S, cfg Config) (R, error) {
	var zero R

	c.log.Info().Interface("source", source).Msg("copy source")

	result, err := c.step.CopyEntity(ctx, source, cfg)
	if err != nil {
		return zero, err
	}

	// Children receive the original source; the new entity is reachable
	// through Parent.
	childCtx := withParent(ctx, result)
	for _, child := range c.children {
		if err := child.CopyInto(childCtx, source, cfg); err != nil {
			return zero, err
		}
	}

	return result, nil
}

type parentKey struct{}

func withParent(ctx context.Context, parent any) context.Context {
	return context.WithValue(ctx, parentKey{}, parent)
}

// Parent returns the entity created by the enclosing copier's step.
func Parent[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(parentKey{}).(T)
	return v, ok
}
