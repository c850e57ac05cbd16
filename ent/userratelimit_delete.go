// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weft-labs/weft/ent/predicate"
	"github.com/weft-labs/weft/ent/userratelimit"
)

// UserRateLimitDelete is the builder for deleting a UserRateLimit entity.
type UserRateLimitDelete struct {
	config
	hooks    []Hook
	mutation *UserRateLimitMutation
}

// Where appends a list predicates to the UserRateLimitDelete builder.
func (_d *UserRateLimitDelete) Where(ps ...predicate.UserRateLimit) *UserRateLimitDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UserRateLimitDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserRateLimitDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UserRateLimitDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(userratelimit.Table, sqlgraph.NewFieldSpec(userratelimit.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UserRateLimitDeleteOne is the builder for deleting a single UserRateLimit entity.
type UserRateLimitDeleteOne struct {
	_d *UserRateLimitDelete
}

// Where appends a list predicates to the UserRateLimitDelete builder.
func (_d *UserRateLimitDeleteOne) Where(ps ...predicate.UserRateLimit) *UserRateLimitDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UserRateLimitDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{userratelimit.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserRateLimitDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
