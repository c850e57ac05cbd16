// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weft-labs/weft/ent/userratelimit"
)

// UserRateLimit is the model entity for the UserRateLimit schema.
type UserRateLimit struct {
	config `json:"-"`
	// ID of the ent.
	// User ID or organisation ID
	ID string `json:"id,omitempty"`
	// SyncAPIRequests holds the value of the "sync_api_requests" field.
	SyncAPIRequests int `json:"sync_api_requests,omitempty"`
	// AsyncAPIRequests holds the value of the "async_api_requests" field.
	AsyncAPIRequests int `json:"async_api_requests,omitempty"`
	// APIEndpointRequests holds the value of the "api_endpoint_requests" field.
	APIEndpointRequests int `json:"api_endpoint_requests,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// LastRequestAt holds the value of the "last_request_at" field.
	LastRequestAt time.Time `json:"last_request_at,omitempty"`
	// IsRateLimited holds the value of the "is_rate_limited" field.
	IsRateLimited bool `json:"is_rate_limited,omitempty"`
	// RateLimitResetAt holds the value of the "rate_limit_reset_at" field.
	RateLimitResetAt *time.Time `json:"rate_limit_reset_at,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserRateLimit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userratelimit.FieldIsRateLimited:
			values[i] = new(sql.NullBool)
		case userratelimit.FieldSyncAPIRequests, userratelimit.FieldAsyncAPIRequests, userratelimit.FieldAPIEndpointRequests:
			values[i] = new(sql.NullInt64)
		case userratelimit.FieldID:
			values[i] = new(sql.NullString)
		case userratelimit.FieldWindowStart, userratelimit.FieldLastRequestAt, userratelimit.FieldRateLimitResetAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserRateLimit fields.
func (_m *UserRateLimit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userratelimit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case userratelimit.FieldSyncAPIRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sync_api_requests", values[i])
			} else if value.Valid {
				_m.SyncAPIRequests = int(value.Int64)
			}
		case userratelimit.FieldAsyncAPIRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field async_api_requests", values[i])
			} else if value.Valid {
				_m.AsyncAPIRequests = int(value.Int64)
			}
		case userratelimit.FieldAPIEndpointRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field api_endpoint_requests", values[i])
			} else if value.Valid {
				_m.APIEndpointRequests = int(value.Int64)
			}
		case userratelimit.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case userratelimit.FieldLastRequestAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_request_at", values[i])
			} else if value.Valid {
				_m.LastRequestAt = value.Time
			}
		case userratelimit.FieldIsRateLimited:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_rate_limited", values[i])
			} else if value.Valid {
				_m.IsRateLimited = value.Bool
			}
		case userratelimit.FieldRateLimitResetAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rate_limit_reset_at", values[i])
			} else if value.Valid {
				_m.RateLimitResetAt = new(time.Time)
				*_m.RateLimitResetAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserRateLimit.
// This includes values selected through modifiers, order, etc.
func (_m *UserRateLimit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserRateLimit.
// Note that you need to call UserRateLimit.Unwrap() before calling this method if this UserRateLimit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserRateLimit) Update() *UserRateLimitUpdateOne {
	return NewUserRateLimitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserRateLimit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserRateLimit) Unwrap() *UserRateLimit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserRateLimit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserRateLimit) String() string {
	var builder strings.Builder
	builder.WriteString("UserRateLimit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sync_api_requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyncAPIRequests))
	builder.WriteString(", ")
	builder.WriteString("async_api_requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.AsyncAPIRequests))
	builder.WriteString(", ")
	builder.WriteString("api_endpoint_requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.APIEndpointRequests))
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_request_at=")
	builder.WriteString(_m.LastRequestAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_rate_limited=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRateLimited))
	builder.WriteString(", ")
	if v := _m.RateLimitResetAt; v != nil {
		builder.WriteString("rate_limit_reset_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UserRateLimits is a parsable slice of UserRateLimit.
type UserRateLimits []*UserRateLimit
