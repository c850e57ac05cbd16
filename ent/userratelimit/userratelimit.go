// Code generated by ent, DO NOT EDIT.

package userratelimit

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userratelimit type in the database.
	Label = "user_rate_limit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "reference_id"
	// FieldSyncAPIRequests holds the string denoting the sync_api_requests field in the database.
	FieldSyncAPIRequests = "sync_api_requests"
	// FieldAsyncAPIRequests holds the string denoting the async_api_requests field in the database.
	FieldAsyncAPIRequests = "async_api_requests"
	// FieldAPIEndpointRequests holds the string denoting the api_endpoint_requests field in the database.
	FieldAPIEndpointRequests = "api_endpoint_requests"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldLastRequestAt holds the string denoting the last_request_at field in the database.
	FieldLastRequestAt = "last_request_at"
	// FieldIsRateLimited holds the string denoting the is_rate_limited field in the database.
	FieldIsRateLimited = "is_rate_limited"
	// FieldRateLimitResetAt holds the string denoting the rate_limit_reset_at field in the database.
	FieldRateLimitResetAt = "rate_limit_reset_at"
	// Table holds the table name of the userratelimit in the database.
	Table = "user_rate_limits"
)

// Columns holds all SQL columns for userratelimit fields.
var Columns = []string{
	FieldID,
	FieldSyncAPIRequests,
	FieldAsyncAPIRequests,
	FieldAPIEndpointRequests,
	FieldWindowStart,
	FieldLastRequestAt,
	FieldIsRateLimited,
	FieldRateLimitResetAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSyncAPIRequests holds the default value on creation for the "sync_api_requests" field.
	DefaultSyncAPIRequests int
	// DefaultAsyncAPIRequests holds the default value on creation for the "async_api_requests" field.
	DefaultAsyncAPIRequests int
	// DefaultAPIEndpointRequests holds the default value on creation for the "api_endpoint_requests" field.
	DefaultAPIEndpointRequests int
	// DefaultWindowStart holds the default value on creation for the "window_start" field.
	DefaultWindowStart func() time.Time
	// DefaultLastRequestAt holds the default value on creation for the "last_request_at" field.
	DefaultLastRequestAt func() time.Time
	// DefaultIsRateLimited holds the default value on creation for the "is_rate_limited" field.
	DefaultIsRateLimited bool
)

// OrderOption defines the ordering options for the UserRateLimit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySyncAPIRequests orders the results by the sync_api_requests field.
func BySyncAPIRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncAPIRequests, opts...).ToFunc()
}

// ByAsyncAPIRequests orders the results by the async_api_requests field.
func ByAsyncAPIRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAsyncAPIRequests, opts...).ToFunc()
}

// ByAPIEndpointRequests orders the results by the api_endpoint_requests field.
func ByAPIEndpointRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIEndpointRequests, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByLastRequestAt orders the results by the last_request_at field.
func ByLastRequestAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRequestAt, opts...).ToFunc()
}

// ByIsRateLimited orders the results by the is_rate_limited field.
func ByIsRateLimited(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRateLimited, opts...).ToFunc()
}

// ByRateLimitResetAt orders the results by the rate_limit_reset_at field.
func ByRateLimitResetAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateLimitResetAt, opts...).ToFunc()
}
