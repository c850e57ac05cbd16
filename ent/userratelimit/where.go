// Code generated by ent, DO NOT EDIT.

package userratelimit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/weft-labs/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldContainsFold(FieldID, id))
}

// SyncAPIRequests applies equality check predicate on the "sync_api_requests" field. It's identical to SyncAPIRequestsEQ.
func SyncAPIRequests(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldSyncAPIRequests, v))
}

// AsyncAPIRequests applies equality check predicate on the "async_api_requests" field. It's identical to AsyncAPIRequestsEQ.
func AsyncAPIRequests(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldAsyncAPIRequests, v))
}

// APIEndpointRequests applies equality check predicate on the "api_endpoint_requests" field. It's identical to APIEndpointRequestsEQ.
func APIEndpointRequests(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldAPIEndpointRequests, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldWindowStart, v))
}

// LastRequestAt applies equality check predicate on the "last_request_at" field. It's identical to LastRequestAtEQ.
func LastRequestAt(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldLastRequestAt, v))
}

// IsRateLimited applies equality check predicate on the "is_rate_limited" field. It's identical to IsRateLimitedEQ.
func IsRateLimited(v bool) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldIsRateLimited, v))
}

// RateLimitResetAt applies equality check predicate on the "rate_limit_reset_at" field. It's identical to RateLimitResetAtEQ.
func RateLimitResetAt(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldRateLimitResetAt, v))
}

// SyncAPIRequestsEQ applies the EQ predicate on the "sync_api_requests" field.
func SyncAPIRequestsEQ(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldSyncAPIRequests, v))
}

// SyncAPIRequestsNEQ applies the NEQ predicate on the "sync_api_requests" field.
func SyncAPIRequestsNEQ(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNEQ(FieldSyncAPIRequests, v))
}

// SyncAPIRequestsIn applies the In predicate on the "sync_api_requests" field.
func SyncAPIRequestsIn(vs ...int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldIn(FieldSyncAPIRequests, vs...))
}

// SyncAPIRequestsNotIn applies the NotIn predicate on the "sync_api_requests" field.
func SyncAPIRequestsNotIn(vs ...int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNotIn(FieldSyncAPIRequests, vs...))
}

// SyncAPIRequestsGT applies the GT predicate on the "sync_api_requests" field.
func SyncAPIRequestsGT(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGT(FieldSyncAPIRequests, v))
}

// SyncAPIRequestsGTE applies the GTE predicate on the "sync_api_requests" field.
func SyncAPIRequestsGTE(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGTE(FieldSyncAPIRequests, v))
}

// SyncAPIRequestsLT applies the LT predicate on the "sync_api_requests" field.
func SyncAPIRequestsLT(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLT(FieldSyncAPIRequests, v))
}

// SyncAPIRequestsLTE applies the LTE predicate on the "sync_api_requests" field.
func SyncAPIRequestsLTE(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLTE(FieldSyncAPIRequests, v))
}

// AsyncAPIRequestsEQ applies the EQ predicate on the "async_api_requests" field.
func AsyncAPIRequestsEQ(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldAsyncAPIRequests, v))
}

// AsyncAPIRequestsNEQ applies the NEQ predicate on the "async_api_requests" field.
func AsyncAPIRequestsNEQ(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNEQ(FieldAsyncAPIRequests, v))
}

// AsyncAPIRequestsIn applies the In predicate on the "async_api_requests" field.
func AsyncAPIRequestsIn(vs ...int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldIn(FieldAsyncAPIRequests, vs...))
}

// AsyncAPIRequestsNotIn applies the NotIn predicate on the "async_api_requests" field.
func AsyncAPIRequestsNotIn(vs ...int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNotIn(FieldAsyncAPIRequests, vs...))
}

// AsyncAPIRequestsGT applies the GT predicate on the "async_api_requests" field.
func AsyncAPIRequestsGT(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGT(FieldAsyncAPIRequests, v))
}

// AsyncAPIRequestsGTE applies the GTE predicate on the "async_api_requests" field.
func AsyncAPIRequestsGTE(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGTE(FieldAsyncAPIRequests, v))
}

// AsyncAPIRequestsLT applies the LT predicate on the "async_api_requests" field.
func AsyncAPIRequestsLT(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLT(FieldAsyncAPIRequests, v))
}

// AsyncAPIRequestsLTE applies the LTE predicate on the "async_api_requests" field.
func AsyncAPIRequestsLTE(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLTE(FieldAsyncAPIRequests, v))
}

// APIEndpointRequestsEQ applies the EQ predicate on the "api_endpoint_requests" field.
func APIEndpointRequestsEQ(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldAPIEndpointRequests, v))
}

// APIEndpointRequestsNEQ applies the NEQ predicate on the "api_endpoint_requests" field.
func APIEndpointRequestsNEQ(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNEQ(FieldAPIEndpointRequests, v))
}

// APIEndpointRequestsIn applies the In predicate on the "api_endpoint_requests" field.
func APIEndpointRequestsIn(vs ...int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldIn(FieldAPIEndpointRequests, vs...))
}

// APIEndpointRequestsNotIn applies the NotIn predicate on the "api_endpoint_requests" field.
func APIEndpointRequestsNotIn(vs ...int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNotIn(FieldAPIEndpointRequests, vs...))
}

// APIEndpointRequestsGT applies the GT predicate on the "api_endpoint_requests" field.
func APIEndpointRequestsGT(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGT(FieldAPIEndpointRequests, v))
}

// APIEndpointRequestsGTE applies the GTE predicate on the "api_endpoint_requests" field.
func APIEndpointRequestsGTE(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGTE(FieldAPIEndpointRequests, v))
}

// APIEndpointRequestsLT applies the LT predicate on the "api_endpoint_requests" field.
func APIEndpointRequestsLT(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLT(FieldAPIEndpointRequests, v))
}

// APIEndpointRequestsLTE applies the LTE predicate on the "api_endpoint_requests" field.
func APIEndpointRequestsLTE(v int) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLTE(FieldAPIEndpointRequests, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLTE(FieldWindowStart, v))
}

// LastRequestAtEQ applies the EQ predicate on the "last_request_at" field.
func LastRequestAtEQ(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldLastRequestAt, v))
}

// LastRequestAtNEQ applies the NEQ predicate on the "last_request_at" field.
func LastRequestAtNEQ(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNEQ(FieldLastRequestAt, v))
}

// LastRequestAtIn applies the In predicate on the "last_request_at" field.
func LastRequestAtIn(vs ...time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldIn(FieldLastRequestAt, vs...))
}

// LastRequestAtNotIn applies the NotIn predicate on the "last_request_at" field.
func LastRequestAtNotIn(vs ...time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNotIn(FieldLastRequestAt, vs...))
}

// LastRequestAtGT applies the GT predicate on the "last_request_at" field.
func LastRequestAtGT(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGT(FieldLastRequestAt, v))
}

// LastRequestAtGTE applies the GTE predicate on the "last_request_at" field.
func LastRequestAtGTE(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGTE(FieldLastRequestAt, v))
}

// LastRequestAtLT applies the LT predicate on the "last_request_at" field.
func LastRequestAtLT(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLT(FieldLastRequestAt, v))
}

// LastRequestAtLTE applies the LTE predicate on the "last_request_at" field.
func LastRequestAtLTE(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLTE(FieldLastRequestAt, v))
}

// IsRateLimitedEQ applies the EQ predicate on the "is_rate_limited" field.
func IsRateLimitedEQ(v bool) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldIsRateLimited, v))
}

// IsRateLimitedNEQ applies the NEQ predicate on the "is_rate_limited" field.
func IsRateLimitedNEQ(v bool) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNEQ(FieldIsRateLimited, v))
}

// RateLimitResetAtEQ applies the EQ predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtEQ(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldEQ(FieldRateLimitResetAt, v))
}

// RateLimitResetAtNEQ applies the NEQ predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtNEQ(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNEQ(FieldRateLimitResetAt, v))
}

// RateLimitResetAtIn applies the In predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtIn(vs ...time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldIn(FieldRateLimitResetAt, vs...))
}

// RateLimitResetAtNotIn applies the NotIn predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtNotIn(vs ...time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNotIn(FieldRateLimitResetAt, vs...))
}

// RateLimitResetAtGT applies the GT predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtGT(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGT(FieldRateLimitResetAt, v))
}

// RateLimitResetAtGTE applies the GTE predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtGTE(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldGTE(FieldRateLimitResetAt, v))
}

// RateLimitResetAtLT applies the LT predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtLT(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLT(FieldRateLimitResetAt, v))
}

// RateLimitResetAtLTE applies the LTE predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtLTE(v time.Time) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldLTE(FieldRateLimitResetAt, v))
}

// RateLimitResetAtIsNil applies the IsNil predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtIsNil() predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldIsNull(FieldRateLimitResetAt))
}

// RateLimitResetAtNotNil applies the NotNil predicate on the "rate_limit_reset_at" field.
func RateLimitResetAtNotNil() predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.FieldNotNull(FieldRateLimitResetAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserRateLimit) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserRateLimit) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserRateLimit) predicate.UserRateLimit {
	return predicate.UserRateLimit(sql.NotPredicates(p))
}
