package constants

// Context keys
const (
	ContextKeyActorID   = "actor_id"
	ContextKeyRequestID = "request_id"
)

// Headers
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderRequestID = "X-Request-Id"
)

// QueryParamInput carries the JSON input of a query procedure
const QueryParamInput = "input"
