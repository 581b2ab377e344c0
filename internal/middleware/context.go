package middleware

// Context keys used to store request metadata.
const ContextKeyRequestID = "request_id"
