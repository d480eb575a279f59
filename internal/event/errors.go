package event

import "errors"

// Bus errors.
var (
	// ErrNilHandler indicates a subscription with no handler.
	ErrNilHandler = errors.New("event: nil handler")

	// ErrInvalidTopic indicates an empty topic pattern.
	ErrInvalidTopic = errors.New("event: invalid topic")

	// ErrUnknownEvent indicates a published value that does not
	// implement TopicProvider.
	ErrUnknownEvent = errors.New("event: payload does not provide a topic")

	// ErrSubscriptionNotFound indicates an unsubscribe for an unknown
	// subscription.
	ErrSubscriptionNotFound = errors.New("event: subscription not found")
)
