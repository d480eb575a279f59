package event

import "strings"

// Topic is a dotted event topic, e.g. "calc.display".
type Topic string

// Match reports whether the topic matches a subscription pattern.
// Patterns are either exact topics or a prefix followed by ".*",
// which matches any topic under that prefix ("calc.*" matches
// "calc.display" and "calc.tape.appended"). The bare pattern "*"
// matches everything.
func (t Topic) Match(pattern Topic) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(string(pattern), ".*"); ok {
		return strings.HasPrefix(string(t), prefix+".")
	}
	return t == pattern
}

// TopicProvider is implemented by event payloads to name their topic.
type TopicProvider interface {
	EventTopic() Topic
}
