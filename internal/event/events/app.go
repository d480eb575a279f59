package events

import "github.com/dshills/calcstorm/internal/event"

// Application event topics.
const (
	// TopicAppQuit is published when shutdown is requested.
	TopicAppQuit event.Topic = "app.quit"

	// TopicInputCommand is published after a gesture is normalized to
	// a command, before dispatch.
	TopicInputCommand event.Topic = "input.command"
)

// QuitRequested is published when the user asks to exit.
type QuitRequested struct {
	// Reason describes what triggered the quit.
	Reason string
}

// EventTopic implements event.TopicProvider.
func (QuitRequested) EventTopic() event.Topic { return TopicAppQuit }

// CommandDispatched is published for every normalized command.
type CommandDispatched struct {
	// Name is the command's registry name.
	Name string

	// Source is "keyboard" or "mouse".
	Source string
}

// EventTopic implements event.TopicProvider.
func (CommandDispatched) EventTopic() event.Topic { return TopicInputCommand }
