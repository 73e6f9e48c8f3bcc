package protocol

import "github.com/sirupsen/logrus"

// Sink accepts text for display
type Sink interface {
	Display(text string)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(text string)

// Display calls f(text)
func (f SinkFunc) Display(text string) {
	f(text)
}

// LogSink displays text as info log entries
type LogSink struct {
	Logger logrus.FieldLogger
}

// Display logs the text
func (l LogSink) Display(text string) {
	l.Logger.Info(text)
}
