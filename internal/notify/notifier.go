package notify

type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...any)
}

// Nop — затычка, когда Telegram не сконфигурирован.
type Nop struct{}

func (Nop) Send(string)          {}
func (Nop) Sendf(string, ...any) {}

var _ Notifier = Nop{}
