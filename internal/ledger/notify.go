package ledger

import "sync"

// Notifier fans out change signals to registered listeners. The GUI shell
// subscribes once and refreshes its views on every broadcast.
type Notifier struct {
	mu   sync.Mutex
	subs []func()
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn to run after every successful ledger mutation.
func (n *Notifier) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// Broadcast invokes all subscribers in registration order. Callers fire it
// only after a mutation has committed.
func (n *Notifier) Broadcast() {
	n.mu.Lock()
	subs := make([]func(), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
