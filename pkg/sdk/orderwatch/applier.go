package orderwatch

import "sync"

const statusReady = "ready"

// status only move forward, stale status from a slow poll must not win over a newer push
var statusRank = map[string]int{
	"pending": 1,
	"ready":   2,
	"done":    3,
}

// Applier apply status from push or pull, side effect only fire on actual forward change.
// Callbacks run one at a time in apply order, they must not call Apply.
type Applier struct {
	// OnChange called with previous and new status, previous is empty on first apply
	OnChange func(prev, next string)
	// OnReady called once when status become ready
	OnReady func()

	mu   sync.Mutex
	cbMu sync.Mutex
	last string
}

// Apply status, return true when status moved forward
func (a *Applier) Apply(status string) bool {
	a.mu.Lock()
	rank, ok := statusRank[status]
	if !ok || rank <= statusRank[a.last] {
		a.mu.Unlock()
		return false
	}
	prev := a.last
	a.last = status
	a.cbMu.Lock()
	a.mu.Unlock()
	defer a.cbMu.Unlock()

	if a.OnChange != nil {
		a.OnChange(prev, status)
	}
	if status == statusReady && a.OnReady != nil {
		a.OnReady()
	}
	return true
}

// Status last applied status
func (a *Applier) Status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}
