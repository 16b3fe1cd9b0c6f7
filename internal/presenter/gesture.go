package presenter

// Gestures fans the next user gesture out to one-shot subscribers
type Gestures struct {
	next int
	subs map[int]func()
}

func NewGestures() *Gestures {
	return &Gestures{subs: make(map[int]func())}
}

// Subscription is a pending one-shot gesture listener
type Subscription struct {
	g  *Gestures
	id int
}

// Once calls fn on the next published gesture, then detaches it
func (g *Gestures) Once(fn func()) *Subscription {
	g.next++
	g.subs[g.next] = fn
	return &Subscription{g: g, id: g.next}
}

// Publish delivers a gesture to every current subscriber. Subscriptions
// made while publishing wait for the next gesture.
func (g *Gestures) Publish() {
	if len(g.subs) == 0 {
		return
	}
	pending := g.subs
	g.subs = make(map[int]func())
	for _, fn := range pending {
		fn()
	}
}

// Pending is the number of armed listeners
func (g *Gestures) Pending() int {
	return len(g.subs)
}

// Cancel detaches the listener. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.g == nil {
		return
	}
	delete(s.g.subs, s.id)
	s.g = nil
}
