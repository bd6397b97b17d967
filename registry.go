package quill

// registry tracks the targets known to a Scheduler and, per TweenKind, the
// task currently owning each (target, kind) key. A nil task means the key is
// registered with nothing running.
type registry struct {
	known  map[TweenTarget]struct{}
	active [tweenKindCount]map[TweenTarget]*tweenTask
}

func newRegistry() registry {
	r := registry{known: make(map[TweenTarget]struct{})}
	for i := range r.active {
		r.active[i] = make(map[TweenTarget]*tweenTask)
	}
	return r
}

// register adds t with no running task for any kind. Registering a known
// target changes nothing.
func (r *registry) register(t TweenTarget) {
	if _, ok := r.known[t]; ok {
		return
	}
	for i := range r.active {
		r.active[i][t] = nil
	}
	r.known[t] = struct{}{}
}

// unregister forgets t for every kind. Tasks already running against t are
// left alone and finish on their own.
func (r *registry) unregister(t TweenTarget) {
	for i := range r.active {
		delete(r.active[i], t)
	}
	delete(r.known, t)
}

func (r *registry) isRegistered(t TweenTarget) bool {
	_, ok := r.known[t]
	return ok
}

func (r *registry) owner(t TweenTarget, kind TweenKind) *tweenTask {
	return r.active[kind][t]
}

// install makes task the owner of (t, kind). The key must be registered.
func (r *registry) install(t TweenTarget, kind TweenKind, task *tweenTask) {
	r.active[kind][t] = task
}

// release clears (t, kind) if task still owns it. A key removed by
// unregister is not recreated.
func (r *registry) release(t TweenTarget, kind TweenKind, task *tweenTask) {
	m := r.active[kind]
	if cur, ok := m[t]; ok && cur == task {
		m[t] = nil
	}
}
