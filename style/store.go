package style

import "sync"

// A source of style configuration. Implementations may invoke the
// registered callbacks from any goroutine; faces queue the changes
// and only apply them at the start of the next frame.
type Store interface {
	CurrentStyle() Config
	OnStyleChanged(callback func(Config))
}

// A simple in-memory [Store], mostly useful for hosts and tests.
// It's safe for concurrent use.
type MemoryStore struct {
	mutex sync.Mutex
	current Config
	callbacks []func(Config)
}

// Creates a new [MemoryStore] holding the given config.
func NewMemoryStore(initial Config) *MemoryStore {
	return &MemoryStore{ current: initial }
}

// Implements [Store].
func (self *MemoryStore) CurrentStyle() Config {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.current
}

// Implements [Store].
func (self *MemoryStore) OnStyleChanged(callback func(Config)) {
	if callback == nil { panic("nil callback") }
	self.mutex.Lock()
	self.callbacks = append(self.callbacks, callback)
	self.mutex.Unlock()
}

// Replaces the current config and notifies the registered callbacks.
// Nothing is notified if the config doesn't change.
func (self *MemoryStore) Set(config Config) {
	self.mutex.Lock()
	if self.current == config {
		self.mutex.Unlock()
		return
	}
	self.current = config
	callbacks := self.callbacks
	self.mutex.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// Applies the given options over the current config and notifies
// the change, if any. Returns the resulting config.
func (self *MemoryStore) Update(opts Options) Config {
	config := Apply(self.CurrentStyle(), opts)
	self.Set(config)
	return config
}

// Moves the named option to its next value (see [Cycle]()) and
// notifies the change. Returns the resulting config.
func (self *MemoryStore) Cycle(name string) Config {
	config := Cycle(self.CurrentStyle(), name)
	self.Set(config)
	return config
}
