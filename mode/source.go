package mode

import "sync"

// A source of ambient mode notifications. Callbacks may be invoked
// from any goroutine.
type PowerModeSource interface {
	OnAmbientChanged(callback func(ambient bool))
}

// A manually toggled [PowerModeSource], safe for concurrent use.
// Hosts use it to map key presses or timers to ambient changes.
type Switch struct {
	mutex sync.Mutex
	ambient bool
	callbacks []func(bool)
}

// Implements [PowerModeSource].
func (self *Switch) OnAmbientChanged(callback func(bool)) {
	if callback == nil { panic("nil callback") }
	self.mutex.Lock()
	self.callbacks = append(self.callbacks, callback)
	self.mutex.Unlock()
}

// Returns the current ambient value.
func (self *Switch) Ambient() bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.ambient
}

// Sets the ambient value and notifies the registered callbacks.
// Callbacks are notified even if the value doesn't change, like
// platform power streams tend to do.
func (self *Switch) Set(ambient bool) {
	self.mutex.Lock()
	self.ambient = ambient
	callbacks := self.callbacks
	self.mutex.Unlock()
	for _, callback := range callbacks {
		callback(ambient)
	}
}

// Flips the ambient value. Returns the new value.
func (self *Switch) Toggle() bool {
	ambient := !self.Ambient()
	self.Set(ambient)
	return ambient
}
