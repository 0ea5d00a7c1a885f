// Package demostate persists the small amount of state the demos
// remember between runs: the direction toggles of the flip and spin
// keys and the last effect call shown on screen.
package demostate

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// State remembered by the demos.
type State struct {
	// Whether the next flip/spin press flips (true) or restores (false).
	FlipX bool `yaml:"flipX"`
	FlipY bool `yaml:"flipY"`
	SpinX bool `yaml:"spinX"`
	SpinY bool `yaml:"spinY"`

	// Text of the last effect call, shown in the code box.
	LastCall string `yaml:"lastCall"`
}

// Returns the state of a first run.
func Default() *State {
	return &State{FlipX: true, FlipY: true, SpinX: true, SpinY: true}
}

// Storage keys
const (
	stateObject   = "demo"
	stateProperty = "state"
)

// A store that loads and saves the demo state through gdata. A nil gdata
// manager degrades the store to memory only.
type Store struct {
	gdataManager *gdata.Manager
	state        *State
}

// Creates a store for the given application name. If gdata
// can't be opened, the store still works but doesn't persist.
func Open(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[demostate] Warning: gdata unavailable: %v (state won't persist)", err)
		manager = nil
	}
	return NewStore(manager)
}

// Creates a store on top of the given gdata manager (may be
// nil) and loads any previously saved state.
func NewStore(gdataManager *gdata.Manager) *Store {
	store := &Store{gdataManager: gdataManager, state: Default()}
	if err := store.Load(); err != nil {
		log.Printf("[demostate] Warning: %v (using defaults)", err)
	}
	return store
}

// Reads the saved state. Missing state is not an error.
func (self *Store) Load() error {
	if self.gdataManager == nil || !self.gdataManager.ObjectPropExists(stateObject, stateProperty) {
		self.state = Default()
		return nil
	}

	data, err := self.gdataManager.LoadObjectProp(stateObject, stateProperty)
	if err != nil {
		self.state = Default()
		return fmt.Errorf("failed to load demo state: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		self.state = Default()
		return fmt.Errorf("failed to unmarshal demo state: %w", err)
	}
	self.state = loaded
	return nil
}

// Writes the current state. Memory only stores do nothing.
func (self *Store) Save() error {
	if self.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(self.state)
	if err != nil {
		return fmt.Errorf("failed to marshal demo state: %w", err)
	}
	if err := self.gdataManager.SaveObjectProp(stateObject, stateProperty, data); err != nil {
		return fmt.Errorf("failed to save demo state: %w", err)
	}
	return nil
}

// Returns the current state. Changes are kept in memory until
// the next Save.
func (self *Store) State() *State {
	return self.state
}

// Returns whether the store is backed by gdata.
func (self *Store) Persistent() bool {
	return self.gdataManager != nil
}
