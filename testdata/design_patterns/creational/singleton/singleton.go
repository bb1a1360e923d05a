package singleton

import "sync"

type config struct {
	Name string
}

var (
	instance *config
	once     sync.Once
)

// Instance returns the process-wide config, creating it on first use.
func Instance() *config {
	once.Do(func() {
		instance = &config{Name: "default"}
	})
	return instance
}
