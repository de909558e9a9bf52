package dump

import (
	"sync"

	"github.com/signadot/bodydump/host"
)

// Hook runs one dump on the first host startup event it sees.
type Hook struct {
	Source host.Source
	Config *Config

	once sync.Once
	err  error
}

// Start dumps on the first call and returns that result on every call.
func (h *Hook) Start() error {
	h.once.Do(func() {
		cfg := h.Config
		if cfg == nil {
			cfg = &Config{}
		}
		h.err = Run(h.Source, cfg)
	})
	return h.err
}
