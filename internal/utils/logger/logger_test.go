package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cloudvault/internal/app/server/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{name: "local", env: config.EnvLocal},
		{name: "dev", env: config.EnvDev},
		{name: "prod", env: config.EnvProd},
		{name: "unknown falls back to prod handler", env: "staging"},
		{name: "empty", env: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.env)
			assert.NotNil(t, log)
			// Must not panic with attributes attached.
			log.With("component", "test").Debug("probe")
		})
	}
}
