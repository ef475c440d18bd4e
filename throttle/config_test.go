/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package throttle

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acronis/go-appkit/config"
)

func TestConfigSet(t *testing.T) {
	cfgData := bytes.NewBufferString(`
throttle:
  read:
    windows:
      - limit: 10
        interval: 2s
      - limit: 50
        interval: 1m
  write:
    windows:
      - limit: 3
        interval: 5s
`)
	cfg := NewConfig()
	err := config.NewDefaultLoader("").LoadFromReader(cfgData, config.DataTypeYAML, cfg)
	require.NoError(t, err)

	require.Equal(t, []WindowLimit{
		{Limit: 10, Interval: 2 * time.Second},
		{Limit: 50, Interval: time.Minute},
	}, cfg.Read.Windows)
	require.Equal(t, []WindowLimit{{Limit: 3, Interval: 5 * time.Second}}, cfg.Write.Windows)

	opts := cfg.Opts()
	require.Equal(t, cfg.Read.Windows, opts.Read)
	require.Equal(t, cfg.Write.Windows, opts.Write)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		Name    string
		Data    string
		WantErr string
	}{
		{
			Name: "non-positive limit",
			Data: `
throttle:
  read:
    windows:
      - limit: 0
        interval: 2s
`,
			WantErr: "window limit must be positive",
		},
		{
			Name: "non-positive interval",
			Data: `
throttle:
  write:
    windows:
      - limit: 5
        interval: -1s
`,
			WantErr: "window interval must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			cfg := NewConfig()
			err := config.NewDefaultLoader("").LoadFromReader(
				bytes.NewBufferString(tt.Data), config.DataTypeYAML, cfg)
			require.ErrorContains(t, err, tt.WantErr)
		})
	}
}
