package libevents

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("max_listeners: 25\nlog_level: debug\n"))

	require.NoError(t, err)
	assert.Equal(t, Config{MaxListeners: 25, LogLevel: "debug"}, cfg)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig_InvalidLevel(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("log_level: loud\n"))

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig_UnknownField(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("max_listener: 3\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode emitter config")
}

func TestConfig_Options(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{name: "default", cfg: Config{}, want: DefaultMaxListeners},
		{name: "custom", cfg: Config{MaxListeners: 3}, want: 3},
		{name: "disabled", cfg: Config{MaxListeners: -1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.Options(nil)
			require.NoError(t, err)

			e := NewEmitter[string, int](opts...)
			assert.Equal(t, tt.want, e.MaxListeners())
		})
	}
}

func TestConfig_OptionsLogger(t *testing.T) {
	var buf bytes.Buffer
	opts, err := Config{MaxListeners: 1, LogLevel: "warn"}.Options(&buf)
	require.NoError(t, err)

	e := NewEmitter[string, int](opts...)
	f := ListenerFunc(func(...int) {})
	e.On("t", f).On("t", f)

	out := buf.String()
	assert.NotContains(t, out, "registering first listener")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"component":"emitter"`)
}

func TestConfig_OptionsInvalid(t *testing.T) {
	_, err := Config{LogLevel: "nope"}.Options(nil)

	assert.ErrorIs(t, err, ErrInvalidConfig)
}
