package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_EstampaServicio(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Config{Env: "production", Level: "info", Service: "bizbuddy-api"}, &buf)

	l.Info().Msg("arrancando")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "cada línea debe ser JSON válido")
	assert.Equal(t, "bizbuddy-api", line["service"])
	assert.Equal(t, "arrancando", line["message"])
}

func TestNewWithWriter_SinServicio(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Config{Env: "production", Level: "info"}, &buf)

	l.Info().Msg("sin campo fijo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	_, ok := line["service"]
	assert.False(t, ok, "sin Service configurado no debe estamparse el campo")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("cualquier cosa"), "nivel desconocido cae a info")
}
