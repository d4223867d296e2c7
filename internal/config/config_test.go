package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/segments/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.CheckInit())
	assert.Equal(t, ReadCapacity, c.Session.Capacity)
	assert.True(t, c.Session.Color)
	assert.Equal(t, logger.INFO, c.LogLevel())
	assert.Equal(t, "", c.Draw.Path)
	assert.Equal(t, 40.0, c.Draw.Scale)
}

func TestReadString(t *testing.T) {
	c, err := ReadString(`
[session]
capacity = 4
color = false

[log]
level = debug
datetime = true

[draw]
path = /tmp/out.png
scale = 12.5
imgcat = true
`)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Session.Capacity)
	assert.False(t, c.Session.Color)
	assert.Equal(t, logger.DEBUG, c.LogLevel())
	assert.True(t, c.Log.DateTime)
	assert.Equal(t, "/tmp/out.png", c.Draw.Path)
	assert.Equal(t, 12.5, c.Draw.Scale)
	assert.True(t, c.Draw.Imgcat)
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	c, err := ReadString("[draw]\npath = out.png\n")
	require.NoError(t, err)
	assert.Equal(t, ReadCapacity, c.Session.Capacity)
	assert.True(t, c.Session.Color)
	assert.Equal(t, 40.0, c.Draw.Scale)
	assert.Equal(t, "out.png", c.Draw.Path)
}

func TestValidation(t *testing.T) {
	_, err := ReadString("[session]\ncapacity = -3\n")
	assert.Error(t, err)

	_, err = ReadString("[log]\nlevel = loud\n")
	assert.Error(t, err)

	_, err = ReadString("[draw]\nscale = 0\n")
	assert.Error(t, err)

	_, err = ReadString("[nonsense]\nfoo = bar\n")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "segments.ini")
	require.NoError(t, os.WriteFile(fname, []byte("[session]\ncapacity = 2\n"), 0644))

	c, err := Read(fname)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Session.Capacity)

	_, err = Read(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
