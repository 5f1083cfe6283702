package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/solarlune/wireframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {

	c, err := parseColor("black")
	require.NoError(t, err)
	assert.Equal(t, wireframe.NewColorRGB(0, 0, 0), c)

	c, err = parseColor("0.5, 1,0")
	require.NoError(t, err)
	assert.Equal(t, wireframe.NewColorRGB(0.5, 1, 0), c)

	_, err = parseColor("mauve-ish")
	assert.Error(t, err)
	_, err = parseColor("1,x,0")
	assert.Error(t, err)

}

func TestRender(t *testing.T) {

	defer wireframe.SetLogger(nil)

	out := filepath.Join(t.TempDir(), "solar.ppm")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"../../scenefile/testdata/solar.yaml", "-o", out, "--width", "32", "--height", "16", "--aa", "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("P6\n32 16\n255\n")))
	assert.Len(t, data, len("P6\n32 16\n255\n")+32*16*3)

}

func TestRenderErrors(t *testing.T) {

	defer wireframe.SetLogger(nil)

	dir := t.TempDir()

	for _, args := range [][]string{
		{"../../scenefile/testdata/solar.yaml", "-o", filepath.Join(dir, "out.jpg")},
		{"../../scenefile/testdata/solar.yaml", "--width", "0"},
		{"../../scenefile/testdata/solar.yaml", "--background", "nope"},
		{"../../scenefile/testdata/solar.yaml", "--log-level", "loud"},
		{filepath.Join(dir, "missing.yaml")},
		{},
	} {
		cmd := newRootCommand()
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		assert.Error(t, cmd.Execute(), "%v", args)
	}

	_, err := os.Stat(filepath.Join(dir, "out.jpg"))
	assert.True(t, os.IsNotExist(err))

}
