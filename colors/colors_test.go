package colors

import (
	"testing"

	"github.com/solarlune/wireframe"
	"github.com/stretchr/testify/assert"
)

func TestNamed(t *testing.T) {

	c, ok := Named("red")
	assert.True(t, ok)
	assert.Equal(t, Red(), c)
	assert.Equal(t, wireframe.NewColorRGB(1, 0, 0), c)

	_, ok = Named("chartreuse-ish")
	assert.False(t, ok)

	assert.Equal(t, wireframe.DefaultColor, White())

}
