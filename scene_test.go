package wireframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneLookup(t *testing.T) {

	scene := NewScene("test", nil)
	require.NotNil(t, scene.Camera)

	wheel := NewModel("Wheel")
	car := NewPosition("Car")
	front := NewPositionModel(wheel)
	front.Name = "Front"
	back := NewPositionModel(wheel)
	back.Name = "Back"
	require.NoError(t, car.AddChildren(front, back))

	scene.AddPosition(car, NewPosition("Ground"))

	assert.Equal(t, car, scene.Position(0))
	assert.Nil(t, scene.Position(2))
	assert.Nil(t, scene.Position(-1))

	assert.Equal(t, back, scene.Get("Car/Back"))
	assert.Nil(t, scene.Get("Ground/Back"))

	assert.Equal(t, front, scene.PositionByModelName("Wheel"))
	assert.Equal(t, wheel, scene.ModelByName("Wheel"))
	assert.Nil(t, scene.ModelByName("Engine"))

	assert.Contains(t, scene.String(), "[MODEL] Back")

}
