package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectCoalescesMotionAndResize(t *testing.T) {
	f := Collect([]Event{
		MouseMove(10, 20),
		Resize(800, 600),
		MouseMove(30, 40),
		Resize(1024, 768),
	})

	assert.True(t, f.Moved)
	assert.Equal(t, 30.0, f.MouseX)
	assert.Equal(t, 40.0, f.MouseY)
	assert.True(t, f.Resized)
	assert.Equal(t, 1024, f.Width)
	assert.Equal(t, 768, f.Height)
	assert.False(t, f.Quit)
}

func TestCollectKeepsPressOrderAndDropsRepeats(t *testing.T) {
	f := Collect([]Event{
		KeyDown(KeyE, false),
		KeyDown(KeyE, true),
		KeyUp(KeyE),
		KeyDown(KeyQ, false),
		KeyDown(KeyEscape, false),
	})

	assert.Equal(t, []Key{KeyE, KeyQ, KeyEscape}, f.Presses)
}

func TestCollectQuit(t *testing.T) {
	f := Collect([]Event{MouseMove(1, 1), Quit()})
	assert.True(t, f.Quit)
	assert.True(t, f.Moved)
}

func TestCollectEmpty(t *testing.T) {
	f := Collect(nil)
	assert.Equal(t, Frame{}, f)
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyEscape:  "escape",
		KeyQ:       "q",
		KeyY:       "y",
		KeyUnknown: "unknown",
		Key(99):    "unknown",
		Key(-1):    "unknown",
	}
	for k, want := range tests {
		assert.Equal(t, want, k.String())
	}
}
