// Package input defines the window-system independent input events the frame
// loop consumes. Window backends translate their native events into these.
package input

// EventType identifies the kind of an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventWindowResize:
		return "resize"
	case EventKeyDown:
		return "key_down"
	case EventKeyUp:
		return "key_up"
	case EventMouseMove:
		return "mouse_move"
	}
	return "none"
}

// Key is a keyboard key the application reacts to. Every other key is
// reported as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyQ:       "q",
	KeyW:       "w",
	KeyE:       "e",
	KeyR:       "r",
	KeyT:       "t",
	KeyY:       "y",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// Event represents a processed input event.
type Event struct {
	Type EventType
	Key  Key
	// Repeat is set on key-down events generated by auto-repeat.
	Repeat bool
	Width  int
	Height int
	// Cursor position in window pixels, origin top-left.
	MouseX float64
	MouseY float64
}

// Quit returns a quit event.
func Quit() Event { return Event{Type: EventQuit} }

// Resize returns a window resize event.
func Resize(w, h int) Event { return Event{Type: EventWindowResize, Width: w, Height: h} }

// KeyDown returns a key press event.
func KeyDown(k Key, repeat bool) Event { return Event{Type: EventKeyDown, Key: k, Repeat: repeat} }

// KeyUp returns a key release event.
func KeyUp(k Key) Event { return Event{Type: EventKeyUp, Key: k} }

// MouseMove returns a cursor motion event.
func MouseMove(x, y float64) Event { return Event{Type: EventMouseMove, MouseX: x, MouseY: y} }

// Frame summarises one batch of polled events.
type Frame struct {
	Quit    bool
	Presses []Key
	// Resized is set when at least one resize event arrived; Width and
	// Height hold the last one.
	Resized bool
	Width   int
	Height  int
	// Moved is set when the cursor moved; MouseX and MouseY hold the last
	// position.
	Moved  bool
	MouseX float64
	MouseY float64
}

// Collect folds events into a Frame. Cursor motion and resizes are coalesced
// to the last value, key presses keep their order and repeats are dropped.
func Collect(events []Event) Frame {
	var f Frame
	for _, e := range events {
		switch e.Type {
		case EventQuit:
			f.Quit = true
		case EventWindowResize:
			f.Resized = true
			f.Width, f.Height = e.Width, e.Height
		case EventKeyDown:
			if !e.Repeat {
				f.Presses = append(f.Presses, e.Key)
			}
		case EventMouseMove:
			f.Moved = true
			f.MouseX, f.MouseY = e.MouseX, e.MouseY
		}
	}
	return f
}
