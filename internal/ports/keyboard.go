package ports

// Key names delivered to keyboard listeners.
const (
	KeyEscape = "esc"
	KeyLeft   = "left"
	KeyRight  = "right"
)

// Keyboard delivers key presses to subscribed listeners. Subscribe returns a
// function that removes the listener; calling it more than once is a no-op.
type Keyboard interface {
	Subscribe(listener func(key string)) (unsubscribe func())
}
