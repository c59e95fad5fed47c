package viewer

// Key identifies one of the keys the viewer reacts to. The graphics layer maps platform keys onto these.
type Key uint8

const (
	KeyEscape Key = iota
	KeyM
	KeyR
	KeyG
	KeyB
	KeyA
	KeyD
	KeyX
	KeyV
	Key1
	Key2
	Key3
	keyCount
)

// AllKeys lists every recognised key in a stable order.
var AllKeys = [keyCount]Key{KeyEscape, KeyM, KeyR, KeyG, KeyB, KeyA, KeyD, KeyX, KeyV, Key1, Key2, Key3}

// KeySet is a bit set of keys held down during one frame.
type KeySet uint16

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Down reports whether k is held in this set.
func (s KeySet) Down(k Key) bool {
	return s&(1<<k) != 0
}

// Keys builds a set from the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Input is everything the viewer reads from the platform in one frame.
type Input struct {
	Keys       KeySet
	LeftButton bool
	// Pointer movement since the previous frame, in pixels.
	DeltaX, DeltaY float32
}

// Pressed reports a key-down transition: held now, not held in prev.
func (in Input) Pressed(prev Input, k Key) bool {
	return in.Keys.Down(k) && !prev.Keys.Down(k)
}
