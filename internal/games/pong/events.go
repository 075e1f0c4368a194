package pong

// Event is a sound-worthy occurrence during a tick.
// Values are ordered by precedence: when several happen in one tick,
// the highest one is reported.
type Event int

const (
	EventNone Event = iota
	EventWallBounce
	EventPaddleHit
	EventScored
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventWallBounce:
		return "wall"
	case EventPaddleHit:
		return "paddle"
	case EventScored:
		return "score"
	default:
		return "unknown"
	}
}

//go:generate go tool mockgen -destination=./mocks/pong_mock.go -package=mocks . SoundSink,RandomSource

// SoundSink receives at most one event per tick.
// Implementations must not fail: a missing cue is simply not played.
type SoundSink interface {
	Play(e Event)
}

// nopSink discards every event.
type nopSink struct{}

func (nopSink) Play(Event) {}
