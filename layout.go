package alphablend

// Lane names the scalar type a plain channel is stored as.
type Lane uint8

const (
	// LaneNone means the channel has no certified memory layout.
	LaneNone Lane = iota
	// LaneU8 means each channel is one byte, normalized as v/255.
	LaneU8
	// LaneF32 means each channel is one float32, normalized by clamping.
	LaneF32
)

// String returns the lane name.
func (l Lane) String() string {
	switch l {
	case LaneU8:
		return "u8"
	case LaneF32:
		return "f32"
	default:
		return "none"
	}
}

// PlainLayout is implemented by channel types whose colors may be processed
// as raw memory by the buffer fast path.
//
// By returning LaneU8 or LaneF32 the type promises that:
//   - Color[C] is exactly four contiguous lane values with no padding,
//   - any bit pattern is a valid channel value,
//   - Normalized and FromNormalized match U8 (or F32) exactly.
//
// The promise is not verified beyond the size of Color[C]. Breaking it
// produces wrong results, not errors.
type PlainLayout interface {
	PlainLane() Lane
}

// laneOf returns the certified lane of C, or LaneNone.
func laneOf[C Channel[C]]() Lane {
	var z C
	if p, ok := any(z).(PlainLayout); ok {
		return p.PlainLane()
	}
	return LaneNone
}
