package buttons

import "encoding/binary"

const evKey = 0x01

// Linux input-event-codes.h
const (
	KeyF1 = 59
	KeyF2 = 60
	KeyF3 = 61
	KeyF4 = 62
)

// DefaultKeymap binds the function keys of an attached keyboard or keypad.
var DefaultKeymap = map[uint16]Event{
	KeyF1: Next,
	KeyF2: Alarm,
	KeyF3: Reset,
	KeyF4: Exit,
}

// decodeKeys parses a buffer of input_event records (a timeval of tvSize
// bytes, then u16 type, u16 code and s32 value) and returns the events of
// mapped keys that went down. Trailing partial records are ignored.
func decodeKeys(buf []byte, tvSize int, keymap map[uint16]Event) []Event {
	size := tvSize + 8
	var out []Event
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off : off+size]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey || value != 1 {
			continue
		}
		if ev, ok := keymap[code]; ok {
			out = append(out, ev)
		}
	}
	return out
}
