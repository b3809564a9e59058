package buttons

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	for _, ev := range []Event{Next, Alarm, Reset, Exit} {
		got, err := ParseEvent(string(ev))
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	}
	_, err := ParseEvent("shutdown")
	assert.Error(t, err)
}

func TestChanDropsWhenFull(t *testing.T) {
	c := NewChan(2)
	assert.True(t, c.Push(Next))
	assert.True(t, c.Push(Reset))
	assert.False(t, c.Push(Exit))

	assert.Equal(t, Next, <-c.Events())
	assert.True(t, c.Push(Exit))

	require.NoError(t, c.Stop())
	require.NoError(t, c.Stop())
	assert.False(t, c.Push(Next))

	var got []Event
	for ev := range c.Events() {
		got = append(got, ev)
	}
	assert.Equal(t, []Event{Reset, Exit}, got)
}

func TestMulti(t *testing.T) {
	a, b := NewChan(1), NewChan(1)
	m := NewMulti(a, b)
	require.NoError(t, m.Start(context.Background()))
	a.Push(Next)
	b.Push(Alarm)
	require.NoError(t, m.Stop())

	var got []Event
	for ev := range m.Events() {
		got = append(got, ev)
	}
	assert.ElementsMatch(t, []Event{Next, Alarm}, got)
}

func record(tvSize int, typ, code uint16, value int32) []byte {
	rec := make([]byte, tvSize+8)
	binary.LittleEndian.PutUint16(rec[tvSize:], typ)
	binary.LittleEndian.PutUint16(rec[tvSize+2:], code)
	binary.LittleEndian.PutUint32(rec[tvSize+4:], uint32(value))
	return rec
}

func TestDecodeKeys(t *testing.T) {
	const tv = 16
	var buf []byte
	buf = append(buf, record(tv, evKey, KeyF1, 1)...)
	buf = append(buf, record(tv, evKey, KeyF1, 0)...) // release
	buf = append(buf, record(tv, evKey, KeyF4, 2)...) // autorepeat
	buf = append(buf, record(tv, 0x00, KeyF3, 1)...)  // sync event
	buf = append(buf, record(tv, evKey, 30, 1)...)    // unmapped key
	buf = append(buf, record(tv, evKey, KeyF3, 1)...)
	buf = append(buf, record(tv, evKey, KeyF2, 1)[:10]...)

	assert.Equal(t, []Event{Next, Reset}, decodeKeys(buf, tv, DefaultKeymap))
	assert.Empty(t, decodeKeys(nil, tv, DefaultKeymap))
}
