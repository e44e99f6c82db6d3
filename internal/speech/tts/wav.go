package tts

import (
	"bytes"
	"encoding/binary"
	"strings"
	"time"
)

const (
	wordTime       = 120 * time.Millisecond
	maxReadingTime = time.Second
)

// readingTime approximates how long text takes to say, capped at maxReadingTime.
func readingTime(text string) time.Duration {
	d := time.Duration(len(strings.Fields(text))) * wordTime
	if d < wordTime {
		d = wordTime
	}
	return min(d, maxReadingTime)
}

// silentWAV renders d of 16-bit mono silence at SampleRate. note is stored in a
// "note" chunk ahead of the samples, where decoders skip it.
func silentWAV(note string, d time.Duration) []byte {
	noteData := []byte(note)
	if len(noteData)%2 != 0 {
		noteData = append(noteData, 0)
	}
	dataSize := uint32(d.Seconds()*SampleRate) * 2

	var buf bytes.Buffer
	write := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	buf.WriteString("RIFF")
	write(uint32(4 + (8 + 16) + (8 + len(noteData)) + (8 + int(dataSize))))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1)) // PCM
	write(uint16(1)) // mono
	write(uint32(SampleRate))
	write(uint32(SampleRate * 2))
	write(uint16(2))
	write(uint16(16))

	buf.WriteString("note")
	write(uint32(len(note)))
	buf.Write(noteData)

	buf.WriteString("data")
	write(dataSize)
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}
