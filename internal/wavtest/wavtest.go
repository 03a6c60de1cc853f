// SPDX-License-Identifier: EPL-2.0

// Package wavtest builds WAV byte streams for tests.
//
// Two builders are provided: File assembles RIFF bytes by hand so tests can
// produce malformed or oddly ordered containers, and Encode produces a real
// file through github.com/go-audio/wav so the reader is also exercised
// against an encoder this module did not write.
package wavtest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Chunk is an arbitrary RIFF chunk to splice into a fixture.
type Chunk struct {
	ID   string
	Data []byte
}

// File describes a WAV fixture. Zero values fall back to a canonical
// 16-bit PCM layout; the remaining fields exist to build the awkward
// containers the reader must tolerate or reject.
type File struct {
	SampleRate    int
	Channels      int
	BitsPerSample int    // 0 means 16
	FormatTag     uint16 // 0 means 1 (integer PCM)
	Samples       []int16

	Before    []Chunk // chunks emitted before the fmt chunk
	Between   []Chunk // chunks emitted between fmt and data
	DataFirst bool    // emit the data chunk ahead of fmt
	OmitFmt   bool
	OmitData  bool

	RiffTag string // "" means "RIFF"
	WaveTag string // "" means "WAVE"
}

// Bytes assembles the fixture.
func (f File) Bytes() []byte {
	bits := f.BitsPerSample
	if bits == 0 {
		bits = 16
	}
	tag := f.FormatTag
	if tag == 0 {
		tag = 1
	}

	fmtPayload := new(bytes.Buffer)
	binary.Write(fmtPayload, binary.LittleEndian, tag)
	binary.Write(fmtPayload, binary.LittleEndian, uint16(f.Channels))
	binary.Write(fmtPayload, binary.LittleEndian, uint32(f.SampleRate))
	binary.Write(fmtPayload, binary.LittleEndian, uint32(f.SampleRate*f.Channels*bits/8))
	binary.Write(fmtPayload, binary.LittleEndian, uint16(f.Channels*bits/8))
	binary.Write(fmtPayload, binary.LittleEndian, uint16(bits))

	dataPayload := new(bytes.Buffer)
	for _, s := range f.Samples {
		binary.Write(dataPayload, binary.LittleEndian, s)
	}

	body := new(bytes.Buffer)
	for _, ch := range f.Before {
		writeChunk(body, ch.ID, ch.Data)
	}
	if f.DataFirst && !f.OmitData {
		writeChunk(body, "data", dataPayload.Bytes())
	}
	if !f.OmitFmt {
		writeChunk(body, "fmt ", fmtPayload.Bytes())
	}
	for _, ch := range f.Between {
		writeChunk(body, ch.ID, ch.Data)
	}
	if !f.DataFirst && !f.OmitData {
		writeChunk(body, "data", dataPayload.Bytes())
	}

	riffTag := f.RiffTag
	if riffTag == "" {
		riffTag = "RIFF"
	}
	waveTag := f.WaveTag
	if waveTag == "" {
		waveTag = "WAVE"
	}

	out := new(bytes.Buffer)
	out.WriteString(riffTag)
	binary.Write(out, binary.LittleEndian, uint32(4+body.Len()))
	out.WriteString(waveTag)
	out.Write(body.Bytes())
	return out.Bytes()
}

func writeChunk(w *bytes.Buffer, id string, data []byte) {
	w.WriteString(id)
	binary.Write(w, binary.LittleEndian, uint32(len(data)))
	w.Write(data)
	if len(data)%2 == 1 {
		w.WriteByte(0) // RIFF word alignment
	}
}

// Encode writes a 16-bit PCM WAV through the go-audio encoder.
func Encode(sampleRate, channels int, samples []int16) ([]byte, error) {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	w := &memWriter{}
	enc := gowav.NewEncoder(w, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return w.buf, nil
}

// Ramp generates n deterministic, non-repeating samples.
func Ramp(n int) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(i*37 - 1000)
	}
	return samples
}

// memWriter is an in-memory io.WriteSeeker for the go-audio encoder, which
// seeks back to patch size fields on Close.
type memWriter struct {
	buf []byte
	pos int
}

func (m *memWriter) Write(p []byte) (int, error) {
	if grow := m.pos + len(p) - len(m.buf); grow > 0 {
		m.buf = append(m.buf, make([]byte, grow)...)
	}
	copy(m.buf[m.pos:], p)
	m.pos += len(p)
	return len(p), nil
}

func (m *memWriter) Seek(offset int64, whence int) (int64, error) {
	var abs int
	switch whence {
	case io.SeekStart:
		abs = int(offset)
	case io.SeekCurrent:
		abs = m.pos + int(offset)
	case io.SeekEnd:
		abs = len(m.buf) + int(offset)
	default:
		return 0, errors.New("wavtest: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("wavtest: negative seek position")
	}
	m.pos = abs
	return int64(abs), nil
}
