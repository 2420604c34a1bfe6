package rw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReaderWriter is a little-endian cursor over a byte buffer. Reads past the
// end record the first error and return zero values from then on.
type ReaderWriter struct {
	order   binary.ByteOrder
	dataBuf []byte
	rw      bytes.Buffer
	err     error
}

func NewBinWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func NewBinReader(data []byte) *ReaderWriter {
	d := &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	d.rw.Write(data)
	return d
}

// Err returns the first read error, if any.
func (w *ReaderWriter) Err() error {
	return w.err
}

func (w *ReaderWriter) read(n int) []byte {
	if w.err != nil {
		return nil
	}
	buf := w.dataBuf[:n]
	if _, err := io.ReadFull(&w.rw, buf); err != nil {
		w.err = fmt.Errorf("rw: read %d bytes: %w", n, io.ErrUnexpectedEOF)
		return nil
	}
	return buf
}

func (w *ReaderWriter) ReadUInt32() uint32 {
	buf := w.read(4)
	if buf == nil {
		return 0
	}
	return w.order.Uint32(buf)
}

func (w *ReaderWriter) ReadInt32() int32 {
	return int32(w.ReadUInt32())
}

func (w *ReaderWriter) ReadInt32s(value []int32) {
	for i := range value {
		value[i] = w.ReadInt32()
	}
}

func (w *ReaderWriter) ReadFloat32() float32 {
	return math.Float32frombits(w.ReadUInt32())
}

func (w *ReaderWriter) ReadFloat32s(value []float32) {
	for i := range value {
		value[i] = w.ReadFloat32()
	}
}

func (w *ReaderWriter) WriteUInt32(v uint32) {
	w.order.PutUint32(w.dataBuf, v)
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteInt32(v int32) {
	w.WriteUInt32(uint32(v))
}

func (w *ReaderWriter) WriteInt32s(value []int32) {
	for _, tmp := range value {
		w.WriteInt32(tmp)
	}
}

func (w *ReaderWriter) WriteFloat32(v float32) {
	w.WriteUInt32(math.Float32bits(v))
}

func (w *ReaderWriter) WriteFloat32s(value []float32) {
	for _, tmp := range value {
		w.WriteFloat32(tmp)
	}
}

func (w *ReaderWriter) GetWriteBytes() (res []byte) {
	return w.rw.Bytes()
}

// Size returns the number of unread bytes.
func (w *ReaderWriter) Size() int {
	return w.rw.Len()
}
