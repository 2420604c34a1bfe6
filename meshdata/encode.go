package meshdata

import (
	"fmt"
	"io"

	"github.com/gorustyt/regionnav/common/message"
	"github.com/gorustyt/regionnav/common/rw"
)

const (
	MagicNumber   = 'R'<<24 | 'N'<<16 | 'A'<<8 | 'V'
	VersionNumber = 1
)

// ToBin lays out the soup as: magic, version, vertex count, xyz floats,
// polygon count, then per polygon its index count and indices. All values
// are 32 bit little endian.
func (d *MeshData) ToBin() []byte {
	w := rw.NewBinWriter()
	w.WriteUInt32(MagicNumber)
	w.WriteUInt32(VersionNumber)
	w.WriteUInt32(uint32(len(d.Vertices)))
	w.WriteFloat32s(d.flatVertices())
	w.WriteUInt32(uint32(len(d.Polygons)))
	for _, p := range d.Polygons {
		w.WriteUInt32(uint32(len(p)))
		w.WriteInt32s(p)
	}
	return w.GetWriteBytes()
}

func (d *MeshData) FromBin(data []byte) error {
	r := rw.NewBinReader(data)
	if magic := r.ReadUInt32(); r.Err() == nil && magic != MagicNumber {
		return ErrWrongMagic
	}
	if version := r.ReadUInt32(); r.Err() == nil && version != VersionNumber {
		return fmt.Errorf("%w: %d", ErrWrongVersion, version)
	}

	vertCount := int(r.ReadUInt32())
	if err := fits(r, vertCount, 12); err != nil {
		return err
	}
	flat := make([]float32, 3*vertCount)
	r.ReadFloat32s(flat)

	polyCount := int(r.ReadUInt32())
	if err := fits(r, polyCount, 4); err != nil {
		return err
	}
	polygons := make([][]int32, polyCount)
	for i := range polygons {
		n := int(r.ReadUInt32())
		if err := fits(r, n, 4); err != nil {
			return err
		}
		polygons[i] = make([]int32, n)
		r.ReadInt32s(polygons[i])
	}
	if r.Err() != nil {
		return fmt.Errorf("meshdata: decode bin: %w", r.Err())
	}
	if err := setFlatVertices(d, flat); err != nil {
		return err
	}
	d.Polygons = polygons
	return nil
}

// fits rejects counts the remaining input cannot hold.
func fits(r *rw.ReaderWriter, count, size int) error {
	if r.Err() != nil {
		return fmt.Errorf("meshdata: decode bin: %w", r.Err())
	}
	if count*size > r.Size() {
		return fmt.Errorf("meshdata: decode bin: %d records of %d bytes: %w", count, size, io.ErrUnexpectedEOF)
	}
	return nil
}

// ToProto encodes d as a Soup message, see meshdata.proto.
func (d *MeshData) ToProto() ([]byte, error) {
	soup := &Soup{Vertices: d.flatVertices()}
	for _, p := range d.Polygons {
		soup.Polygons = append(soup.Polygons, &Polygon{Indices: p})
	}
	return message.Encode(soup)
}

func (d *MeshData) FromProto(data []byte) error {
	soup := &Soup{}
	if err := message.Decode(data, soup); err != nil {
		return fmt.Errorf("meshdata: decode proto: %w", err)
	}
	if err := setFlatVertices(d, soup.GetVertices()); err != nil {
		return err
	}
	d.Polygons = make([][]int32, 0, len(soup.GetPolygons()))
	for _, p := range soup.GetPolygons() {
		d.Polygons = append(d.Polygons, p.GetIndices())
	}
	return nil
}
