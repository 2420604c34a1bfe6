package meshdata

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadOBJ reads the vertices and faces of a Wavefront OBJ stream. Faces are
// kept as polygons, texture and normal references are ignored.
func LoadOBJ(r io.Reader) (*MeshData, error) {
	d := &MeshData{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.Fields(scanner.Text())
		if len(row) == 0 || strings.HasPrefix(row[0], "#") {
			continue
		}
		var err error
		switch row[0] {
		case "v":
			err = d.parseVertex(row[1:])
		case "f":
			err = d.parseFace(row[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("meshdata: obj line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshdata: read obj: %w", err)
	}
	return d, nil
}

func (d *MeshData) parseVertex(ss []string) error {
	if len(ss) < 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidVertex, len(ss))
	}
	v := make([]float32, 3)
	for i := range v {
		f, err := strconv.ParseFloat(ss[i], 32)
		if err != nil {
			return err
		}
		v[i] = float32(f)
	}
	d.Vertices = append(d.Vertices, v)
	return nil
}

func (d *MeshData) parseFace(ss []string) error {
	face := make([]int32, 0, len(ss))
	for _, s := range ss {
		// v, v/vt, v//vn or v/vt/vn
		ref, _, _ := strings.Cut(s, "/")
		i, err := strconv.ParseInt(ref, 10, 32)
		if err != nil {
			return err
		}
		if i < 0 {
			i += int64(len(d.Vertices))
		} else {
			i--
		}
		if i < 0 || i >= int64(len(d.Vertices)) {
			return fmt.Errorf("%w: %s", ErrInvalidIndex, s)
		}
		face = append(face, int32(i))
	}
	d.Polygons = append(d.Polygons, face)
	return nil
}

func (d *MeshData) ToOBJ() []byte {
	var buf bytes.Buffer
	for _, v := range d.Vertices {
		buf.WriteString("v")
		for _, f := range v {
			buf.WriteByte(' ')
			buf.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
		}
		buf.WriteByte('\n')
	}
	for _, p := range d.Polygons {
		buf.WriteString("f")
		for _, i := range p {
			buf.WriteByte(' ')
			buf.WriteString(strconv.Itoa(int(i) + 1))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
