// Package meshdata moves polygon soups in and out of the navmesh builder.
// A soup is a flat vertex list plus polygons given as vertex indices, stored
// as YAML, Wavefront OBJ, a compact binary blob or a protobuf message.
package meshdata

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorustyt/regionnav/common"
	"github.com/gorustyt/regionnav/halfedge"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidVertex = errors.New("meshdata: vertex must have 3 components")
	ErrInvalidIndex  = errors.New("meshdata: polygon index out of range")
	ErrUnknownFormat = errors.New("meshdata: unknown file format")
	ErrWrongMagic    = errors.New("meshdata: wrong magic number")
	ErrWrongVersion  = errors.New("meshdata: wrong version number")
)

type MeshData struct {
	Vertices [][]float32 `yaml:"vertices"`
	Polygons [][]int32   `yaml:"polygons"`
}

func (d *MeshData) vertex(i int32) (common.Vec3, error) {
	if i < 0 || int(i) >= len(d.Vertices) {
		return common.Vec3{}, fmt.Errorf("%w: %d of %d", ErrInvalidIndex, i, len(d.Vertices))
	}
	v := d.Vertices[i]
	if len(v) != 3 {
		return common.Vec3{}, fmt.Errorf("%w: vertex %d has %d", ErrInvalidVertex, i, len(v))
	}
	return common.Vec3{v[0], v[1], v[2]}, nil
}

// ToMesh builds a fresh half-edge mesh with one polygon per entry of
// Polygons, in order.
func (d *MeshData) ToMesh() (*halfedge.Mesh, error) {
	m := halfedge.NewMesh()
	for p, indices := range d.Polygons {
		contour := make([]common.Vec3, 0, len(indices))
		for _, i := range indices {
			v, err := d.vertex(i)
			if err != nil {
				return nil, fmt.Errorf("polygon %d: %w", p, err)
			}
			contour = append(contour, v)
		}
		if _, err := m.AddPolygon(contour); err != nil {
			return nil, fmt.Errorf("polygon %d: %w", p, err)
		}
	}
	return m, nil
}

// FromRegions exports the boundary of every region. Equal positions share
// one vertex.
func FromRegions(m *halfedge.Mesh, regions []halfedge.PolygonID) *MeshData {
	d := &MeshData{}
	seen := make(map[common.Vec3]int32)
	for _, r := range regions {
		var indices []int32
		for _, v := range m.Vertices(r) {
			i, ok := seen[v]
			if !ok {
				i = int32(len(d.Vertices))
				seen[v] = i
				d.Vertices = append(d.Vertices, []float32{v[0], v[1], v[2]})
			}
			indices = append(indices, i)
		}
		d.Polygons = append(d.Polygons, indices)
	}
	return d
}

func (d *MeshData) flatVertices() []float32 {
	res := make([]float32, 0, 3*len(d.Vertices))
	for _, v := range d.Vertices {
		res = append(res, v...)
	}
	return res
}

func setFlatVertices(d *MeshData, flat []float32) error {
	if len(flat)%3 != 0 {
		return fmt.Errorf("%w: %d floats", ErrInvalidVertex, len(flat))
	}
	d.Vertices = make([][]float32, 0, len(flat)/3)
	for i := 0; i < len(flat); i += 3 {
		d.Vertices = append(d.Vertices, []float32{flat[i], flat[i+1], flat[i+2]})
	}
	return nil
}

func LoadYAML(data []byte) (*MeshData, error) {
	d := &MeshData{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("meshdata: decode yaml: %w", err)
	}
	return d, nil
}

func (d *MeshData) ToYAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// Load reads a soup from path. The extension picks the codec: .yaml/.yml,
// .obj, .bin or .pb.
func Load(path string) (*MeshData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := &MeshData{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(data)
	case ".obj":
		return LoadOBJ(bytes.NewReader(data))
	case ".bin":
		err = d.FromBin(data)
	case ".pb":
		err = d.FromProto(data)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Save writes d to path using the codec matching its extension.
func (d *MeshData) Save(path string) error {
	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = d.ToYAML()
	case ".obj":
		data = d.ToOBJ()
	case ".bin":
		data = d.ToBin()
	case ".pb":
		data, err = d.ToProto()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
