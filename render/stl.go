package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// Binary STL codec: 80 byte header, uint32 triangle count, then 50 byte
// records (normal, three vertices, attribute count).

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // attribute byte count
}

// WriteSTL writes model triangles to a writer in binary STL format.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	bw := bufio.NewWriter(w)
	header := stlHeader{Count: uint32(len(model))}
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return err
	}
	var d stlTriangle
	for _, t := range model {
		n := t.Normal()
		d.Normal = vec32(n)
		d.Vertex1 = vec32(t.V[0])
		d.Vertex2 = vec32(t.V[1])
		d.Vertex3 = vec32(t.V[2])
		if err := binary.Write(bw, binary.LittleEndian, &d); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSTLFile writes model triangles to a binary STL file.
func WriteSTLFile(path string, model []Triangle3) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteSTL(file, model)
}

// ReadSTL reads a binary STL model from a reader.
func ReadSTL(r io.Reader) ([]Triangle3, error) {
	br := bufio.NewReader(r)
	var header stlHeader
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("STL header read failed: %w", err)
	}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	output := make([]Triangle3, 0, header.Count)
	var d stlTriangle
	for i := 0; i < int(header.Count); i++ {
		if err := binary.Read(br, binary.LittleEndian, &d); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, header.Count, err)
		}
		output = append(output, d.toTriangle3())
	}
	return output, nil
}

// ReadSTLFile reads a binary STL model from a file.
func ReadSTLFile(path string) ([]Triangle3, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	model, err := ReadSTL(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

func (d stlTriangle) toTriangle3() Triangle3 {
	return Triangle3{V: [3]r3.Vec{
		vec64(d.Vertex1),
		vec64(d.Vertex2),
		vec64(d.Vertex3),
	}}
}

func vec32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func vec64(v [3]float32) r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
