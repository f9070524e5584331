package voxel

import (
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// MaxMapBlocks bounds the size of maps read from disk.
const MaxMapBlocks = 512 * 512 * 256

type Map struct {
	blocks []Block
	width  int32
	height int32
	depth  int32
}

func NewMap(width, height, depth int32) *Map {
	return &Map{
		blocks: make([]Block, width*height*depth),
		width:  width,
		height: height,
		depth:  depth,
	}
}

func NewMapFromFile(filename string) (*Map, error) {
	m := &Map{}
	if err := m.LoadFromDisk(filename); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) GetDimensions() (int32, int32, int32) {
	return m.width, m.height, m.depth
}

func (m *Map) index(x, y, z int32) int32 {
	return x + y*m.width + z*m.width*m.height
}

func (m *Map) Contains(x int32, y int32, z int32) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height && z >= 0 && z < m.depth
}

func (m *Map) GetGlobalBlock(x int32, y int32, z int32) *Block {
	if !m.Contains(x, y, z) {
		return nil
	}
	return &m.blocks[m.index(x, y, z)]
}

func (m *Map) SetBlock(x int32, y int32, z int32, block *Block) {
	if !m.Contains(x, y, z) {
		return
	}
	id := EMPTY
	if block != nil {
		id = block.ID
	}
	m.blocks[m.index(x, y, z)].ID = id
}

func (m *Map) IsSolidBlockAt(x int32, y int32, z int32) bool {
	block := m.GetGlobalBlock(x, y, z)
	return block != nil && !block.IsAir()
}

// BlocksChannel reports whether the block at x,y,z stops traces on channel.
func (m *Map) BlocksChannel(x, y, z int32, channel CollisionChannel) bool {
	return m.GetGlobalBlock(x, y, z).Blocks(channel)
}

// FillGround sets every block below groundHeight to blockID.
func (m *Map) FillGround(groundHeight int32, blockID byte) {
	for z := int32(0); z < m.depth; z++ {
		for y := int32(0); y < groundHeight && y < m.height; y++ {
			for x := int32(0); x < m.width; x++ {
				m.blocks[m.index(x, y, z)].ID = blockID
			}
		}
	}
}

// SaveToDisk writes the map as gzip compressed little endian data:
// width, height, depth as int32 followed by one byte per block.
func (m *Map) SaveToDisk(filename string) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create map file %s", filename)
	}
	defer outfile.Close()

	gzipWriter := gzip.NewWriter(outfile)
	for _, dim := range []int32{m.width, m.height, m.depth} {
		if err = binary.Write(gzipWriter, binary.LittleEndian, dim); err != nil {
			return errors.Wrap(err, "could not write map dimensions")
		}
	}
	println(fmt.Sprintf("[Map] Saving map with dimensions %d %d %d", m.width, m.height, m.depth))

	ids := make([]byte, len(m.blocks))
	for i, block := range m.blocks {
		ids[i] = block.ID
	}
	if _, err = gzipWriter.Write(ids); err != nil {
		return errors.Wrap(err, "could not write map blocks")
	}
	return errors.Wrap(gzipWriter.Close(), "could not flush map file")
}

func (m *Map) LoadFromDisk(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "could not open map file %s", filename)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return errors.Wrapf(err, "map file %s is not gzip compressed", filename)
	}
	defer gzipReader.Close()

	var width, height, depth int32
	for _, dim := range []*int32{&width, &height, &depth} {
		if err = binary.Read(gzipReader, binary.LittleEndian, dim); err != nil {
			return errors.Wrap(err, "could not read map dimensions")
		}
	}
	if width <= 0 || height <= 0 || depth <= 0 {
		return errors.Errorf("invalid map dimensions %d %d %d", width, height, depth)
	}
	blockCount := int64(width) * int64(height) * int64(depth)
	if blockCount > MaxMapBlocks {
		return errors.Errorf("map dimensions %d %d %d exceed %d blocks", width, height, depth, MaxMapBlocks)
	}
	println(fmt.Sprintf("[Map] Loading map with dimensions %d %d %d", width, height, depth))

	ids := make([]byte, blockCount)
	if err = binary.Read(gzipReader, binary.LittleEndian, ids); err != nil {
		return errors.Wrap(err, "could not read map blocks")
	}
	m.blocks = make([]Block, len(ids))
	for i, id := range ids {
		m.blocks[i].ID = id
	}
	m.width, m.height, m.depth = width, height, depth
	return nil
}
