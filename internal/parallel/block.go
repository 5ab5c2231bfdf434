// Package parallel provides the block-dispatch scheduler used by minirt.
//
// The image is divided into vertical blocks: contiguous runs of BlockSize
// columns that span every row. Block identifiers are handed to a fixed set of
// worker goroutines through a shared blocking Queue. Each worker renders the
// blocks it receives directly into the caller's buffer; because blocks never
// overlap, no lock is held while pixels are computed.
//
// Shutdown uses one terminal token per worker. A worker that pops a token
// exits without touching the queue again, so the number of tokens pushed must
// equal the number of workers.
package parallel

import (
	"errors"
	"fmt"
)

// Partition errors.
var (
	// ErrInvalidGeometry is returned when a dimension or the block size is not positive.
	ErrInvalidGeometry = errors.New("parallel: width, height and block size must be positive")

	// ErrUnevenPartition is returned when the width is not a multiple of the block size.
	ErrUnevenPartition = errors.New("parallel: width is not a multiple of the block size")
)

// Block is a contiguous range of columns spanning the full image height.
//
// A block covers the half-open column range [X0, X1) and the rows [0, Height).
type Block struct {
	// ID is the block index in [0, Partition.Count()).
	ID int

	// X0 is the first column of the block.
	X0 int

	// X1 is one past the last column of the block.
	X1 int

	// Height is the number of rows covered.
	Height int
}

// Width returns the number of columns in the block.
func (b Block) Width() int {
	return b.X1 - b.X0
}

// Pixels returns the number of pixels in the block.
func (b Block) Pixels() int {
	return b.Width() * b.Height
}

// Contains returns true if the pixel (x, y) lies within the block.
func (b Block) Contains(x, y int) bool {
	return x >= b.X0 && x < b.X1 && y >= 0 && y < b.Height
}

// Partition splits the column range [0, Width) into equal blocks.
//
// A Partition is an immutable value. The zero value has no blocks.
type Partition struct {
	width     int
	height    int
	blockSize int
}

// NewPartition validates the geometry and returns the partition.
// The width must be an exact multiple of blockSize; otherwise
// ErrUnevenPartition is returned and no block is ever created.
func NewPartition(width, height, blockSize int) (Partition, error) {
	if width <= 0 || height <= 0 || blockSize <= 0 {
		return Partition{}, fmt.Errorf("%w: width %d, height %d, block size %d",
			ErrInvalidGeometry, width, height, blockSize)
	}
	if width%blockSize != 0 {
		return Partition{}, fmt.Errorf("%w: width %d, block size %d",
			ErrUnevenPartition, width, blockSize)
	}
	return Partition{width: width, height: height, blockSize: blockSize}, nil
}

// Width returns the image width in pixels.
func (p Partition) Width() int {
	return p.width
}

// Height returns the image height in pixels.
func (p Partition) Height() int {
	return p.height
}

// BlockSize returns the number of columns per block.
func (p Partition) BlockSize() int {
	return p.blockSize
}

// Count returns the number of blocks.
func (p Partition) Count() int {
	if p.blockSize == 0 {
		return 0
	}
	return p.width / p.blockSize
}

// Block returns the block with the given identifier.
// The identifier must be in [0, Count()).
func (p Partition) Block(id int) Block {
	x0 := id * p.blockSize
	return Block{
		ID:     id,
		X0:     x0,
		X1:     x0 + p.blockSize,
		Height: p.height,
	}
}

// Blocks returns every block in increasing identifier order.
func (p Partition) Blocks() []Block {
	blocks := make([]Block, p.Count())
	for i := range blocks {
		blocks[i] = p.Block(i)
	}
	return blocks
}

// BlockAtColumn returns the identifier of the block containing column x,
// or -1 if x is outside the image.
func (p Partition) BlockAtColumn(x int) int {
	if x < 0 || x >= p.width || p.blockSize == 0 {
		return -1
	}
	return x / p.blockSize
}
