package serialization

import (
	"time"

	"github.com/born-ml/convcore/internal/tensor"
)

// Format constants.
const (
	MagicBytes      = "BORN"
	FormatVersion   = 2  // Fixed 64-byte header with checksum; v1 files are not read.
	HeaderAlignment = 64 // Tensor data starts on a 64-byte boundary.
	FixedHeaderSize = 64
	ChecksumSize    = 32
	ChecksumOffset  = 0x20
)

// Flags stored at offset 0x08.
const (
	FlagHasMetadata uint32 = 1 << 0
)

// Header is the JSON header of a weights file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	Version       string            `json:"version"` // Library version that wrote the file.
	DType         string            `json:"dtype"`
	CreatedAt     time.Time         `json:"created_at"`
	Tensors       []TensorMeta      `json:"tensors"`
	Metadata      map[string]string `json:"metadata"`
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`   // e.g. "filter.0"
	Shape  [3]int `json:"shape"`  // x, y, z
	Offset int64  `json:"offset"` // Bytes from the start of the data section.
	Size   int64  `json:"size"`   // Size in bytes.
}

// TensorShape returns the stored shape.
func (m TensorMeta) TensorShape() tensor.Shape {
	return tensor.Shape{X: m.Shape[0], Y: m.Shape[1], Z: m.Shape[2]}
}

// alignedDataOffset returns where tensor data begins for a header of the
// given size.
func alignedDataOffset(headerSize int64) int64 {
	pos := int64(FixedHeaderSize) + headerSize
	return pos + (HeaderAlignment-(pos%HeaderAlignment))%HeaderAlignment
}
