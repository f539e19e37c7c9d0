package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/convcore/internal/tensor"
)

// ReadFrom decodes a weights file from r. The element type recorded in the
// file must match T; the checksum and every tensor offset are verified
// before any tensor is built.
func ReadFrom[T tensor.Numeric](r io.Reader) (map[string]*tensor.Tensor[T], Header, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixed[0:4]) != MagicBytes {
		return nil, Header{}, ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint32(fixed[4:8]); v != FormatVersion {
		return nil, Header{}, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, v, FormatVersion)
	}

	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	var stored [32]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, Header{}, ErrHeaderTooLarge
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read header JSON: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, Header{}, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	dtype := tensor.DataTypeOf[T]()
	if header.DType != dtype.String() {
		return nil, Header{}, fmt.Errorf("%w: file holds %s, requested %s", ErrDataTypeMismatch, header.DType, dtype)
	}

	//nolint:gosec // G115: headerSize was bounded by MaxHeaderSize above
	padding := alignedDataOffset(int64(headerSize)) - int64(FixedHeaderSize) - int64(headerSize)
	if _, err := io.CopyN(io.Discard, r, padding); err != nil {
		return nil, Header{}, fmt.Errorf("failed to skip padding: %w", err)
	}

	data, err := io.ReadAll(io.LimitReader(r, int64(dataSize))) //nolint:gosec // G115: checked against len below
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to read tensor data: %w", err)
	}
	if uint64(len(data)) != dataSize {
		return nil, Header{}, fmt.Errorf("failed to read tensor data: %w", io.ErrUnexpectedEOF)
	}
	if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
		return nil, Header{}, err
	}
	if err := ValidateHeader(&header, dtype.Size(), int64(len(data))); err != nil {
		return nil, Header{}, fmt.Errorf("validation failed: %w", err)
	}

	dict := make(map[string]*tensor.Tensor[T], len(header.Tensors))
	for _, meta := range header.Tensors {
		shape := meta.TensorShape()
		values := make([]T, shape.NumElements())
		if _, err := binary.Decode(data[meta.Offset:meta.Offset+meta.Size], binary.LittleEndian, values); err != nil {
			return nil, Header{}, fmt.Errorf("failed to decode tensor %s: %w", meta.Name, err)
		}
		t, err := tensor.FromSlice(shape, values)
		if err != nil {
			return nil, Header{}, fmt.Errorf("tensor %s: %w", meta.Name, err)
		}
		dict[meta.Name] = t
	}

	return dict, header, nil
}

// Load reads a weights file from path.
func Load[T tensor.Numeric](path string) (map[string]*tensor.Tensor[T], Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading weights
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadFrom[T](bufio.NewReader(file))
}
