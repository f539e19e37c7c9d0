package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/born-ml/convcore/internal/tensor"
)

const version = "0.1.0" // Library version recorded in every header.

// WriteTo encodes dict to w. Tensors are stored in name order so equal
// dictionaries produce equal data sections.
func WriteTo[T tensor.Numeric](w io.Writer, dict map[string]*tensor.Tensor[T], metadata map[string]string) error {
	dtype := tensor.DataTypeOf[T]()

	names := make([]string, 0, len(dict))
	for name, t := range dict {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("tensor %q is nil", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion: FormatVersion,
		Version:       version,
		DType:         dtype.String(),
		CreatedAt:     time.Now().UTC(),
		Tensors:       make([]TensorMeta, 0, len(names)),
		Metadata:      metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	var data []byte
	for _, name := range names {
		t := dict[name]
		s := t.Shape()
		start := int64(len(data))

		var err error
		data, err = binary.Append(data, binary.LittleEndian, t.Data())
		if err != nil {
			return fmt.Errorf("failed to encode tensor %s: %w", name, err)
		}

		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   name,
			Shape:  [3]int{s.X, s.Y, s.Z},
			Offset: start,
			Size:   int64(len(data)) - start,
		})
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	headerSize := int64(len(headerJSON))
	if headerSize > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	checksum := ComputeChecksum(data)

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], uint32(FormatVersion))
	flags := uint32(0)
	if len(metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(headerSize))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(data)))
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := w.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header JSON: %w", err)
	}
	padding := alignedDataOffset(headerSize) - int64(FixedHeaderSize) - headerSize
	if padding > 0 {
		if _, err := w.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}

	return nil
}

// Save writes dict to a new file at path.
func Save[T tensor.Numeric](path string, dict map[string]*tensor.Tensor[T], metadata map[string]string) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving weights
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteTo(file, dict, metadata); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	return file.Close()
}
