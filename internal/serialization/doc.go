// Package serialization stores named tensors in the .born weights format.
//
// A file holds one element type and any number of 3-D tensors, typically a
// convolution filter bank with its biases:
//
//	Format Structure:
//	  [0x00: Magic "BORN"]
//	  [0x04: Version (uint32 LE)]
//	  [0x08: Flags (uint32 LE)]
//	  [0x0C: Reserved]
//	  [0x10: Header size (uint64 LE)]
//	  [0x18: Data size (uint64 LE)]
//	  [0x20: SHA-256 of the data section (32 bytes)]
//	  [0x40: Header: JSON metadata]
//	  [Tensor data: little-endian, x-fastest, 64-byte aligned]
//
// Example usage:
//
//	dict := map[string]*tensor.Tensor[float32]{"filter.0": f0, "filter.1": f1}
//	if err := serialization.Save("weights.born", dict, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	dict, header, err := serialization.Load[float32]("weights.born")
package serialization
