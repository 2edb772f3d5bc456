package kernel

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Serialization errors.
var (
	ErrCorruptData        = errors.New("kernel: corrupt population data")
	ErrUnsupportedVersion = errors.New("kernel: unsupported population format version")
)

const (
	serializeMagic   = uint32(0x524F434B) // "ROCK"
	serializeVersion = uint16(1)
)

// MarshalBinary encodes the population as an opaque binary blob.
//
// The blob round-trips bit-exactly through [Population.UnmarshalBinary],
// so a population generated for a training split can be reused unchanged
// for the matching test split. The layout is little-endian:
// magic, version, input length, kernel count, then per kernel
// length, dilation, padding flag, bias and weights, in generation order.
func (p *Population) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}

	header := []any{
		serializeMagic,
		serializeVersion,
		uint32(p.inputLength),
		uint32(len(p.kernels)),
	}
	for _, v := range header {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}

	for i := range p.kernels {
		k := &p.kernels[i]
		pad := uint8(0)
		if k.Padding {
			pad = 1
		}
		fields := []any{
			uint32(k.Length),
			uint32(k.Dilation),
			pad,
			k.Bias,
			k.Weights,
		}
		for _, v := range fields {
			if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
				return nil, err
			}
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a blob produced by [Population.MarshalBinary],
// replacing the receiver's contents.
func (p *Population) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)

	var (
		magic       uint32
		version     uint16
		inputLength uint32
		count       uint32
	)
	for _, v := range []any{&magic, &version, &inputLength, &count} {
		if err := binary.Read(buf, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("%w: truncated header", ErrCorruptData)
		}
	}
	if magic != serializeMagic {
		return fmt.Errorf("%w: bad magic %#x", ErrCorruptData, magic)
	}
	if version != serializeVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if inputLength == 0 {
		return fmt.Errorf("%w: zero input length", ErrCorruptData)
	}

	// Smallest possible kernel record is 25 bytes; a count beyond what the
	// remaining bytes could hold means a corrupt header, not a large blob.
	const minKernelBytes = 25
	if int64(count)*minKernelBytes > int64(buf.Len()) {
		return fmt.Errorf("%w: kernel count %d exceeds payload", ErrCorruptData, count)
	}

	kernels := make([]Kernel, 0, count)
	for i := uint32(0); i < count; i++ {
		var (
			length   uint32
			dilation uint32
			pad      uint8
			bias     float64
		)
		for _, v := range []any{&length, &dilation, &pad, &bias} {
			if err := binary.Read(buf, binary.LittleEndian, v); err != nil {
				return fmt.Errorf("%w: truncated kernel %d", ErrCorruptData, i)
			}
		}
		if length == 0 || dilation == 0 || pad > 1 {
			return fmt.Errorf("%w: kernel %d has invalid parameters", ErrCorruptData, i)
		}

		weights := make([]float64, length)
		if err := binary.Read(buf, binary.LittleEndian, weights); err != nil {
			return fmt.Errorf("%w: truncated weights for kernel %d", ErrCorruptData, i)
		}

		kernels = append(kernels, Kernel{
			Weights:  weights,
			Bias:     bias,
			Length:   int(length),
			Dilation: int(dilation),
			Padding:  pad == 1,
		})
	}
	if buf.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorruptData, buf.Len())
	}

	p.kernels = kernels
	p.inputLength = int(inputLength)

	return nil
}
