package internal

import "math/bits"

// LE stands for "little endian".

func DecodeUint16LE(buffer []byte) uint16 {
	if len(buffer) < 2 { panic(len(buffer)) }
	return uint16(buffer[0]) | (uint16(buffer[1]) << 8)
}

func DecodeUint32LE(buffer []byte) uint32 {
	if len(buffer) < 4 { panic(len(buffer)) }
	return (uint32(buffer[0]) <<  0) | (uint32(buffer[1]) <<  8) |
	       (uint32(buffer[2]) << 16) | (uint32(buffer[3]) << 24)
}

func EncodeUint16LE(buffer []byte, value uint16) {
	if len(buffer) < 2 { panic("invalid usage of EncodeUint16LE") }
	buffer[0] = byte(value)
	buffer[1] = byte(value >> 8)
}

func EncodeUint32LE(buffer []byte, value uint32) {
	if len(buffer) < 4 { panic("invalid usage of EncodeUint32LE") }
	buffer[0] = byte(value)
	buffer[1] = byte(value >>  8)
	buffer[2] = byte(value >> 16)
	buffer[3] = byte(value >> 24)
}

func AppendUint16LE(buffer []byte, value uint16) []byte {
	return append(buffer, byte(value), byte(value >> 8))
}

func AppendUint32LE(buffer []byte, value uint32) []byte {
	return append(buffer, byte(value), byte(value >> 8), byte(value >> 16), byte(value >> 24))
}

// Appends str into a fixed zero-padded field of the given size. The last
// byte is always zero, so str is truncated to size - 1 bytes if needed.
func AppendPaddedString(buffer []byte, str string, size int) []byte {
	if len(str) > size - 1 { str = str[0 : size - 1] }
	buffer = append(buffer, str...)
	for i := len(str); i < size; i++ {
		buffer = append(buffer, 0)
	}
	return buffer
}

// Reads a zero-padded string field. The result stops at the first zero.
func DecodePaddedString(buffer []byte) string {
	for i := 0; i < len(buffer); i++ {
		if buffer[i] == 0 { return string(buffer[0 : i]) }
	}
	return string(buffer)
}

// Number of set bits in the given coverage bitmap.
func PopCount(mask []byte) int {
	var count int
	for _, b := range mask {
		count += bits.OnesCount8(b)
	}
	return count
}

func CeilDiv(value, divisor int) int {
	return (value + divisor - 1)/divisor
}
