package proto

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/nickolajgrishuk/gocrc/crc"
)

// PacketHeader is the 24-byte OverProto packet header. Every
// multi-byte field is big-endian on the wire.
type PacketHeader struct {
	Magic      uint16
	Version    uint8
	Flags      uint8
	Opcode     uint8
	Proto      uint8
	StreamID   uint32
	Seq        uint32
	FragID     uint16
	TotalFrags uint16
	PayloadLen uint16
	Timestamp  uint32
}

// ValidateHeader checks a header's Magic and Version fields.
func ValidateHeader(hdr *PacketHeader) error {
	if hdr.Magic != Magic {
		return errors.New("invalid magic number")
	}
	if hdr.Version != Version {
		return errors.New("invalid version")
	}
	return nil
}

// Serialize encodes hdr and payload as [Header][Payload][CRC32], the
// checksum covering the header and the payload.
func Serialize(hdr *PacketHeader, payload []byte) ([]byte, error) {
	if len(payload) > 65535 {
		return nil, errors.New("payload too large (max 65535 bytes)")
	}

	headerBuf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(headerBuf[0:2], hdr.Magic)
	headerBuf[2] = hdr.Version
	headerBuf[3] = hdr.Flags
	headerBuf[4] = hdr.Opcode
	headerBuf[5] = hdr.Proto
	binary.BigEndian.PutUint32(headerBuf[6:10], hdr.StreamID)
	binary.BigEndian.PutUint32(headerBuf[10:14], hdr.Seq)
	binary.BigEndian.PutUint16(headerBuf[14:16], hdr.FragID)
	binary.BigEndian.PutUint16(headerBuf[16:18], hdr.TotalFrags)
	binary.BigEndian.PutUint16(headerBuf[18:20], hdr.PayloadLen)
	binary.BigEndian.PutUint32(headerBuf[20:24], hdr.Timestamp)

	s := crc.CRC32.NewState()
	s = crc.Process(crc.DefaultAlgorithm, s, headerBuf)
	s = crc.Process(crc.DefaultAlgorithm, s, payload)
	checksum := crc.Finalize(s)

	result := make([]byte, HeaderSize+len(payload)+4)
	copy(result[0:HeaderSize], headerBuf)
	copy(result[HeaderSize:HeaderSize+len(payload)], payload)
	binary.BigEndian.PutUint32(result[HeaderSize+len(payload):], uint32(checksum))

	return result, nil
}

// Deserialize decodes a buffer produced by Serialize, verifying Magic,
// Version, and the trailing CRC32.
func Deserialize(data []byte) (*PacketHeader, []byte, error) {
	if len(data) < HeaderSize+4 {
		return nil, nil, errors.New("data too short for packet")
	}

	hdr := &PacketHeader{}
	hdr.Magic = binary.BigEndian.Uint16(data[0:2])
	hdr.Version = data[2]
	hdr.Flags = data[3]
	hdr.Opcode = data[4]
	hdr.Proto = data[5]
	hdr.StreamID = binary.BigEndian.Uint32(data[6:10])
	hdr.Seq = binary.BigEndian.Uint32(data[10:14])
	hdr.FragID = binary.BigEndian.Uint16(data[14:16])
	hdr.TotalFrags = binary.BigEndian.Uint16(data[16:18])
	hdr.PayloadLen = binary.BigEndian.Uint16(data[18:20])
	hdr.Timestamp = binary.BigEndian.Uint32(data[20:24])

	if err := ValidateHeader(hdr); err != nil {
		return nil, nil, err
	}

	payloadStart := HeaderSize
	payloadEnd := payloadStart + int(hdr.PayloadLen)
	if payloadEnd > len(data)-4 {
		return nil, nil, errors.New("payload length exceeds available data")
	}

	payload := make([]byte, hdr.PayloadLen)
	if hdr.PayloadLen > 0 {
		copy(payload, data[payloadStart:payloadEnd])
	}

	received := binary.BigEndian.Uint32(data[len(data)-4:])

	s := crc.CRC32.NewState()
	s = crc.Process(crc.DefaultAlgorithm, s, data[0:HeaderSize])
	s = crc.Process(crc.DefaultAlgorithm, s, payload)
	computed := uint32(crc.Finalize(s))

	if received != computed {
		return nil, nil, errors.New("CRC32 mismatch")
	}

	return hdr, payload, nil
}

// NewPacketHeader returns a header with Magic, Version, and Timestamp
// filled in from the current time.
func NewPacketHeader() *PacketHeader {
	timestamp, _ := SafeInt64ToUint32(time.Now().Unix())
	return &PacketHeader{
		Magic:     Magic,
		Version:   Version,
		Timestamp: timestamp,
	}
}
