package proto

import (
	"encoding/binary"
	"testing"
)

func TestPacketFormatCompatibility(t *testing.T) {
	hdr := NewPacketHeader()
	hdr.StreamID = 0x12345678
	hdr.Seq = 0x87654321
	hdr.FragID = 0x1111
	hdr.TotalFrags = 0x2222
	hdr.PayloadLen = 4
	hdr.Opcode = OpData
	hdr.Proto = ProtoTCP
	hdr.Flags = FlagCompressed

	payload := []byte("test")

	data, err := Serialize(hdr, payload)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if expectedSize := HeaderSize + len(payload) + 4; len(data) != expectedSize {
		t.Errorf("packet size mismatch: got %d, want %d", len(data), expectedSize)
	}
	if magic := binary.BigEndian.Uint16(data[0:2]); magic != Magic {
		t.Errorf("Magic mismatch: got %#04x, want %#04x", magic, Magic)
	}
	if data[2] != Version {
		t.Errorf("Version mismatch: got %#02x, want %#02x", data[2], Version)
	}
	if data[3] != FlagCompressed {
		t.Errorf("Flags mismatch: got %#02x, want %#02x", data[3], FlagCompressed)
	}
	if data[4] != OpData {
		t.Errorf("Opcode mismatch: got %#02x, want %#02x", data[4], OpData)
	}
	if data[5] != ProtoTCP {
		t.Errorf("Proto mismatch: got %#02x, want %#02x", data[5], ProtoTCP)
	}
	if streamID := binary.BigEndian.Uint32(data[6:10]); streamID != hdr.StreamID {
		t.Errorf("StreamID mismatch: got %#08x, want %#08x", streamID, hdr.StreamID)
	}
	if payloadLen := binary.BigEndian.Uint16(data[18:20]); payloadLen != uint16(len(payload)) {
		t.Errorf("PayloadLen mismatch: got %d, want %d", payloadLen, len(payload))
	}

	hdr2, payload2, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if hdr2.StreamID != hdr.StreamID {
		t.Errorf("StreamID after round trip: got %#08x, want %#08x", hdr2.StreamID, hdr.StreamID)
	}
	if string(payload2) != string(payload) {
		t.Errorf("payload mismatch: got %q, want %q", payload2, payload)
	}
}

func TestDeserializeRejectsBadMagic(t *testing.T) {
	hdr := NewPacketHeader()
	data, err := Serialize(hdr, []byte("x"))
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	data[0] ^= 0xff
	if _, _, err := Deserialize(data); err == nil {
		t.Errorf("Deserialize accepted a corrupted magic number")
	}
}

func TestDeserializeRejectsCRCMismatch(t *testing.T) {
	hdr := NewPacketHeader()
	data, err := Serialize(hdr, []byte("payload"))
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	data[len(data)-1] ^= 0xff
	if _, _, err := Deserialize(data); err == nil {
		t.Errorf("Deserialize accepted a corrupted CRC32 trailer")
	}
}

func TestDeserializeRejectsTruncated(t *testing.T) {
	if _, _, err := Deserialize(make([]byte, HeaderSize)); err == nil {
		t.Errorf("Deserialize accepted data shorter than header+CRC32")
	}
}
