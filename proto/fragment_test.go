package proto

import (
	"bytes"
	"testing"
	"time"
)

func TestFragmentPacketRoundTrip(t *testing.T) {
	hdr := NewPacketHeader()
	hdr.StreamID = 42
	hdr.Seq = 7
	hdr.Opcode = OpData
	hdr.Proto = ProtoUDP

	payload := bytes.Repeat([]byte("x"), 3000)

	mtu := uint(512)
	frags, headers, err := FragmentPacket(hdr, payload, mtu)
	if err != nil {
		t.Fatalf("FragmentPacket failed: %v", err)
	}
	if frags == nil {
		t.Fatalf("expected fragmentation for a %d-byte payload under MTU %d", len(payload), mtu)
	}
	if len(frags) != len(headers) {
		t.Fatalf("fragment/header count mismatch: %d vs %d", len(frags), len(headers))
	}

	ctx := NewFragmentContext(hdr.StreamID, hdr.Seq, headers[0].TotalFrags)
	var done bool
	for i, raw := range frags {
		fhdr, fpayload, err := Deserialize(raw)
		if err != nil {
			t.Fatalf("Deserialize fragment %d failed: %v", i, err)
		}
		done, err = ctx.AddFragment(fhdr.FragID, fhdr, fpayload)
		if err != nil {
			t.Fatalf("AddFragment %d failed: %v", i, err)
		}
	}
	if !done {
		t.Fatalf("expected AddFragment to report completion after the last fragment")
	}

	finalHdr, reassembled, err := ctx.Assemble()
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if !bytes.Equal(reassembled, payload) {
		t.Errorf("reassembled payload does not match original (got %d bytes, want %d)", len(reassembled), len(payload))
	}
	if finalHdr.Flags&FlagFragment != 0 {
		t.Errorf("reassembled header still carries FlagFragment")
	}
	if finalHdr.StreamID != hdr.StreamID {
		t.Errorf("StreamID mismatch after reassembly: got %#x, want %#x", finalHdr.StreamID, hdr.StreamID)
	}
}

func TestFragmentPacketSkipsSmallPayload(t *testing.T) {
	hdr := NewPacketHeader()
	frags, headers, err := FragmentPacket(hdr, []byte("small"), FragMTUDefault)
	if err != nil {
		t.Fatalf("FragmentPacket failed: %v", err)
	}
	if frags != nil || headers != nil {
		t.Errorf("expected no fragmentation for a payload well under the MTU")
	}
}

func TestFragmentPacketRejectsTinyMTU(t *testing.T) {
	hdr := NewPacketHeader()
	if _, _, err := FragmentPacket(hdr, []byte("payload"), HeaderSize); err == nil {
		t.Errorf("expected an error for an MTU smaller than the header plus CRC32 trailer")
	}
}

func TestFragmentPacketRejectsTooManyFragments(t *testing.T) {
	hdr := NewPacketHeader()
	payload := make([]byte, FragMaxFragments*64+1)
	if _, _, err := FragmentPacket(hdr, payload, HeaderSize+4+1); err == nil {
		t.Errorf("expected an error when the payload needs more than FragMaxFragments fragments")
	}
}

func TestAddFragmentRejectsOutOfRangeID(t *testing.T) {
	ctx := NewFragmentContext(1, 1, 4)
	if _, err := ctx.AddFragment(4, nil, []byte("x")); err == nil {
		t.Errorf("expected an error for a fragment ID beyond TotalFrags")
	}
}

func TestAddFragmentIgnoresDuplicate(t *testing.T) {
	hdr := NewPacketHeader()
	ctx := NewFragmentContext(1, 1, 2)
	done, err := ctx.AddFragment(0, hdr, []byte("first"))
	if err != nil || done {
		t.Fatalf("unexpected state after first fragment: done=%v err=%v", done, err)
	}
	done, err = ctx.AddFragment(0, hdr, []byte("duplicate"))
	if err != nil {
		t.Fatalf("duplicate fragment should not error: %v", err)
	}
	if done {
		t.Errorf("duplicate fragment should not count toward completion")
	}
	if ctx.ReceivedFrags != 1 {
		t.Errorf("ReceivedFrags = %d, want 1", ctx.ReceivedFrags)
	}
}

func TestFragmentContextIsTimeout(t *testing.T) {
	ctx := NewFragmentContext(1, 1, 1)
	ctx.CreatedAt = time.Now().Add(-2 * FragTimeoutSec * time.Second)
	if !ctx.IsTimeout() {
		t.Errorf("expected context created long ago to be timed out")
	}
}
