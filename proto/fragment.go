package proto

import (
	"errors"
	"sync"
	"time"
)

// FragmentContext reassembles a packet's fragments as they arrive.
type FragmentContext struct {
	StreamID            uint32
	Seq                 uint32
	TotalFrags          uint16
	ReceivedFrags       uint16
	Fragments           [FragMaxFragments][]byte
	FragSizes           [FragMaxFragments]uint16
	CreatedAt           time.Time
	Header              *PacketHeader
	TotalPayloadSize    uint
	ReceivedPayloadSize uint

	mu sync.Mutex
}

// NewFragmentContext returns a context ready to collect totalFrags
// fragments of the packet identified by (streamID, seq).
func NewFragmentContext(streamID, seq uint32, totalFrags uint16) *FragmentContext {
	return &FragmentContext{
		StreamID:   streamID,
		Seq:        seq,
		TotalFrags: totalFrags,
		CreatedAt:  time.Now(),
	}
}

// AddFragment records one fragment, reporting true once every fragment
// has arrived. A duplicate fragment ID is ignored, not an error.
func (ctx *FragmentContext) AddFragment(fragID uint16, hdr *PacketHeader, data []byte) (bool, error) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if fragID >= ctx.TotalFrags {
		return false, errors.New("invalid fragment ID")
	}
	if ctx.Fragments[fragID] != nil {
		return false, nil
	}

	ctx.Fragments[fragID] = append([]byte(nil), data...)
	ctx.FragSizes[fragID] = uint16(len(data))
	ctx.ReceivedFrags++
	ctx.ReceivedPayloadSize += uint(len(data))

	if fragID == 0 {
		ctx.Header = hdr
	}

	return ctx.ReceivedFrags == ctx.TotalFrags, nil
}

// Assemble joins every fragment, in order, into the original payload
// and header. It errors if any fragment is still missing.
func (ctx *FragmentContext) Assemble() (*PacketHeader, []byte, error) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if ctx.ReceivedFrags != ctx.TotalFrags {
		return nil, nil, errors.New("not all fragments received")
	}

	totalSize := 0
	for i := uint16(0); i < ctx.TotalFrags; i++ {
		if ctx.Fragments[i] == nil {
			return nil, nil, errors.New("missing fragment")
		}
		totalSize += len(ctx.Fragments[i])
	}

	payload := make([]byte, 0, totalSize)
	for i := uint16(0); i < ctx.TotalFrags; i++ {
		payload = append(payload, ctx.Fragments[i]...)
	}

	finalHeader := *ctx.Header
	finalHeader.Flags &^= FlagFragment
	finalHeader.FragID = 0
	finalHeader.TotalFrags = 0
	finalHeader.PayloadLen = uint16(len(payload))

	return &finalHeader, payload, nil
}

// IsTimeout reports whether more than FragTimeoutSec seconds have passed
// since the context was created, whether or not reassembly has completed.
func (ctx *FragmentContext) IsTimeout() bool {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return time.Since(ctx.CreatedAt) > time.Duration(FragTimeoutSec)*time.Second
}

// FragmentPacket splits payload into MTU-sized fragments if it
// doesn't already fit in one packet, returning nil, nil, nil when no
// fragmentation is needed.
func FragmentPacket(hdr *PacketHeader, payload []byte, mtu uint) ([][]byte, []*PacketHeader, error) {
	if mtu <= HeaderSize+4 {
		return nil, nil, errors.New("MTU too small for fragmentation")
	}
	maxFragPayload := mtu - HeaderSize - 4

	payloadSize := uint(len(payload))
	if payloadSize <= maxFragPayload {
		return nil, nil, nil
	}

	totalFrags := (payloadSize + maxFragPayload - 1) / maxFragPayload
	if totalFrags > FragMaxFragments {
		return nil, nil, errors.New("too many fragments required")
	}

	fragments := make([][]byte, 0, totalFrags)
	headers := make([]*PacketHeader, 0, totalFrags)

	for i := uint16(0); i < uint16(totalFrags); i++ {
		offset := uint(i) * maxFragPayload
		fragSize := maxFragPayload
		if offset+fragSize > payloadSize {
			fragSize = payloadSize - offset
		}

		fragHeader := *hdr
		fragHeader.Flags |= FlagFragment
		fragHeader.FragID = i
		fragHeader.TotalFrags = uint16(totalFrags)
		fragHeader.PayloadLen = uint16(fragSize)

		fragPayload := payload[offset : offset+fragSize]

		serialized, err := Serialize(&fragHeader, fragPayload)
		if err != nil {
			return nil, nil, err
		}

		fragments = append(fragments, serialized)
		headers = append(headers, &fragHeader)
	}

	return fragments, headers, nil
}
