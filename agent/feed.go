package agent

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// 探针上报帧布局（大端）:
// total_len(4) | flags(1) | frame_id(4) | ts_micros(8) | conv_key_len(2) | conv_key | pdu
const (
	FeedHeadLength = 19

	FlagRequest = byte(0x01)
	FlagVisited = byte(0x02)
)

var ErrorFeedFrame = errors.New("error feed frame")

// FeedHeader 探针帧元数据
type FeedHeader struct {
	TotalLength uint32
	Flags       byte
	FrameId     uint32
	Timestamp   time.Time
	ConvKey     string
	bodyStart   int
}

func (h *FeedHeader) Encode() []byte {
	frame := make([]byte, FeedHeadLength+len(h.ConvKey))
	binary.BigEndian.PutUint32(frame[0:4], h.TotalLength)
	frame[4] = h.Flags
	binary.BigEndian.PutUint32(frame[5:9], h.FrameId)
	binary.BigEndian.PutUint64(frame[9:17], uint64(h.Timestamp.UnixMicro()))
	binary.BigEndian.PutUint16(frame[17:19], uint16(len(h.ConvKey)))
	copy(frame[FeedHeadLength:], h.ConvKey)
	return frame
}

func (h *FeedHeader) Decode(frame []byte) error {
	if len(frame) < FeedHeadLength {
		return ErrorFeedFrame
	}
	h.TotalLength = binary.BigEndian.Uint32(frame[0:4])
	h.Flags = frame[4]
	h.FrameId = binary.BigEndian.Uint32(frame[5:9])
	h.Timestamp = time.UnixMicro(int64(binary.BigEndian.Uint64(frame[9:17])))
	keyLen := int(binary.BigEndian.Uint16(frame[17:19]))
	if FeedHeadLength+keyLen > len(frame) || uint32(FeedHeadLength+keyLen) > h.TotalLength {
		return ErrorFeedFrame
	}
	h.ConvKey = string(frame[FeedHeadLength : FeedHeadLength+keyLen])
	h.bodyStart = FeedHeadLength + keyLen
	return nil
}

func (h *FeedHeader) IsRequest() bool {
	return h.Flags&FlagRequest != 0
}

func (h *FeedHeader) Visited() bool {
	return h.Flags&FlagVisited != 0
}

func (h *FeedHeader) String() string {
	return fmt.Sprintf("{ TotalLength: %d, Flags: %#02x, FrameId: %d, ConvKey: %s }",
		h.TotalLength, h.Flags, h.FrameId, h.ConvKey)
}

// NewFeedFrame 组装一条探针帧，供探针侧与测试使用
func NewFeedFrame(flags byte, frameId uint32, ts time.Time, convKey string, pdu []byte) []byte {
	header := &FeedHeader{
		TotalLength: uint32(FeedHeadLength + len(convKey) + len(pdu)),
		Flags:       flags,
		FrameId:     frameId,
		Timestamp:   ts,
		ConvKey:     convKey,
	}
	return append(header.Encode(), pdu...)
}
