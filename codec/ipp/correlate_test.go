package ipp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reqFrame(requestId uint32) []byte {
	pdu := &Pdu{MessageHeader: &MessageHeader{Version: DefaultVersion, OperationStatus: OpPrintJob, RequestId: requestId}, IsRequest: true}
	return pdu.Encode()
}

func respFrame(requestId uint32) []byte {
	return NewResponse(0x0000, requestId).Encode()
}

func TestCorrelation_ScenarioC(t *testing.T) {
	cs := NewConversationState()
	lookup := func() *ConversationState { return cs }
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(250 * time.Millisecond)

	// 帧10请求，request-id=7
	_, ref, err := DecodeFrame(reqFrame(7), FrameMeta{FrameId: 10, Timestamp: t0, IsRequest: true}, lookup)
	require.Nil(t, err)
	assert.Equal(t, uint32(0), ref.ResponseIn) // 应答尚未出现

	// 帧12应答
	_, ref, err = DecodeFrame(respFrame(7), FrameMeta{FrameId: 12, Timestamp: t1}, lookup)
	require.Nil(t, err)
	assert.Equal(t, uint32(10), ref.ResponseTo)
	assert.True(t, ref.HasResponseTime)
	assert.Equal(t, 250*time.Millisecond, ref.ResponseTime)

	// 第二轮遍历（已处理），请求侧取得应答帧号
	_, ref, err = DecodeFrame(reqFrame(7), FrameMeta{FrameId: 10, Timestamp: t0, IsRequest: true, Visited: true}, lookup)
	require.Nil(t, err)
	assert.Equal(t, uint32(12), ref.ResponseIn)
}

func TestCorrelation_Idempotent(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	frames := []struct {
		frame []byte
		meta  FrameMeta
	}{
		{reqFrame(1), FrameMeta{FrameId: 1, Timestamp: t0, IsRequest: true}},
		{respFrame(1), FrameMeta{FrameId: 2, Timestamp: t0.Add(time.Second)}},
		{reqFrame(2), FrameMeta{FrameId: 3, Timestamp: t0.Add(2 * time.Second), IsRequest: true}},
		{respFrame(2), FrameMeta{FrameId: 4, Timestamp: t0.Add(3 * time.Second)}},
	}

	cs := NewConversationState()
	lookup := func() *ConversationState { return cs }

	var firstPass []CrossRef
	for _, f := range frames {
		_, ref, err := DecodeFrame(f.frame, f.meta, lookup)
		require.Nil(t, err)
		firstPass = append(firstPass, *ref)
	}

	// 同一帧序列以已处理模式重放，关联输出逐帧一致
	var secondPass []CrossRef
	for _, f := range frames {
		meta := f.meta
		meta.Visited = true
		_, ref, err := DecodeFrame(f.frame, meta, lookup)
		require.Nil(t, err)
		secondPass = append(secondPass, *ref)
	}

	// 首轮时请求尚未见到应答，重放时已能看到
	assert.Equal(t, uint32(0), firstPass[0].ResponseIn)
	assert.Equal(t, uint32(2), secondPass[0].ResponseIn)
	// 应答侧输出两轮一致
	assert.Equal(t, firstPass[1], secondPass[1])
	assert.Equal(t, firstPass[3], secondPass[3])

	// 再次重放与上一轮完全一致
	for i, f := range frames {
		meta := f.meta
		meta.Visited = true
		_, ref, err := DecodeFrame(f.frame, meta, lookup)
		require.Nil(t, err)
		assert.Equal(t, secondPass[i], *ref)
	}
}

func TestCorrelation_ResponseWithoutRequest(t *testing.T) {
	cs := NewConversationState()
	lookup := func() *ConversationState { return cs }

	// 请求在抓取窗口之外，应答不关联也不报错
	pdu, ref, err := DecodeFrame(respFrame(99), FrameMeta{FrameId: 5, Timestamp: time.Now()}, lookup)
	require.Nil(t, err)
	assert.Equal(t, uint32(0), ref.ResponseTo)
	assert.False(t, ref.HasResponseTime)
	assert.Equal(t, "Response (successful-ok)", pdu.Summary())
	// 临时记录不落入共享状态
	assert.Nil(t, cs.Lookup(99))
}

func TestCorrelation_FirstWriterWins(t *testing.T) {
	cs := NewConversationState()
	t0 := time.Now()

	cs.ObserveRequest(7, 10, t0)
	cs.ObserveResponse(7, 12)
	// 重传的应答不覆盖已建立的关联
	cs.ObserveResponse(7, 15)
	assert.Equal(t, uint32(12), cs.Lookup(7).RepFrame)

	// 重传的请求不覆盖已有记录
	cs.ObserveRequest(7, 20, t0.Add(time.Minute))
	assert.Equal(t, uint32(10), cs.Lookup(7).ReqFrame)
	assert.Equal(t, uint32(12), cs.Lookup(7).RepFrame)
}

func TestCorrelation_NegativeResponseTime(t *testing.T) {
	cs := NewConversationState()
	lookup := func() *ConversationState { return cs }
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, _, err := DecodeFrame(reqFrame(3), FrameMeta{FrameId: 1, Timestamp: t0, IsRequest: true}, lookup)
	require.Nil(t, err)

	// 时钟回拨时保留负的响应时间，不截断
	_, ref, err := DecodeFrame(respFrame(3), FrameMeta{FrameId: 2, Timestamp: t0.Add(-time.Second)}, lookup)
	require.Nil(t, err)
	assert.Equal(t, -time.Second, ref.ResponseTime)
}
