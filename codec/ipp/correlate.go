package ipp

import (
	"time"
)

// Transaction 一次请求与其应答的配对记录
type Transaction struct {
	ReqFrame uint32
	RepFrame uint32
	ReqTime  time.Time
}

// ConversationState 单个会话内request-id到Transaction的映射
// 由外部协作方持有生命周期，同一会话内的访问由调用方串行化
type ConversationState struct {
	pdus map[uint32]*Transaction
}

func NewConversationState() *ConversationState {
	return &ConversationState{pdus: make(map[uint32]*Transaction)}
}

// Lookup 只读查找，revisit场景使用
func (cs *ConversationState) Lookup(requestId uint32) *Transaction {
	return cs.pdus[requestId]
}

// ObserveRequest 首次遍历到请求时登记Transaction
// 已存在的记录不被覆盖，保留可能已建立的应答关联
func (cs *ConversationState) ObserveRequest(requestId uint32, frameId uint32, ts time.Time) *Transaction {
	if trans, ok := cs.pdus[requestId]; ok {
		return trans
	}
	trans := &Transaction{ReqFrame: frameId, ReqTime: ts}
	cs.pdus[requestId] = trans
	return trans
}

// ObserveResponse 首次遍历到应答时回填应答帧号，先写者生效
// 无对应请求时返回nil
func (cs *ConversationState) ObserveResponse(requestId uint32, frameId uint32) *Transaction {
	trans, ok := cs.pdus[requestId]
	if !ok {
		return nil
	}
	if trans.RepFrame == 0 {
		trans.RepFrame = frameId
	}
	return trans
}
