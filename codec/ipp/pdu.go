package ipp

import (
	"fmt"
	"time"
)

// Pdu 一条完整的请求或应答报文，解码完成后不可变
type Pdu struct {
	*MessageHeader
	IsRequest bool
	Groups    []AttributeGroup
	Trailing  []byte // 属性流之后的不透明字节（如文档数据或未解析尾部）
}

// FrameMeta 帧元数据，由外部分帧协作方提供
// Visited为true表示该帧此前已遍历过，关联状态只读
type FrameMeta struct {
	FrameId   uint32
	Timestamp time.Time
	IsRequest bool
	Visited   bool
}

// CrossRef 请求应答互为引用的标注，帧号0表示未建立关联
type CrossRef struct {
	ResponseIn      uint32 // 请求：应答所在帧
	ResponseTo      uint32 // 应答：请求所在帧
	ResponseTime    time.Duration
	HasResponseTime bool
}

func NewPdu(isRequest bool) *Pdu {
	return &Pdu{MessageHeader: &MessageHeader{}, IsRequest: isRequest}
}

// Decode 结构化解码，不涉及会话关联，对固定输入可重复执行且结果一致
func (p *Pdu) Decode(frame []byte) error {
	if err := p.MessageHeader.Decode(frame); err != nil {
		return err
	}
	p.Groups, p.Trailing = nil, nil
	groups, rest := parseAttributes(frame, HeadLength)
	p.Groups = groups
	if rest < len(frame) {
		p.Trailing = frame[rest:]
	}
	return nil
}

// Summary 单行摘要
func (p *Pdu) Summary() string {
	if p.IsRequest {
		return fmt.Sprintf("Request (%s)", OperationName(p.OperationStatus))
	}
	return fmt.Sprintf("Response (%s)", StatusName(p.OperationStatus))
}

// StatusLine 应答状态的分类渲染
func (p *Pdu) StatusLine() string {
	return fmt.Sprintf("%s (%s)", StatusClass(p.OperationStatus), StatusName(p.OperationStatus))
}

func (p *Pdu) String() string {
	return fmt.Sprintf("{ Header: %s, Summary: %s, Groups: %d, Trailing: %d bytes }",
		p.MessageHeader, p.Summary(), len(p.Groups), len(p.Trailing))
}

// DecodeFrame 解码编排：报文头、会话关联、属性流、尾部数据
// lookup为会话状态的lookup-or-create能力，可为nil（不做关联）
// 报文头不足8字节时立即失败，其余任何输入都返回尽力而为的结果
func DecodeFrame(frame []byte, meta FrameMeta, lookup func() *ConversationState) (*Pdu, *CrossRef, error) {
	pdu := NewPdu(meta.IsRequest)
	if err := pdu.MessageHeader.Decode(frame); err != nil {
		return nil, nil, err
	}

	var trans *Transaction
	if lookup != nil {
		cs := lookup()
		if !meta.Visited {
			if meta.IsRequest {
				trans = cs.ObserveRequest(pdu.RequestId, meta.FrameId, meta.Timestamp)
			} else {
				trans = cs.ObserveResponse(pdu.RequestId, meta.FrameId)
			}
		} else {
			trans = cs.Lookup(pdu.RequestId)
		}
	}
	if trans == nil {
		// 关联缺失时构造仅限本次解码的临时记录，不落入共享状态
		trans = &Transaction{ReqTime: meta.Timestamp}
	}

	ref := &CrossRef{}
	if meta.IsRequest {
		if trans.RepFrame != 0 {
			ref.ResponseIn = trans.RepFrame
		}
	} else {
		if trans.ReqFrame != 0 {
			ref.ResponseTo = trans.ReqFrame
			ref.ResponseTime = meta.Timestamp.Sub(trans.ReqTime)
			ref.HasResponseTime = true
		}
	}

	groups, rest := parseAttributes(frame, HeadLength)
	pdu.Groups = groups
	if rest < len(frame) {
		pdu.Trailing = frame[rest:]
	}
	return pdu, ref, nil
}
