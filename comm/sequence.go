package comm

import (
	"sync/atomic"
)

// CycleSequence 循环序号生成器
// 构成为: 0 | datacenter 2 bit | worker 3 bit | sequence 26 bit
// sequence 循环自增，同一节点26bit内不重复
type CycleSequence struct {
	prefix   int32
	sequence int32
}

const (
	cycleSequenceMask = int32(0x03ffffff)
	cycleWorkerShift  = uint(26)
	cycleDcShift      = uint(29)
)

// NewCycleSequence d for datacenter-id, w for worker-id
func NewCycleSequence(d int32, w int32) *CycleSequence {
	prefix := (d&0x03)<<cycleDcShift | (w&0x07)<<cycleWorkerShift
	return &CycleSequence{prefix: prefix}
}

func (s *CycleSequence) NextVal() int32 {
	seq := atomic.AddInt32(&s.sequence, 1) & cycleSequenceMask
	return s.prefix | seq
}
