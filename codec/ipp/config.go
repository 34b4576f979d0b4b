package ipp

import (
	"errors"

	"github.com/aaronwong1989/goipp/codec"
	"github.com/aaronwong1989/goipp/comm/logging"
)

var log = logging.GetDefaultLogger()

// ErrTruncatedHeader 报文头不足8字节，无法解析
var ErrTruncatedHeader = errors.New("truncated header")

// Seq32 编码侧request-id生成器，由调用方注入
var Seq32 codec.Sequence32
