package agent

import (
	"encoding/binary"
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/panjf2000/gnet/v2"

	"github.com/aaronwong1989/goipp/codec/ipp"
	"github.com/aaronwong1989/goipp/comm"
	"github.com/aaronwong1989/goipp/comm/logging"
)

// Server 接收探针上报帧的TCP服务
// 同一会话的帧由探针按抓取顺序经同一连接送达，
// conversation内部以互斥串行化解码，满足关联状态的访问契约
type Server struct {
	gnet.BuiltinEventEngine
	engine        gnet.Engine
	protocol      string
	address       string
	multicore     bool
	pool          *ants.Pool
	conversations sync.Map // conv key -> *conversation
}

// conversation 单会话的串行执行器
// 帧先入队，由池内至多一个drain任务按入队顺序处理，
// 保证会话内先请求后应答的遍历顺序
type conversation struct {
	mu      sync.Mutex
	state   *ipp.ConversationState
	queue   []feedJob
	running bool
}

type feedJob struct {
	header *FeedHeader
	pdu    []byte
}

func StartServer() {
	var port int
	var multicore bool
	flag.IntVar(&port, "port", 9631, "--port 9631")
	flag.BoolVar(&multicore, "multicore", true, "--multicore=true")
	flag.Parse()

	LoadConfig()
	log.Infof("current pid is %s.", comm.SavePid("ippagent.pid"))

	maxPoolSize := int(Conf.GetInt("max-pool-size"))
	if maxPoolSize == 0 {
		maxPoolSize = 1024
	}
	// 定义异步工作Go程池
	options := ants.Options{
		ExpiryDuration:   time.Minute,
		Nonblocking:      false,
		MaxBlockingTasks: maxPoolSize,
		PreAlloc:         false,
		PanicHandler: func(e interface{}) {
			log.Errorf("%v", e)
		},
	}
	pool, _ := ants.NewPool(maxPoolSize, ants.WithOptions(options))
	defer pool.Release()

	ss := &Server{
		protocol:  "tcp",
		address:   fmt.Sprintf(":%d", port),
		multicore: multicore,
		pool:      pool,
	}

	comm.StartMonitor(port)

	err := gnet.Run(ss, ss.protocol+"://"+ss.address, gnet.WithMulticore(multicore), gnet.WithTicker(true))
	log.Errorf("server(%s://%s) exits with error: %v", ss.protocol, ss.address, err)
}

func (s *Server) OnBoot(eng gnet.Engine) (action gnet.Action) {
	log.Infof("[%-9s] running server on %s with multi-core=%t", "OnBoot", fmt.Sprintf("%s://%s", s.protocol, s.address), s.multicore)
	s.engine = eng
	return
}

func (s *Server) OnOpen(c gnet.Conn) (out []byte, action gnet.Action) {
	log.Infof("[%-9s] [%v<->%v] probe connected.", "OnOpen", c.RemoteAddr(), c.LocalAddr())
	return
}

func (s *Server) OnClose(c gnet.Conn, e error) (action gnet.Action) {
	log.Infof("[%-9s] [%v<->%v] probe disconnected, reason=%v.", "OnClose", c.RemoteAddr(), c.LocalAddr(), e)
	return
}

func (s *Server) OnTraffic(c gnet.Conn) (action gnet.Action) {
	for {
		lenBytes, err := c.Peek(4)
		if err != nil {
			return gnet.None
		}
		totalLen := binary.BigEndian.Uint32(lenBytes)
		if totalLen < FeedHeadLength || totalLen > 16*1024*1024 {
			log.Warnf("[%-9s] [%v<->%v] bad frame length %d, close session...", "OnTraffic", c.RemoteAddr(), c.LocalAddr(), totalLen)
			return gnet.Close
		}
		frame := comm.TakeBytes(c, int(totalLen))
		if frame == nil {
			// 帧未收全，等待下一次OnTraffic
			return gnet.None
		}
		comm.LogHex(logging.DebugLevel, "Feed", frame)

		header := &FeedHeader{}
		if err = header.Decode(frame); err != nil {
			log.Warnf("[%-9s] [%v<->%v] decode error: %v, close session...", "OnTraffic", c.RemoteAddr(), c.LocalAddr(), err)
			return gnet.Close
		}
		s.dispatch(header, frame[header.bodyStart:])
	}
}

func (s *Server) OnTick() (delay time.Duration, action gnet.Action) {
	log.Infof("[%-9s] %d active probes, %d conversations.", "OnTick", s.engine.CountConnections(), s.countConversations())
	return time.Minute, gnet.None
}

// dispatch 入队并按会话串行消费
func (s *Server) dispatch(header *FeedHeader, payload []byte) {
	conv := s.conversation(header.ConvKey)
	pdu := make([]byte, len(payload))
	copy(pdu, payload)

	conv.mu.Lock()
	conv.queue = append(conv.queue, feedJob{header: header, pdu: pdu})
	if !conv.running {
		conv.running = true
		_ = s.pool.Submit(func() { conv.drain() })
	}
	conv.mu.Unlock()
}

// drain 同一会话至多一个drain在运行，state访问天然独占
func (conv *conversation) drain() {
	for {
		conv.mu.Lock()
		if len(conv.queue) == 0 {
			conv.running = false
			conv.mu.Unlock()
			return
		}
		job := conv.queue[0]
		conv.queue = conv.queue[1:]
		conv.mu.Unlock()
		conv.process(job)
	}
}

func (conv *conversation) process(job feedJob) {
	header := job.header
	meta := ipp.FrameMeta{
		FrameId:   header.FrameId,
		Timestamp: header.Timestamp,
		IsRequest: header.IsRequest(),
		Visited:   header.Visited(),
	}
	decoded, ref, err := ipp.DecodeFrame(job.pdu, meta, func() *ipp.ConversationState { return conv.state })
	if err != nil {
		log.Warnf("[%-9s] <<< frame %d: %v", "OnTraffic", header.FrameId, err)
		return
	}
	log.Infof("[%-9s] <<< frame %d [%s] %s", "OnTraffic", header.FrameId, header.ConvKey, decoded.Summary())
	if ref.ResponseIn != 0 {
		log.Infof("[%-9s]     response in frame %d", "OnTraffic", ref.ResponseIn)
	}
	if ref.ResponseTo != 0 {
		log.Infof("[%-9s]     response to frame %d, response time %s", "OnTraffic", ref.ResponseTo, ref.ResponseTime)
	}
}

func (s *Server) conversation(key string) *conversation {
	if v, ok := s.conversations.Load(key); ok {
		return v.(*conversation)
	}
	v, _ := s.conversations.LoadOrStore(key, &conversation{state: ipp.NewConversationState()})
	return v.(*conversation)
}

func (s *Server) countConversations() int {
	counter := 0
	s.conversations.Range(func(key, value interface{}) bool {
		counter++
		return true
	})
	return counter
}
