package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/aaronwong1989/goipp/agent"
	"github.com/aaronwong1989/goipp/codec/ipp"
	"github.com/aaronwong1989/goipp/comm"
)

// ippgen 探针模拟器：构造一对Print-Job请求/应答探针帧
// 指定-addr时发往ippagent，否则打印十六进制
func main() {
	var addr string
	flag.StringVar(&addr, "addr", "", "--addr 127.0.0.1:9631")
	flag.Parse()

	agent.LoadConfig()
	dc := agent.Conf.GetInt("data-center-id")
	wk := agent.Conf.GetInt("worker-id")
	ipp.Seq32 = comm.NewCycleSequence(int32(dc), int32(wk))

	req := ipp.NewRequest(ipp.OpPrintJob)
	g := req.AddGroup(ipp.TagOperationAttributes)
	g.AddString(ipp.TagCharset, "attributes-charset", "utf-8")
	g.AddString(ipp.TagNaturalLanguage, "attributes-natural-language", "en")
	g.AddString(ipp.TagNameWithoutLang, "job-name", "sample-job")
	g.AddInteger("copies", 1)

	resp := ipp.NewResponse(0x0000, req.RequestId)
	rg := resp.AddGroup(ipp.TagJobAttributes)
	rg.AddInteger("job-id", 17)
	rg.AddEnum("job-state", 3)

	t0 := time.Now()
	convKey := "gen-conversation"
	frames := [][]byte{
		agent.NewFeedFrame(agent.FlagRequest, 1, t0, convKey, req.Encode()),
		agent.NewFeedFrame(0, 2, t0.Add(120*time.Millisecond), convKey, resp.Encode()),
	}

	if addr == "" {
		for _, frame := range frames {
			fmt.Println(hex.EncodeToString(frame))
		}
		return
	}

	con, err := net.Dial("tcp", addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ippgen: %v\n", err)
		os.Exit(1)
	}
	defer con.Close()
	for _, frame := range frames {
		if _, err = con.Write(frame); err != nil {
			fmt.Fprintf(os.Stderr, "ippgen: %v\n", err)
			os.Exit(1)
		}
	}
}
