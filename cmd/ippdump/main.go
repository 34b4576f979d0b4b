package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aaronwong1989/goipp/codec/ipp"
)

// ippdump 解码单条报文并打印结构树
// 用法: ippdump [-x] [-response] [file]，无file时读stdin
func main() {
	var hexInput bool
	var isResponse bool
	flag.BoolVar(&hexInput, "x", false, "input is hex text instead of raw binary")
	flag.BoolVar(&isResponse, "response", false, "treat input as a response")
	flag.Parse()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ippdump: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		in = file
	}

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ippdump: %v\n", err)
		os.Exit(1)
	}
	if hexInput {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
				return -1
			}
			return r
		}, string(data))
		data, err = hex.DecodeString(cleaned)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ippdump: bad hex input: %v\n", err)
			os.Exit(1)
		}
	}

	pdu := ipp.NewPdu(!isResponse)
	if err = pdu.Decode(data); err != nil {
		fmt.Fprintf(os.Stderr, "ippdump: %v\n", err)
		os.Exit(1)
	}
	render(os.Stdout, pdu)
}

func render(w io.Writer, pdu *ipp.Pdu) {
	fmt.Fprintf(w, "%s\n", pdu.Summary())
	fmt.Fprintf(w, "  version: %s\n", pdu.VersionString())
	if pdu.IsRequest {
		fmt.Fprintf(w, "  operation: %s\n", ipp.OperationName(pdu.OperationStatus))
	} else {
		fmt.Fprintf(w, "  status: %s\n", pdu.StatusLine())
	}
	fmt.Fprintf(w, "  request-id: %d\n", pdu.RequestId)
	for _, group := range pdu.Groups {
		fmt.Fprintf(w, "  %s\n", group.Name)
		for _, attr := range group.Attributes {
			fmt.Fprintf(w, "    %s\n", attr.String())
		}
	}
	if len(pdu.Trailing) > 0 {
		fmt.Fprintf(w, "  trailing data: %d bytes\n", len(pdu.Trailing))
	}
}
