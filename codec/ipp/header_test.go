package ipp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageHeader_Decode(t *testing.T) {
	frame := []byte{0x01, 0x01, 0x00, 0x02, 0x00, 0x00, 0x00, 0x01}

	header := MessageHeader{}
	err := header.Decode(frame)
	assert.Nil(t, err)
	t.Logf("%s", header.String())

	assert.Equal(t, uint16(0x0101), header.Version)
	assert.Equal(t, "1.1", header.VersionString())
	assert.Equal(t, OpPrintJob, header.OperationStatus)
	assert.Equal(t, uint32(1), header.RequestId)
}

func TestMessageHeader_Truncated(t *testing.T) {
	for i := 0; i < HeadLength; i++ {
		header := MessageHeader{}
		err := header.Decode(make([]byte, i))
		assert.ErrorIs(t, err, ErrTruncatedHeader)
	}
}

func TestMessageHeader_Encode(t *testing.T) {
	header := MessageHeader{Version: 0x0200, OperationStatus: OpGetPrinterAttributes, RequestId: 42}
	frame := header.Encode()
	t.Logf("% x", frame)

	decoded := MessageHeader{}
	assert.Nil(t, decoded.Decode(frame))
	assert.Equal(t, header, decoded)
	assert.Equal(t, "2.0", decoded.VersionString())
}

func TestOperationName(t *testing.T) {
	assert.Equal(t, "Print-Job", OperationName(0x0002))
	assert.Equal(t, "CUPS-Get-Default", OperationName(0x4001))
	assert.Equal(t, "0x9999", OperationName(0x9999))
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "successful-ok", StatusName(0x0000))
	assert.Equal(t, "client-error-not-found", StatusName(0x0406))
	assert.Equal(t, "0x7777", StatusName(0x7777))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "Successful", StatusClass(0x0001))
	assert.Equal(t, "Informational", StatusClass(0x0100))
	assert.Equal(t, "Redirection", StatusClass(0x0200))
	assert.Equal(t, "Client Error", StatusClass(0x0406))
	assert.Equal(t, "Server Error", StatusClass(0x0501))
	assert.Equal(t, "Unknown", StatusClass(0x0300))
}
