package ipp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBoolean(t *testing.T) {
	v := DecodeValue(TagBoolean, "job-hold-until-supported", []byte{0x01})
	assert.Equal(t, KindBoolean, v.Kind)
	assert.True(t, v.Bool)
	assert.Equal(t, "true", v.Text)

	v = DecodeValue(TagBoolean, "x", []byte{0x00})
	assert.False(t, v.Bool)
	assert.Equal(t, "false", v.Text)

	v = DecodeValue(TagBoolean, "x", []byte{0x05})
	assert.Equal(t, KindBoolean, v.Kind)
	assert.Equal(t, "Unknown (0x05)", v.Text)
}

func TestDecodeBoolean_Malformed(t *testing.T) {
	v := DecodeValue(TagBoolean, "x", []byte{0x01, 0x00})
	assert.Equal(t, KindMalformed, v.Kind)
	assert.Equal(t, 1, v.Expected)
	assert.Equal(t, 2, v.Actual)
	t.Logf("%s", v.Text)
}

func TestDecodeInteger(t *testing.T) {
	v := DecodeValue(TagInteger, "copies", []byte{0x00, 0x00, 0x00, 0x2A})
	assert.Equal(t, KindInteger, v.Kind)
	assert.Equal(t, int32(42), v.Int)
	assert.Equal(t, "42", v.Text)

	// 负值按有符号32位解释
	v = DecodeValue(TagInteger, "copies", []byte{0xFF, 0xFF, 0xFF, 0xFF})
	assert.Equal(t, int32(-1), v.Int)
	assert.Equal(t, "-1", v.Text)
}

func TestDecodeInteger_Malformed(t *testing.T) {
	v := DecodeValue(TagInteger, "id", []byte{0x00, 0x00, 0x2A})
	assert.Equal(t, KindMalformed, v.Kind)
	assert.Equal(t, 4, v.Expected)
	assert.Equal(t, 3, v.Actual)
	assert.Equal(t, "Invalid integer (length is 3, should be 4)", v.Text)
}

func TestDecodeEnum(t *testing.T) {
	v := DecodeValue(TagEnum, "printer-state", []byte{0x00, 0x00, 0x00, 0x04})
	assert.Equal(t, KindEnum, v.Kind)
	assert.Equal(t, int32(4), v.Int)
	assert.Equal(t, "processing", v.Symbol)
	assert.Equal(t, "processing", v.Text)

	v = DecodeValue(TagEnum, "unrelated-thing", []byte{0x00, 0x00, 0x00, 0x04})
	assert.Equal(t, "", v.Symbol)
	assert.Equal(t, "4", v.Text)
}

func TestDecodeDateTime(t *testing.T) {
	raw := []byte{0x07, 0xE9, 0x02, 0x03, 0x0D, 0x1E, 0x2D, 0x05, '+', 0x08, 0x00}
	v := DecodeValue(TagDateTime, "printer-current-time", raw)
	assert.Equal(t, KindDateTime, v.Kind)
	assert.Equal(t, "2025-02-03T13:30:45.5+0800", v.Text)
}

func TestDecodeDateTime_Fallback(t *testing.T) {
	// 长度不为11时退化为十六进制
	v := DecodeValue(TagDateTime, "printer-current-time", []byte{0x01, 0x02, 0x03, 0x04, 0x05})
	assert.Equal(t, KindDateTime, v.Kind)
	assert.Equal(t, "0102030405", v.Text)
}

func TestDecodeResolution(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x02, 0x58, 0x00, 0x00, 0x02, 0x58, 0x03}
	v := DecodeValue(TagResolution, "printer-resolution-default", raw)
	assert.Equal(t, "600x600dpi", v.Text)

	raw[8] = 0x04
	v = DecodeValue(TagResolution, "printer-resolution-default", raw)
	assert.Equal(t, "600x600dpcm", v.Text)

	raw[8] = 0x09
	v = DecodeValue(TagResolution, "printer-resolution-default", raw)
	assert.Equal(t, "600x600unknown", v.Text)

	v = DecodeValue(TagResolution, "printer-resolution-default", raw[:4])
	assert.Equal(t, "00000258", v.Text)
}

func TestDecodeRangeOfInteger(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0xFF, 0xFF}
	v := DecodeValue(TagRangeOfInteger, "copies-supported", raw)
	assert.Equal(t, "1-65535", v.Text)

	v = DecodeValue(TagRangeOfInteger, "copies-supported", raw[:6])
	assert.Equal(t, "000000010000", v.Text)
}

func TestDecodeTextWithLanguage(t *testing.T) {
	raw := []byte{0x00, 0x02, 'e', 'n', 0x00, 0x05, 'h', 'e', 'l', 'l', 'o'}
	v := DecodeValue(TagTextWithLang, "job-name", raw)
	assert.Equal(t, KindTextWithLang, v.Kind)
	assert.Equal(t, "hello (en)", v.Text)
}

func TestDecodeTextWithLanguage_Fallback(t *testing.T) {
	// 内嵌长度越界退化为十六进制
	raw := []byte{0x00, 0x10, 'e', 'n'}
	v := DecodeValue(TagTextWithLang, "job-name", raw)
	assert.Equal(t, "0010656e", v.Text)

	v = DecodeValue(TagTextWithLang, "job-name", []byte{0x00})
	assert.Equal(t, "00", v.Text)
}

func TestDecodeCharString(t *testing.T) {
	v := DecodeValue(TagKeyword, "sides", []byte("two-sided-long-edge"))
	assert.Equal(t, KindCharString, v.Kind)
	assert.Equal(t, "two-sided-long-edge", v.Text)

	v = DecodeValue(TagUri, "printer-uri", []byte("ipp://printer.local/ipp/print"))
	assert.Equal(t, "ipp://printer.local/ipp/print", v.Text)
}

func TestDecodeOctetString(t *testing.T) {
	v := DecodeValue(TagOctetString, "x", []byte("plain"))
	assert.Equal(t, KindOctetString, v.Kind)
	assert.Equal(t, "plain", v.Text)

	// 非UTF-8按Latin-1转码
	v = DecodeValue(TagOctetString, "x", []byte{'c', 'a', 'f', 0xE9})
	assert.Equal(t, "café", v.Text)

	// 控制字符转义
	v = DecodeValue(TagOctetString, "x", []byte{'a', 0x00, 'b'})
	assert.Equal(t, "a\\x00b", v.Text)
}

func TestDecodeOutOfBand(t *testing.T) {
	v := DecodeValue(0x13, "job-impressions", nil)
	assert.Equal(t, KindOutOfBand, v.Kind)
	assert.Equal(t, "no-value", v.Text)
}

func TestDecodeUnknownIntegerType(t *testing.T) {
	v := DecodeValue(0x24, "x", []byte{0x01})
	assert.Equal(t, "Unknown integer type 0x24", v.Text)
}

func BenchmarkDecodeValue_Integer(b *testing.B) {
	raw := []byte{0x00, 0x00, 0x00, 0x2A}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DecodeValue(TagInteger, "copies", raw)
	}
}
