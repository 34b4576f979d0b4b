package ipp

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Kind Value变体类别
type Kind uint8

const (
	KindRaw Kind = iota
	KindOutOfBand
	KindBoolean
	KindInteger
	KindEnum
	KindOctetString
	KindDateTime
	KindResolution
	KindRangeOfInteger
	KindTextWithLang
	KindCharString
	KindMalformed
)

var kindNames = map[Kind]string{
	KindRaw:            "raw",
	KindOutOfBand:      "outOfBand",
	KindBoolean:        "boolean",
	KindInteger:        "integer",
	KindEnum:           "enum",
	KindOctetString:    "octetString",
	KindDateTime:       "dateTime",
	KindResolution:     "resolution",
	KindRangeOfInteger: "rangeOfInteger",
	KindTextWithLang:   "textWithLanguage",
	KindCharString:     "charString",
	KindMalformed:      "malformed",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Value 解码后的单个取值，解码完成后不可变
// Raw保留报文声明长度内的原始字节；Text为展示形态
type Value struct {
	Tag    byte
	Kind   Kind
	Raw    []byte
	Text   string
	Int    int32
	Bool   bool
	Symbol string // enum命中的符号名，未命中为空

	// KindMalformed时的诊断信息
	Expected int
	Actual   int
}

func (v Value) String() string {
	return v.Text
}

type valueDecoder func(name string, data []byte) Value

// valueDecoders 取值tag到解码函数的分发表
var valueDecoders = map[byte]valueDecoder{
	TagBoolean:        decodeBoolean,
	TagInteger:        decodeInteger,
	TagEnum:           decodeEnum,
	TagOctetString:    decodeOctetString,
	TagDateTime:       decodeDateTime,
	TagResolution:     decodeResolution,
	TagRangeOfInteger: decodeRangeOfInteger,
	TagTextWithLang:   decodeTextWithLang,
	TagNameWithLang:   decodeTextWithLang,
}

// DecodeValue 按tag解码单个取值，对任意输入都返回结果
func DecodeValue(tag byte, name string, data []byte) Value {
	if dec, ok := valueDecoders[tag]; ok {
		v := dec(name, data)
		v.Tag = tag
		return v
	}
	switch TagType(tag) {
	case TagTypeOutOfBand:
		return Value{Tag: tag, Kind: KindOutOfBand, Raw: data, Text: TagName(tag)}
	case TagTypeInteger:
		return Value{Tag: tag, Kind: KindRaw, Raw: data, Text: fmt.Sprintf("Unknown integer type 0x%02x", tag)}
	case TagTypeCharString:
		return Value{Tag: tag, Kind: KindCharString, Raw: data, Text: formatText(data)}
	case TagTypeOctetString:
		return Value{Tag: tag, Kind: KindOctetString, Raw: data, Text: formatText(data)}
	default:
		return Value{Tag: tag, Kind: KindRaw, Raw: data, Text: fmt.Sprintf("%x", data)}
	}
}

func malformedValue(kind Kind, expected int, data []byte) Value {
	return Value{
		Kind:     KindMalformed,
		Raw:      data,
		Expected: expected,
		Actual:   len(data),
		Text:     fmt.Sprintf("Invalid %s (length is %d, should be %d)", kind, len(data), expected),
	}
}

func decodeBoolean(_ string, data []byte) Value {
	if len(data) != 1 {
		return malformedValue(KindBoolean, 1, data)
	}
	switch data[0] {
	case 0x00:
		return Value{Kind: KindBoolean, Raw: data, Bool: false, Text: "false"}
	case 0x01:
		return Value{Kind: KindBoolean, Raw: data, Bool: true, Text: "true"}
	default:
		return Value{Kind: KindBoolean, Raw: data, Text: fmt.Sprintf("Unknown (0x%02x)", data[0])}
	}
}

func decodeInteger(_ string, data []byte) Value {
	if len(data) != 4 {
		return malformedValue(KindInteger, 4, data)
	}
	n := int32(binary.BigEndian.Uint32(data))
	return Value{Kind: KindInteger, Raw: data, Int: n, Text: strconv.FormatInt(int64(n), 10)}
}

func decodeEnum(name string, data []byte) Value {
	if len(data) != 4 {
		return malformedValue(KindEnum, 4, data)
	}
	n := int32(binary.BigEndian.Uint32(data))
	v := Value{Kind: KindEnum, Raw: data, Int: n}
	if symbol, ok := LookupEnum(name, n); ok {
		v.Symbol = symbol
		v.Text = symbol
	} else {
		v.Text = strconv.FormatInt(int64(n), 10)
	}
	return v
}

func decodeOctetString(_ string, data []byte) Value {
	return Value{Kind: KindOctetString, Raw: data, Text: formatText(data)}
}

func decodeDateTime(_ string, data []byte) Value {
	if len(data) != 11 {
		// 长度不符退化为十六进制
		return Value{Kind: KindDateTime, Raw: data, Text: fmt.Sprintf("%x", data)}
	}
	year := binary.BigEndian.Uint16(data[0:2])
	text := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%d%c%02d%02d",
		year, data[2], data[3], data[4], data[5], data[6], data[7], data[8], data[9], data[10])
	return Value{Kind: KindDateTime, Raw: data, Text: text}
}

func decodeResolution(_ string, data []byte) Value {
	if len(data) != 9 {
		return Value{Kind: KindResolution, Raw: data, Text: fmt.Sprintf("%x", data)}
	}
	xres := int32(binary.BigEndian.Uint32(data[0:4]))
	yres := int32(binary.BigEndian.Uint32(data[4:8]))
	var unit string
	switch data[8] {
	case 3:
		unit = "dpi"
	case 4:
		unit = "dpcm"
	default:
		unit = "unknown"
	}
	return Value{Kind: KindResolution, Raw: data, Text: fmt.Sprintf("%dx%d%s", xres, yres, unit)}
}

func decodeRangeOfInteger(_ string, data []byte) Value {
	if len(data) != 8 {
		return Value{Kind: KindRangeOfInteger, Raw: data, Text: fmt.Sprintf("%x", data)}
	}
	lower := int32(binary.BigEndian.Uint32(data[0:4]))
	upper := int32(binary.BigEndian.Uint32(data[4:8]))
	return Value{Kind: KindRangeOfInteger, Raw: data, Text: fmt.Sprintf("%d-%d", lower, upper)}
}

// decodeTextWithLang 内嵌布局 lang_len(2) lang(lang_len) text_len(2) text(text_len)
func decodeTextWithLang(_ string, data []byte) Value {
	if len(data) >= 4 {
		langLen := int(binary.BigEndian.Uint16(data[0:2]))
		if 2+langLen+2 <= len(data) {
			textLen := int(binary.BigEndian.Uint16(data[2+langLen : 2+langLen+2]))
			if 2+langLen+2+textLen <= len(data) {
				lang := formatText(data[2 : 2+langLen])
				text := formatText(data[2+langLen+2 : 2+langLen+2+textLen])
				return Value{Kind: KindTextWithLang, Raw: data, Text: fmt.Sprintf("%s (%s)", text, lang)}
			}
		}
	}
	// 内嵌长度越界退化为十六进制
	return Value{Kind: KindTextWithLang, Raw: data, Text: fmt.Sprintf("%x", data)}
}

// formatText 文本尽力渲染：合法UTF-8原样输出，否则按Latin-1转码，
// 不可打印字符以\xNN转义
func formatText(data []byte) string {
	var s string
	if utf8.Valid(data) {
		s = string(data)
	} else {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return fmt.Sprintf("%x", data)
		}
		s = string(decoded)
	}
	var b strings.Builder
	for _, r := range s {
		if r >= 0x20 && r != 0x7f {
			b.WriteRune(r)
		} else {
			b.WriteString(fmt.Sprintf("\\x%02x", r))
		}
	}
	return b.String()
}
