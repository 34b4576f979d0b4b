package ipp

import (
	"encoding/binary"
	"time"
)

// DefaultVersion 1.1
const DefaultVersion = uint16(0x0101)

func NewRequest(op uint16) *Pdu {
	reqId := uint32(1)
	if Seq32 != nil {
		reqId = uint32(Seq32.NextVal())
	}
	return &Pdu{
		MessageHeader: &MessageHeader{Version: DefaultVersion, OperationStatus: op, RequestId: reqId},
		IsRequest:     true,
	}
}

func NewResponse(status uint16, requestId uint32) *Pdu {
	return &Pdu{
		MessageHeader: &MessageHeader{Version: DefaultVersion, OperationStatus: status, RequestId: requestId},
	}
}

// AddGroup 开启一个新属性分组；上一分组须已填充完毕
func (p *Pdu) AddGroup(tag byte) *AttributeGroup {
	p.Groups = append(p.Groups, AttributeGroup{Tag: tag, Name: TagName(tag)})
	return &p.Groups[len(p.Groups)-1]
}

// addValue 同名连续写入归并为多值属性
func (g *AttributeGroup) addValue(tag byte, name string, raw []byte) *AttributeGroup {
	if n := len(g.Attributes); n == 0 || g.Attributes[n-1].Name != name {
		g.Attributes = append(g.Attributes, Attribute{Name: name})
	}
	attr := &g.Attributes[len(g.Attributes)-1]
	attr.Values = append(attr.Values, DecodeValue(tag, name, raw))
	return g
}

func (g *AttributeGroup) AddInteger(name string, v int32) *AttributeGroup {
	raw := make([]byte, 4)
	binary.BigEndian.PutUint32(raw, uint32(v))
	return g.addValue(TagInteger, name, raw)
}

func (g *AttributeGroup) AddEnum(name string, v int32) *AttributeGroup {
	raw := make([]byte, 4)
	binary.BigEndian.PutUint32(raw, uint32(v))
	return g.addValue(TagEnum, name, raw)
}

func (g *AttributeGroup) AddBoolean(name string, v bool) *AttributeGroup {
	raw := []byte{0x00}
	if v {
		raw[0] = 0x01
	}
	return g.addValue(TagBoolean, name, raw)
}

// AddString tag须为字符串族取值tag
func (g *AttributeGroup) AddString(tag byte, name string, s string) *AttributeGroup {
	return g.addValue(tag, name, []byte(s))
}

func (g *AttributeGroup) AddOctets(name string, bts []byte) *AttributeGroup {
	return g.addValue(TagOctetString, name, bts)
}

func (g *AttributeGroup) AddResolution(name string, xres, yres int32, unit byte) *AttributeGroup {
	raw := make([]byte, 9)
	binary.BigEndian.PutUint32(raw[0:4], uint32(xres))
	binary.BigEndian.PutUint32(raw[4:8], uint32(yres))
	raw[8] = unit
	return g.addValue(TagResolution, name, raw)
}

func (g *AttributeGroup) AddRange(name string, lower, upper int32) *AttributeGroup {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint32(raw[0:4], uint32(lower))
	binary.BigEndian.PutUint32(raw[4:8], uint32(upper))
	return g.addValue(TagRangeOfInteger, name, raw)
}

func (g *AttributeGroup) AddDateTime(name string, t time.Time) *AttributeGroup {
	raw := make([]byte, 11)
	binary.BigEndian.PutUint16(raw[0:2], uint16(t.Year()))
	raw[2] = byte(t.Month())
	raw[3] = byte(t.Day())
	raw[4] = byte(t.Hour())
	raw[5] = byte(t.Minute())
	raw[6] = byte(t.Second())
	raw[7] = byte(t.Nanosecond() / 100000000)
	_, off := t.Zone()
	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	raw[8] = sign
	raw[9] = byte(off / 3600)
	raw[10] = byte(off % 3600 / 60)
	return g.addValue(TagDateTime, name, raw)
}

// Encode 按报文布局编码，多值属性仅首个取值携带名称
func (p *Pdu) Encode() []byte {
	frame := p.MessageHeader.Encode()
	for _, group := range p.Groups {
		if TagType(group.Tag) == TagTypeDelimiter && group.Tag != 0x00 {
			frame = append(frame, group.Tag)
		}
		for _, attr := range group.Attributes {
			for i, v := range attr.Values {
				name := ""
				if i == 0 {
					name = attr.Name
				}
				frame = append(frame, v.Tag)
				frame = appendUint16(frame, uint16(len(name)))
				frame = append(frame, name...)
				frame = appendUint16(frame, uint16(len(v.Raw)))
				frame = append(frame, v.Raw...)
			}
		}
	}
	frame = append(frame, TagEndOfAttributes)
	frame = append(frame, p.Trailing...)
	return frame
}

func appendUint16(frame []byte, v uint16) []byte {
	return append(frame, byte(v>>8), byte(v))
}
