package ipp

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Attribute 一个属性名下的一个或多个取值
// 报文中多值属性首个取值携带名称，后续取值名称长度为0
type Attribute struct {
	Name   string
	Values []Value
}

func (a *Attribute) String() string {
	if len(a.Values) == 1 {
		return fmt.Sprintf("%s: %s", a.Name, a.Values[0].Text)
	}
	texts := make([]string, len(a.Values))
	for i, v := range a.Values {
		texts[i] = v.Text
	}
	return fmt.Sprintf("%s: [%s]", a.Name, strings.Join(texts, ", "))
}

// AttributeGroup 由定界tag开启的属性分组
// 分组由下一个定界tag或end-of-attributes-tag隐式关闭
type AttributeGroup struct {
	Tag        byte
	Name       string
	Attributes []Attribute
}

// parseAttributes 从offset起遍历tag定界的字节流，重组属性分组
// 返回分组序列与停止位置；越界的取值字段不中断整体解码，
// 停止位置之后的字节归入未解析尾部
func parseAttributes(frame []byte, offset int) (groups []AttributeGroup, rest int) {
	var current *AttributeGroup

	for offset < len(frame) {
		tag := frame[offset]

		if TagType(tag) == TagTypeDelimiter {
			if current != nil {
				groups = append(groups, *current)
			}
			offset++
			if tag == TagEndOfAttributes {
				// 属性流终结
				return groups, offset
			}
			current = &AttributeGroup{Tag: tag, Name: TagName(tag)}
			continue
		}

		// 取值字段 tag(1) name_len(2) name value_len(2) value
		if offset+3 > len(frame) {
			break
		}
		nameLen := int(binary.BigEndian.Uint16(frame[offset+1 : offset+3]))
		if offset+3+nameLen+2 > len(frame) {
			break
		}
		valueLen := int(binary.BigEndian.Uint16(frame[offset+3+nameLen : offset+5+nameLen]))
		fieldLen := 1 + 2 + nameLen + 2 + valueLen
		if offset+fieldLen > len(frame) {
			break
		}

		if current == nil {
			// 定界tag之前出现取值字段，挂入隐式顶层分组
			current = &AttributeGroup{Tag: 0x00, Name: TagName(0x00)}
		}

		name := string(frame[offset+3 : offset+3+nameLen])
		value := frame[offset+5+nameLen : offset+fieldLen]

		if nameLen != 0 || len(current.Attributes) == 0 {
			current.Attributes = append(current.Attributes, Attribute{Name: name})
		}
		attr := &current.Attributes[len(current.Attributes)-1]
		attr.Values = append(attr.Values, DecodeValue(tag, attr.Name, value))

		offset += fieldLen
	}

	if current != nil {
		groups = append(groups, *current)
	}
	return groups, offset
}
