package ipp

import "fmt"

// tag高4bit决定tag类别
const (
	TagTypeDelimiter   = byte(0x00)
	TagTypeOutOfBand   = byte(0x10)
	TagTypeInteger     = byte(0x20)
	TagTypeOctetString = byte(0x30)
	TagTypeCharString  = byte(0x40)
)

// 分组定界tag
const (
	TagOperationAttributes    = byte(0x01)
	TagJobAttributes          = byte(0x02)
	TagEndOfAttributes        = byte(0x03)
	TagPrinterAttributes      = byte(0x04)
	TagUnsupportedAttributes  = byte(0x05)
	TagSubscriptionAttributes = byte(0x06)
	TagEventNotificationAttrs = byte(0x07)
	TagResourceAttributes     = byte(0x08)
	TagDocumentAttributes     = byte(0x09)
)

// 取值tag
const (
	TagInteger         = byte(0x21)
	TagBoolean         = byte(0x22)
	TagEnum            = byte(0x23)
	TagOctetString     = byte(0x30)
	TagDateTime        = byte(0x31)
	TagResolution      = byte(0x32)
	TagRangeOfInteger  = byte(0x33)
	TagBegCollection   = byte(0x34)
	TagTextWithLang    = byte(0x35)
	TagNameWithLang    = byte(0x36)
	TagEndCollection   = byte(0x37)
	TagTextWithoutLang = byte(0x41)
	TagNameWithoutLang = byte(0x42)
	TagKeyword         = byte(0x44)
	TagUri             = byte(0x45)
	TagUriScheme       = byte(0x46)
	TagCharset         = byte(0x47)
	TagNaturalLanguage = byte(0x48)
	TagMimeMediaType   = byte(0x49)
	TagMemberAttrName  = byte(0x4a)
)

func TagType(tag byte) byte {
	return tag & 0xF0
}

var TagMap = map[byte]string{
	// delimiter tags
	TagOperationAttributes:    "operation-attributes-tag",
	TagJobAttributes:          "job-attributes-tag",
	TagEndOfAttributes:        "end-of-attributes-tag",
	TagPrinterAttributes:      "printer-attributes-tag",
	TagUnsupportedAttributes:  "unsupported-attributes-tag",
	TagSubscriptionAttributes: "subscription-attributes-tag",
	TagEventNotificationAttrs: "event-notification-attributes-tag",
	TagResourceAttributes:     "resource-attributes-tag",
	TagDocumentAttributes:     "document-attributes-tag",

	// value tags
	0x10:               "unsupported",
	0x12:               "unknown",
	0x13:               "no-value",
	0x15:               "not-settable",
	0x16:               "delete-attribute",
	0x17:               "admin-define",
	TagInteger:         "integer",
	TagBoolean:         "boolean",
	TagEnum:            "enum",
	TagOctetString:     "octetString",
	TagDateTime:        "dateTime",
	TagResolution:      "resolution",
	TagRangeOfInteger:  "rangeOfInteger",
	TagBegCollection:   "begCollection",
	TagTextWithLang:    "textWithLanguage",
	TagNameWithLang:    "nameWithLanguage",
	TagEndCollection:   "endCollection",
	TagTextWithoutLang: "textWithoutLanguage",
	TagNameWithoutLang: "nameWithoutLanguage",
	TagKeyword:         "keyword",
	TagUri:             "uri",
	TagUriScheme:       "uriScheme",
	TagCharset:         "charset",
	TagNaturalLanguage: "naturalLanguage",
	TagMimeMediaType:   "mimeMediaType",
	TagMemberAttrName:  "memberAttrName",
}

// TagName tag的报文名称，未知tag返回 Reserved (0x%02x)
func TagName(tag byte) string {
	if name, ok := TagMap[tag]; ok {
		return name
	}
	return fmt.Sprintf("Reserved (0x%02x)", tag)
}
