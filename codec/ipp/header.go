package ipp

import (
	"encoding/binary"
	"fmt"
)

const HeadLength = 8

// MessageHeader 8字节定长报文头
// OperationStatus 请求报文为操作码，应答报文为状态码
type MessageHeader struct {
	Version         uint16
	OperationStatus uint16
	RequestId       uint32
}

func (header *MessageHeader) Encode() []byte {
	frame := make([]byte, HeadLength)
	binary.BigEndian.PutUint16(frame[0:2], header.Version)
	binary.BigEndian.PutUint16(frame[2:4], header.OperationStatus)
	binary.BigEndian.PutUint32(frame[4:8], header.RequestId)
	return frame
}

func (header *MessageHeader) Decode(frame []byte) error {
	if len(frame) < HeadLength {
		return ErrTruncatedHeader
	}
	header.Version = binary.BigEndian.Uint16(frame[0:2])
	header.OperationStatus = binary.BigEndian.Uint16(frame[2:4])
	header.RequestId = binary.BigEndian.Uint32(frame[4:8])
	return nil
}

func (header *MessageHeader) String() string {
	return fmt.Sprintf("{ Version: %s, OperationStatus: %#04x, RequestId: %d }",
		header.VersionString(), header.OperationStatus, header.RequestId)
}

// VersionString 高字节为主版本，低字节为次版本
func (header *MessageHeader) VersionString() string {
	return fmt.Sprintf("%d.%d", byte(header.Version>>8), byte(header.Version))
}

// 操作码
const (
	OpPrintJob             = uint16(0x0002)
	OpPrintUri             = uint16(0x0003)
	OpValidateJob          = uint16(0x0004)
	OpCreateJob            = uint16(0x0005)
	OpSendDocument         = uint16(0x0006)
	OpSendUri              = uint16(0x0007)
	OpCancelJob            = uint16(0x0008)
	OpGetJobAttributes     = uint16(0x0009)
	OpGetJobs              = uint16(0x000A)
	OpGetPrinterAttributes = uint16(0x000B)
)

var OperationMap = map[uint16]string{
	OpPrintJob:             "Print-Job",
	OpPrintUri:             "Print-URI",
	OpValidateJob:          "Validate-Job",
	OpCreateJob:            "Create-Job",
	OpSendDocument:         "Send-Document",
	OpSendUri:              "Send-URI",
	OpCancelJob:            "Cancel-Job",
	OpGetJobAttributes:     "Get-Job-Attributes",
	OpGetJobs:              "Get-Jobs",
	OpGetPrinterAttributes: "Get-Printer-Attributes",
	0x000C:                 "Hold-Job",
	0x000D:                 "Release-Job",
	0x000E:                 "Restart-Job",
	0x0010:                 "Pause-Printer",
	0x0011:                 "Resume-Printer",
	0x0012:                 "Purge-Jobs",
	0x0013:                 "Set-Printer-Attributes",
	0x0014:                 "Set-Job-Attributes",
	0x0015:                 "Get-Printer-Supported-Values",
	0x0016:                 "Create-Printer-Subscriptions",
	0x0017:                 "Create-Job-Subscriptions",
	0x0018:                 "Get-Subscription-Attributes",
	0x0019:                 "Get-Subscriptions",
	0x001A:                 "Renew-Subscription",
	0x001B:                 "Cancel-Subscription",
	0x001C:                 "Get-Notifications",
	0x001D:                 "Reserved (ipp-indp-method)",
	0x001E:                 "Reserved (ipp-get-resources)",
	0x001F:                 "Reserved (ipp-get-resources)",
	0x0020:                 "Reserved (ipp-get-resources)",
	0x0021:                 "Reserved (ipp-install)",
	0x0022:                 "Enable-Printer",
	0x0023:                 "Disable-Printer",
	0x0024:                 "Pause-Printer-After-Current-Job",
	0x0025:                 "Hold-New-Jobs",
	0x0026:                 "Release-Held-New-Jobs",
	0x0027:                 "Deactivate-Printer",
	0x0028:                 "Activate-Printer",
	0x0029:                 "Restart-Printer",
	0x002A:                 "Shutdown-Printer",
	0x002B:                 "Startup-Printer",
	0x002C:                 "Reprocess-Job",
	0x002D:                 "Cancel-Current-Job",
	0x002E:                 "Suspend-Current-Job",
	0x002F:                 "Resume-Job",
	0x0030:                 "Promote-Job",
	0x0031:                 "Schedule-Job-After",
	0x0033:                 "Cancel-Document",
	0x0034:                 "Get-Document-Attributes",
	0x0035:                 "Get-Documents",
	0x0036:                 "Delete-Document",
	0x0037:                 "Set-Document-Attributes",
	0x0038:                 "Cancel-Jobs",
	0x0039:                 "Cancel-My-Jobs",
	0x003A:                 "Resubmit-Job",
	0x003B:                 "Close-Job",
	0x003C:                 "Identify-Printer",
	0x003D:                 "Validate-Document",
	0x003E:                 "Add-Document-Images",
	0x003F:                 "Acknowledge-Document",
	0x0040:                 "Acknowledge-Identify-Printer",
	0x0041:                 "Acknowledge-Job",
	0x0042:                 "Fetch-Document",
	0x0043:                 "Fetch-Job",
	0x0044:                 "Get-Output-Device-Attributes",
	0x0045:                 "Update-Active-Jobs",
	0x0046:                 "Deregister-Output-Device",
	0x0047:                 "Update-Document-Status",
	0x0048:                 "Update-Job-Status",
	0x0049:                 "Update-Output-Device-Attributes",
	0x004A:                 "Get-Next-Document-Data",
	0x4001:                 "CUPS-Get-Default",
	0x4002:                 "CUPS-Get-Printers",
	0x4003:                 "CUPS-Add-Modify-Printer",
	0x4004:                 "CUPS-Delete-Printer",
	0x4005:                 "CUPS-Get-Classes",
	0x4006:                 "CUPS-Add-Modify-Class",
	0x4007:                 "CUPS-Delete-Class",
	0x4008:                 "CUPS-Accept-Jobs",
	0x4009:                 "CUPS-Reject-Jobs",
	0x400A:                 "CUPS-Set-Default",
	0x400B:                 "CUPS-Get-Devices",
	0x400C:                 "CUPS-Get-PPDs",
	0x400D:                 "CUPS-Move-Job",
	0x400E:                 "CUPS-Authenticate-Job",
	0x400F:                 "CUPS-Get-PPD",
	0x4027:                 "CUPS-Get-Document",
	0x4028:                 "CUPS-Create-Local-Printer",
}

// 状态码按高字节分类
const (
	StatusSuccessful    = uint16(0x0000)
	StatusInformational = uint16(0x0100)
	StatusRedirection   = uint16(0x0200)
	StatusClientError   = uint16(0x0400)
	StatusServerError   = uint16(0x0500)
	StatusTypeMask      = uint16(0xFF00)
)

var StatusMap = map[uint16]string{
	0x0000: "successful-ok",
	0x0001: "successful-ok-ignored-or-substituted-attributes",
	0x0002: "successful-ok-conflicting-attributes",
	0x0003: "successful-ok-ignored-subscriptions",
	0x0005: "successful-ok-too-many-events",
	0x0007: "successful-ok-events-complete",
	0x0400: "client-error-bad-request",
	0x0401: "client-error-forbidden",
	0x0402: "client-error-not-authenticated",
	0x0403: "client-error-not-authorized",
	0x0404: "client-error-not-possible",
	0x0405: "client-error-timeout",
	0x0406: "client-error-not-found",
	0x0407: "client-error-gone",
	0x0408: "client-error-request-entity-too-large",
	0x0409: "client-error-request-value-too-long",
	0x040A: "client-error-document-format-not-supported",
	0x040B: "client-error-attributes-or-values-not-supported",
	0x040C: "client-error-uri-scheme-not-supported",
	0x040D: "client-error-charset-not-supported",
	0x040E: "client-error-conflicting-attributes",
	0x040F: "client-error-compression-not-supported",
	0x0410: "client-error-compression-error",
	0x0411: "client-error-document-format-error",
	0x0412: "client-error-document-access-error",
	0x0413: "client-error-attributes-not-settable",
	0x0414: "client-error-ignored-all-subscriptions",
	0x0415: "client-error-too-many-subscriptions",
	0x0418: "client-error-document-password-error",
	0x0419: "client-error-document-permission-error",
	0x041A: "client-error-document-security-error",
	0x041B: "client-error-document-unprintable-error",
	0x041C: "client-error-account-info-needed",
	0x041D: "client-error-account-closed",
	0x041E: "client-error-account-limit-reached",
	0x041F: "client-error-account-authorization-failed",
	0x0420: "client-error-not-fetchable",
	0x0500: "server-error-internal-error",
	0x0501: "server-error-operation-not-supported",
	0x0502: "server-error-service-unavailable",
	0x0503: "server-error-version-not-supported",
	0x0504: "server-error-device-error",
	0x0505: "server-error-temporary-error",
	0x0506: "server-error-not-accepting-jobs",
	0x0507: "server-error-busy",
	0x0508: "server-error-job-canceled",
	0x0509: "server-error-multiple-document-jobs-not-supported",
	0x050A: "server-error-printer-is-deactivated",
	0x050B: "server-error-too-many-jobs",
	0x050C: "server-error-too-many-documents",
}

// OperationName 未知操作码返回 0x%04x
func OperationName(code uint16) string {
	if name, ok := OperationMap[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", code)
}

// StatusName 未知状态码返回 0x%04x
func StatusName(code uint16) string {
	if name, ok := StatusMap[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", code)
}

// StatusClass 状态码分类名称
func StatusClass(code uint16) string {
	switch code & StatusTypeMask {
	case StatusSuccessful:
		return "Successful"
	case StatusInformational:
		return "Informational"
	case StatusRedirection:
		return "Redirection"
	case StatusClientError:
		return "Client Error"
	case StatusServerError:
		return "Server Error"
	default:
		return "Unknown"
	}
}
