package ipp

import "strconv"

type enumTable map[int32]string

var printerStateVals = enumTable{
	3: "idle",
	4: "processing",
	5: "stopped",
}

var jobStateVals = enumTable{
	3: "pending",
	4: "pending-held",
	5: "processing",
	6: "processing-stopped",
	7: "canceled",
	8: "aborted",
	9: "completed",
}

var documentStateVals = enumTable{
	3: "pending",
	5: "processing",
	6: "processing-stopped",
	7: "canceled",
	8: "aborted",
	9: "completed",
}

var finishingsVals = enumTable{
	3:   "none",
	4:   "staple",
	5:   "punch",
	6:   "cover",
	7:   "bind",
	8:   "saddle-stitch",
	9:   "edge-stitch",
	10:  "fold",
	11:  "trim",
	12:  "bale",
	13:  "booklet-maker",
	14:  "jog-offset",
	15:  "coat",
	16:  "laminate",
	20:  "staple-top-left",
	21:  "staple-bottom-left",
	22:  "staple-top-right",
	23:  "staple-bottom-right",
	24:  "edge-stitch-left",
	25:  "edge-stitch-top",
	26:  "edge-stitch-right",
	27:  "edge-stitch-bottom",
	28:  "staple-dual-left",
	29:  "staple-dual-top",
	30:  "staple-dual-right",
	31:  "staple-dual-bottom",
	32:  "staple-triple-left",
	33:  "staple-triple-top",
	34:  "staple-triple-right",
	35:  "staple-triple-bottom",
	50:  "bind-left",
	51:  "bind-top",
	52:  "bind-right",
	53:  "bind-bottom",
	60:  "trim-after-pages",
	61:  "trim-after-documents",
	62:  "trim-after-copies",
	63:  "trim-after-job",
	70:  "punch-top-left",
	71:  "punch-bottom-left",
	72:  "punch-top-right",
	73:  "punch-bottom-right",
	74:  "punch-dual-left",
	75:  "punch-dual-top",
	76:  "punch-dual-right",
	77:  "punch-dual-bottom",
	78:  "punch-triple-left",
	79:  "punch-triple-top",
	80:  "punch-triple-right",
	81:  "punch-triple-bottom",
	82:  "punch-quad-left",
	83:  "punch-quad-top",
	84:  "punch-quad-right",
	85:  "punch-quad-bottom",
	86:  "punch-multiple-left",
	87:  "punch-multiple-top",
	88:  "punch-multiple-right",
	89:  "punch-multiple-bottom",
	90:  "fold-accordion",
	91:  "fold-double-gate",
	92:  "fold-gate",
	93:  "fold-half",
	94:  "fold-half-z",
	95:  "fold-left-gate",
	96:  "fold-letter",
	97:  "fold-parallel",
	98:  "fold-poster",
	99:  "fold-right-gate",
	100: "fold-z",
}

var orientationVals = enumTable{
	3: "portrait",
	4: "landscape",
	5: "reverse-landscape",
	6: "reverse-portrait",
	7: "none",
}

var qualityVals = enumTable{
	3: "draft",
	4: "normal",
	5: "high",
}

var transmissionStatusVals = enumTable{
	3: "pending",
	4: "pending-retry",
	5: "processing",
	7: "canceled",
	8: "aborted",
	9: "completed",
}

// operationsVals operations-supported属性复用操作码表
var operationsVals = enumTable{}

func init() {
	for code, name := range OperationMap {
		operationsVals[int32(code)] = name
	}
}

// enumResolver 属性名到符号表的关联，按表序逐个尝试，先命中者生效
type enumResolver struct {
	names   []string
	vals    enumTable
	unknown string
}

var enumResolvers = []enumResolver{
	{[]string{"printer-state"}, printerStateVals, "Unknown Printer State"},
	{[]string{"job-state"}, jobStateVals, "Unknown Job State"},
	{[]string{"document-state"}, documentStateVals, "Unknown Document State"},
	{[]string{"operations-supported"}, operationsVals, "Unknown Operation ID"},
	{[]string{"finishings"}, finishingsVals, "Unknown Finishings Value"},
	{[]string{"orientation-requested", "media-feed-orientation"}, orientationVals, "Unknown Orientation Value"},
	{[]string{"print-quality"}, qualityVals, "Unknown Print Quality"},
	{[]string{"transmission-status"}, transmissionStatusVals, "Unknown Transmission Status"},
}

// LookupEnum 按属性名查找enum取值的符号名
// 属性名需完整匹配（长度须大于5），未关联符号表时ok为false
func LookupEnum(name string, value int32) (symbol string, ok bool) {
	if len(name) <= 5 {
		return "", false
	}
	for _, r := range enumResolvers {
		for _, n := range r.names {
			if name == n {
				if symbol, found := r.vals[value]; found {
					return symbol, true
				}
				return r.unknown, true
			}
		}
	}
	return "", false
}

// ResolveEnum 未关联符号表的属性按十进制渲染
func ResolveEnum(name string, value int32) string {
	if symbol, ok := LookupEnum(name, value); ok {
		return symbol
	}
	return strconv.FormatInt(int64(value), 10)
}
