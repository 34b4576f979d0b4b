package codec

type IHead interface {
	Encode() []byte
	Decode([]byte) error
	String() string
}

type Codec interface {
	Encode() []byte
	Decode(frame []byte) error
	String() string
}

// Sequence32 32位序号生成器
type Sequence32 interface {
	NextVal() int32
}
