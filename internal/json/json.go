package json

import (
	"github.com/bytedance/sonic"
)

// 本包基于 bytedance/sonic 封装统一的 JSON 编解码入口。
//
// 项目内所有 JSON 操作都应经由本包，避免各处直接依赖具体 JSON 引擎。

var (
	// defaultAPI 为默认配置（与 encoding/json 行为对齐）。
	defaultAPI = sonic.ConfigStd

	// fastAPI 为性能优先配置，牺牲部分兼容性换取吞吐。
	fastAPI = sonic.ConfigFastest
)

// Marshal 将任意对象编码为 JSON 字节序列。
func Marshal(v any) ([]byte, error) {
	return defaultAPI.Marshal(v)
}

// MarshalIndent 将任意对象编码为带缩进的多行 JSON 文本。
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return defaultAPI.MarshalIndent(v, prefix, indent)
}

// Unmarshal 将 JSON 字节序列解码到目标对象。
//
// v 通常为指针类型，用于接收解码结果。
func Unmarshal(data []byte, v any) error {
	return defaultAPI.Unmarshal(data, v)
}

// MarshalFast 使用性能优先配置进行编码。
func MarshalFast(v any) ([]byte, error) {
	return fastAPI.Marshal(v)
}

// UnmarshalFast 使用性能优先配置进行解码。
func UnmarshalFast(data []byte, v any) error {
	return fastAPI.Unmarshal(data, v)
}

// API 返回默认配置对应的 sonic.API，供需要 Encoder/Decoder 的调用方使用。
func API() sonic.API {
	return defaultAPI
}
