// Package snapshot 世界状态快照的编码、压缩与校验
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/models"
)

// 压缩方式
const (
	CompressionZstd = "zstd"
	CompressionNone = "none"
)

// Encoded 编码后的快照
type Encoded struct {
	Data        []byte
	Compression string
	Hash        string // 未压缩 JSON 的 SHA-256 十六进制
}

// Codec 快照编解码器，可并发使用
type Codec struct {
	compression string
	enc         *zstd.Encoder
	dec         *zstd.Decoder
}

// NewCodec 按配置创建编解码器
func NewCodec(cfg config.SnapshotConfig) (*Codec, error) {
	c := &Codec{compression: cfg.Compression}
	if c.compression == "" {
		c.compression = CompressionZstd
	}

	level := zstd.SpeedDefault
	if cfg.Level != "" {
		ok, l := zstd.EncoderLevelFromString(cfg.Level)
		if !ok {
			return nil, fmt.Errorf("unknown zstd level %q", cfg.Level)
		}
		level = l
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	c.enc = enc
	c.dec = dec
	return c, nil
}

// Close 释放编解码器资源
func (c *Codec) Close() {
	c.enc.Close()
	c.dec.Close()
}

// Encode 序列化、计算哈希并按配置压缩
func (c *Codec) Encode(snap *models.WorldSnapshot) (*Encoded, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	out := &Encoded{
		Compression: c.compression,
		Hash:        Hash(raw),
	}
	switch c.compression {
	case CompressionNone:
		out.Data = raw
	case CompressionZstd:
		out.Data = c.enc.EncodeAll(raw, make([]byte, 0, len(raw)/2))
	default:
		return nil, fmt.Errorf("unsupported compression %q", c.compression)
	}
	return out, nil
}

// Decode 解压并反序列化，compression 取自存储时记录的方式
func (c *Codec) Decode(data []byte, compression string) (*models.WorldSnapshot, error) {
	raw, err := c.decompress(data, compression)
	if err != nil {
		return nil, err
	}
	snap := &models.WorldSnapshot{}
	if err := json.Unmarshal(raw, snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}

// Verify 校验存储的快照与哈希是否一致
func (c *Codec) Verify(data []byte, compression, hash string) (bool, error) {
	raw, err := c.decompress(data, compression)
	if err != nil {
		return false, err
	}
	return Hash(raw) == hash, nil
}

func (c *Codec) decompress(data []byte, compression string) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil
	case CompressionZstd, "":
		raw, err := c.dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decode: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported compression %q", compression)
	}
}

// Hash 计算 SHA-256 十六进制摘要
func Hash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
