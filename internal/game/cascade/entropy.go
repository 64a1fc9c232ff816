package cascade

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"sync/atomic"
)

// RandomGenerator 随机数生成器接口
type RandomGenerator interface {
	// Next 生成[0,1)区间的随机数
	Next() float64

	// NextInt 生成[min,max]闭区间的随机整数
	NextInt(min, max int) int

	// CallCount 返回创建以来累计的熵抽取次数（用于审计与测试）
	CallCount() uint64
}

// CryptoRandomGenerator 加密安全的随机数生成器。
// 真实投注只允许使用该熵源。
type CryptoRandomGenerator struct {
	calls atomic.Uint64
}

// NewCryptoRandomGenerator 创建加密随机数生成器
func NewCryptoRandomGenerator() *CryptoRandomGenerator {
	return &CryptoRandomGenerator{}
}

// Next 生成下一个随机数 [0,1)
func (g *CryptoRandomGenerator) Next() float64 {
	g.calls.Add(1)
	max := big.NewInt(1 << 53)
	n, _ := rand.Int(rand.Reader, max)
	return float64(n.Int64()) / float64(int64(1<<53))
}

// NextInt 生成[min,max]闭区间内的随机整数
func (g *CryptoRandomGenerator) NextInt(min, max int) int {
	if min >= max {
		return min
	}
	g.calls.Add(1)
	diff := big.NewInt(int64(max - min + 1))
	n, _ := rand.Int(rand.Reader, diff)
	return min + int(n.Int64())
}

// CallCount 返回累计熵抽取次数
func (g *CryptoRandomGenerator) CallCount() uint64 {
	return g.calls.Load()
}

// SeededStream 确定性随机数流：同一seed字符串产生完全相同的序列。
// 基于HMAC-SHA256按轮次派生字节流，每个随机数消耗4字节。
// 仅用于回放诊断与测试，严禁支撑真实投注结果。
// 每个逻辑上独立的抽取位置需要各自派生的seed，不得跨用途复用同一个流。
type SeededStream struct {
	seed   string
	round  uint64
	cursor int
	buffer [sha256.Size]byte
	calls  uint64
}

// NewSeededStream 创建种子流
func NewSeededStream(seed string) *SeededStream {
	return &SeededStream{
		seed:   seed,
		cursor: sha256.Size, // 首次取字节时填充缓冲区
	}
}

// nextByte 取出流中的下一个字节
func (s *SeededStream) nextByte() byte {
	if s.cursor >= sha256.Size {
		h := hmac.New(sha256.New, []byte(s.seed))
		var msg [8]byte
		binary.BigEndian.PutUint64(msg[:], s.round)
		h.Write(msg[:])
		copy(s.buffer[:], h.Sum(nil))
		s.round++
		s.cursor = 0
	}
	b := s.buffer[s.cursor]
	s.cursor++
	return b
}

// Next 生成[0,1)区间的随机数
func (s *SeededStream) Next() float64 {
	s.calls++
	b0 := s.nextByte()
	b1 := s.nextByte()
	b2 := s.nextByte()
	b3 := s.nextByte()
	return float64(b0)/256.0 +
		float64(b1)/(256.0*256.0) +
		float64(b2)/(256.0*256.0*256.0) +
		float64(b3)/(256.0*256.0*256.0*256.0)
}

// NextInt 生成[min,max]闭区间内的随机整数
func (s *SeededStream) NextInt(min, max int) int {
	if min >= max {
		return min
	}
	return min + positionFromFloat(s.Next(), max-min+1)
}

// CallCount 返回累计抽取次数
func (s *SeededStream) CallCount() uint64 {
	return s.calls
}

// positionFromFloat 将[0,1)随机数映射为[0,n)整数。
// 必须保持"乘后向零取整"的语义：统计校验依赖这一舍入规则，
// 改用其他舍入方式会改变经验分布。
func positionFromFloat(u float64, n int) int {
	p := int(u * float64(n))
	if p >= n {
		p = n - 1
	}
	return p
}
