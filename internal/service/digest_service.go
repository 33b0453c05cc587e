package service

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"

	"golang.org/x/crypto/sha3"
)

// DigestServiceImpl computes the protocol's deterministic identifiers with
// Keccak-256. Every variable-length field is length-prefixed before hashing
// so no two distinct inputs can collide by concatenation.
type DigestServiceImpl struct{}

// NewDigestService creates a DigestServiceImpl.
func NewDigestService() *DigestServiceImpl {
	return &DigestServiceImpl{}
}

// StrategyHash binds (lp, strategyContract, strategyData) into one identity.
func (d *DigestServiceImpl) StrategyHash(lp, strategyContract domain.Address, strategyData []byte) domain.Hash {
	h := sha3.NewLegacyKeccak256()
	writeBytes(h, []byte(lp))
	writeBytes(h, []byte(strategyContract))
	writeBytes(h, strategyData)
	return encodeHash(h.Sum(nil))
}

// CommitHash binds every intent parameter plus the blinding salt. Flipping a
// single bit of any field produces an unrelated digest.
func (d *DigestServiceImpl) CommitHash(params domain.IntentParams) domain.Hash {
	h := sha3.NewLegacyKeccak256()
	writeBytes(h, []byte(params.TokenIn))
	writeBytes(h, []byte(params.TokenOut))
	writeInt64(h, params.AmountIn)
	writeInt64(h, params.MinAmountOut)
	writeInt64(h, params.MaxFee)
	writeBool(h, params.AllowPartialFill)
	writeInt64(h, params.Deadline)
	writeBytes(h, []byte(params.Salt))
	return encodeHash(h.Sum(nil))
}

// SolutionHash binds the solver address and batch ID into the solution
// identity so a solution cannot be replayed by another solver or batch.
func (d *DigestServiceImpl) SolutionHash(solver domain.Address, batchID uint64, executionData []byte, totalUserSurplus, solverBid int64) domain.Hash {
	h := sha3.NewLegacyKeccak256()
	writeBytes(h, []byte(solver))
	writeUint64(h, batchID)
	writeBytes(h, executionData)
	writeInt64(h, totalUserSurplus)
	writeInt64(h, solverBid)
	return encodeHash(h.Sum(nil))
}

var _ ports.DigestService = (*DigestServiceImpl)(nil)

func writeBytes(h interface{ Write([]byte) (int, error) }, b []byte) {
	writeUint64(h, uint64(len(b)))
	h.Write(b) //nolint:errcheck
}

func writeInt64(h interface{ Write([]byte) (int, error) }, v int64) {
	writeUint64(h, uint64(v))
}

func writeUint64(h interface{ Write([]byte) (int, error) }, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:]) //nolint:errcheck
}

func writeBool(h interface{ Write([]byte) (int, error) }, v bool) {
	b := byte(0)
	if v {
		b = 1
	}
	h.Write([]byte{b}) //nolint:errcheck
}

func encodeHash(sum []byte) domain.Hash {
	return domain.Hash("0x" + hex.EncodeToString(sum))
}
