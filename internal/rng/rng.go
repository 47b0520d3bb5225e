// Package rng implements the provably-fair, commit-reveal pseudo-random
// stream that backs the simulation core. A Stream is constructed from a
// secret server seed and a public client seed; every draw is a pure
// deterministic function of (server seed, client seed, nonce), so two
// streams built from identical seeds emit identical sequences.
package rng

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// MinServerSeedLen is the minimum accepted length, in hex characters, of a
// server seed (spec: "server_seed length >= 16 hex chars").
const MinServerSeedLen = 16

// Stream is a seeded, nonce-advancing uniform source. It never blocks.
// Every draw computes a fresh HMAC, and NextInt and NextWeighted panic on
// caller invariant violations.
type Stream struct {
	serverSeed []byte
	clientSeed string
	nonce      uint64

	// Nothing is cached across gaussian calls: each NextGaussian call spends
	// its own uniform pair (two nonces, plus one per rejected zero draw), so
	// every draw is replayable from the nonce alone. See NextGaussian.
}

// New constructs a Stream from a raw server seed string and a client seed.
// It does not validate seed formatting; callers validate at the
// simulate_game boundary (see internal/validation-equivalent checks in
// pkg/validation) and construct the Stream only once inputs are accepted.
func New(serverSeed, clientSeed string) *Stream {
	return &Stream{
		serverSeed: []byte(serverSeed),
		clientSeed: clientSeed,
		nonce:      0,
	}
}

// ServerSeedHash returns SHA-256(server_seed) as 64 lowercase hex characters.
// This is the commitment published before play.
func (s *Stream) ServerSeedHash() string {
	sum := sha256.Sum256(s.serverSeed)
	return hex.EncodeToString(sum[:])
}

// Nonce returns the number of draws consumed so far.
func (s *Stream) Nonce() uint64 {
	return s.nonce
}

// digest derives 32 bytes of keyed randomness for the current nonce and
// advances the nonce by one. It is the single point where entropy is
// produced; every exported draw method is built on top of it.
func (s *Stream) digest() []byte {
	mac := hmac.New(sha256.New, s.serverSeed)
	mac.Write([]byte(s.clientSeed))
	mac.Write([]byte{'-'})
	var nonceBuf [8]byte
	binary.BigEndian.PutUint64(nonceBuf[:], s.nonce)
	mac.Write(nonceBuf[:])
	s.nonce++
	return mac.Sum(nil)
}

// NextUniform returns a value in [0, 1) derived deterministically from
// (server_seed, client_seed, nonce) and advances the nonce by one.
func (s *Stream) NextUniform() float64 {
	d := s.digest()
	// Use the top 53 bits for full float64 mantissa precision.
	v := binary.BigEndian.Uint64(d[:8]) >> 11
	return float64(v) / float64(1<<53)
}

// NextInt returns a uniformly distributed integer in [lo, hi], inclusive.
// Panics if hi < lo, which is an invariant violation by the caller, not an
// in-play failure.
func (s *Stream) NextInt(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: NextInt bounds inverted: lo=%d hi=%d", lo, hi))
	}
	span := hi - lo + 1
	return lo + int(s.NextUniform()*float64(span))
}

// Choice is one weighted option in a NextWeighted table.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// NextWeighted samples one value from choices, weighted by their Weight
// field. Ties in cumulative probability resolve to the first-listed
// option (spec: "tie-breaks go to the first-listed option"). Panics on an
// empty or all-zero-weight table, which is a caller invariant violation.
func NextWeighted[T any](s *Stream, choices []Choice[T]) T {
	var total float64
	for _, c := range choices {
		total += c.Weight
	}
	if total <= 0 {
		panic("rng: NextWeighted requires a positive total weight")
	}
	r := s.NextUniform() * total
	var cumulative float64
	for _, c := range choices {
		cumulative += c.Weight
		if r < cumulative {
			return c.Value
		}
	}
	// Floating point rounding can leave r just past the last cumulative
	// boundary; fall back to the last option rather than a zero value.
	return choices[len(choices)-1].Value
}

// NextShuffle performs an in-place Fisher-Yates shuffle of list using
// NextInt as the source of randomness.
func NextShuffle[T any](s *Stream, list []T) {
	for i := len(list) - 1; i > 0; i-- {
		j := s.NextInt(0, i)
		list[i], list[j] = list[j], list[i]
	}
}

// NextGaussian draws one sample from a normal distribution with the given
// mean and standard deviation using the Box-Muller transform. Box-Muller
// naturally produces two independent draws per pair of uniforms; this
// method spends two nonces and returns only the first value so that the
// total nonce count stays a pure function of the number of gaussian draws
// requested, never of an internal cache.
func (s *Stream) NextGaussian(mean, sd float64) float64 {
	// Avoid u1 == 0, which would make log(u1) diverge.
	var u1 float64
	for {
		u1 = s.NextUniform()
		if u1 > 0 {
			break
		}
	}
	u2 := s.NextUniform()
	z0 := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + sd*z0
}

// NextTruncatedGaussian draws from NextGaussian and clamps the result to
// [lo, hi]. Used throughout internal/resolver for yardage sampling.
func (s *Stream) NextTruncatedGaussian(mean, sd, lo, hi float64) float64 {
	v := s.NextGaussian(mean, sd)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NextBool returns true with the given probability in [0, 1].
func (s *Stream) NextBool(probability float64) bool {
	return s.NextUniform() < probability
}
