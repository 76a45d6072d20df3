// Package hmacsig builds and checks the keyed-hash signatures exchanged
// with payment providers and internal callers.
package hmacsig

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"sort"
	"strings"
)

// Algorithm selects the keyed hash a provider signs with.
type Algorithm int

const (
	HMACSHA256 Algorithm = iota
	HMACSHA512
)

func (a Algorithm) newHash() func() hash.Hash {
	if a == HMACSHA512 {
		return sha512.New
	}
	return sha256.New
}

// Pair is one key/value of a canonicalized parameter set.
type Pair struct {
	Key   string
	Value string
}

// Canonicalize sorts params by key in byte order. Equal maps always
// produce identical output.
func Canonicalize(params map[string]string) []Pair {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: params[k]})
	}
	return pairs
}

// JoinPairs renders k=v&k=v with raw, unescaped values.
func JoinPairs(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// OrderedPairs picks the named fields from params in the given literal order.
// Missing fields render as empty values.
func OrderedPairs(params map[string]string, order []string) []Pair {
	pairs := make([]Pair, 0, len(order))
	for _, k := range order {
		pairs = append(pairs, Pair{Key: k, Value: params[k]})
	}
	return pairs
}

// JoinFields concatenates values in order with sep.
func JoinFields(sep string, values ...string) string {
	return strings.Join(values, sep)
}

// Sign returns the lowercase hex HMAC of data.
func Sign(alg Algorithm, secret, data string) string {
	mac := hmac.New(alg.newHash(), []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the HMAC and compares it in constant time. The digest
// may be all-lowercase or all-uppercase hex; mixed case is malformed. An
// empty or malformed digest, or an empty secret, never verifies.
func Verify(alg Algorithm, secret, data, digest string) bool {
	if secret == "" || digest == "" {
		return false
	}
	lower := strings.ToLower(digest)
	if digest != lower && digest != strings.ToUpper(digest) {
		return false
	}
	provided, err := hex.DecodeString(lower)
	if err != nil {
		return false
	}
	mac := hmac.New(alg.newHash(), []byte(secret))
	mac.Write([]byte(data))
	return hmac.Equal(mac.Sum(nil), provided)
}
