// Package structhash computes deterministic structural fingerprints over
// heterogeneous value trees.
//
// Values are modeled as a closed set of tagged variants covering every
// shape that crosses the foreign boundary: fixed-width signed and
// unsigned integers, floats, text, opaque bytes, sequences, mappings,
// optional values, and named records, nested arbitrarily (including
// records used as mapping keys). A recursive fold turns the tree into a
// single 64-bit fingerprint.
//
// The fold is order-sensitive for sequences and order-independent for
// mappings: a mapping's fingerprint is the XOR of its entry fingerprints,
// so key iteration order never matters. An absent optional contributes a
// fixed value distinct from a present-but-empty container. Structurally
// equal records are interchangeable inputs.
//
// The engine is xxhash, a published 64-bit non-cryptographic hash. The
// goal is discriminating coverage, not cryptographic security: identical
// trees always produce identical fingerprints, independent of process,
// platform, or unrelated operations.
package structhash

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Value is one node of a structural value tree.
type Value interface {
	fold(d *xxhash.Digest)
}

// Kind tags are folded ahead of every node so values of different shapes
// never collide trivially (e.g. Int8(1) vs Uint8(1) vs Seq of one).
const (
	tagInt8 byte = iota + 1
	tagInt16
	tagInt32
	tagInt64
	tagUint8
	tagUint16
	tagUint32
	tagUint64
	tagFloat32
	tagFloat64
	tagString
	tagBytes
	tagSeq
	tagMap
	tagMapEntry
	tagNone
	tagSome
	tagRecord
	tagBool
)

func writeTag(d *xxhash.Digest, tag byte) {
	_, _ = d.Write([]byte{tag})
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}

// Int8 is a signed 8-bit integer node.
type Int8 int8

func (v Int8) fold(d *xxhash.Digest) {
	writeTag(d, tagInt8)
	writeUint64(d, uint64(int64(v)))
}

// Int16 is a signed 16-bit integer node.
type Int16 int16

func (v Int16) fold(d *xxhash.Digest) {
	writeTag(d, tagInt16)
	writeUint64(d, uint64(int64(v)))
}

// Int32 is a signed 32-bit integer node.
type Int32 int32

func (v Int32) fold(d *xxhash.Digest) {
	writeTag(d, tagInt32)
	writeUint64(d, uint64(int64(v)))
}

// Int64 is a signed 64-bit integer node.
type Int64 int64

func (v Int64) fold(d *xxhash.Digest) {
	writeTag(d, tagInt64)
	writeUint64(d, uint64(v))
}

// Uint8 is an unsigned 8-bit integer node.
type Uint8 uint8

func (v Uint8) fold(d *xxhash.Digest) {
	writeTag(d, tagUint8)
	writeUint64(d, uint64(v))
}

// Uint16 is an unsigned 16-bit integer node.
type Uint16 uint16

func (v Uint16) fold(d *xxhash.Digest) {
	writeTag(d, tagUint16)
	writeUint64(d, uint64(v))
}

// Uint32 is an unsigned 32-bit integer node.
type Uint32 uint32

func (v Uint32) fold(d *xxhash.Digest) {
	writeTag(d, tagUint32)
	writeUint64(d, uint64(v))
}

// Uint64 is an unsigned 64-bit integer node.
type Uint64 uint64

func (v Uint64) fold(d *xxhash.Digest) {
	writeTag(d, tagUint64)
	writeUint64(d, uint64(v))
}

// Float32 is a 32-bit float node, folded by its IEEE-754 bits.
type Float32 float32

func (v Float32) fold(d *xxhash.Digest) {
	writeTag(d, tagFloat32)
	writeUint64(d, uint64(math.Float32bits(float32(v))))
}

// Float64 is a 64-bit float node, folded by its IEEE-754 bits.
type Float64 float64

func (v Float64) fold(d *xxhash.Digest) {
	writeTag(d, tagFloat64)
	writeUint64(d, math.Float64bits(float64(v)))
}

// Bool is a boolean node.
type Bool bool

func (v Bool) fold(d *xxhash.Digest) {
	writeTag(d, tagBool)
	if v {
		writeUint64(d, 1)
	} else {
		writeUint64(d, 0)
	}
}

// String is a text node.
type String string

func (v String) fold(d *xxhash.Digest) {
	writeTag(d, tagString)
	writeUint64(d, uint64(len(v)))
	_, _ = d.WriteString(string(v))
}

// Bytes is an opaque byte-sequence node.
type Bytes []byte

func (v Bytes) fold(d *xxhash.Digest) {
	writeTag(d, tagBytes)
	writeUint64(d, uint64(len(v)))
	_, _ = d.Write(v)
}

// Seq is an ordered sequence node. Element order is significant.
type Seq []Value

func (v Seq) fold(d *xxhash.Digest) {
	writeTag(d, tagSeq)
	writeUint64(d, uint64(len(v)))
	for _, elem := range v {
		elem.fold(d)
	}
}

// Entry is one key-value pair of a Map node.
type Entry struct {
	Key Value
	Val Value
}

// Map is a mapping node. Entry order is insignificant: the fold combines
// per-entry fingerprints with XOR, so permuting entries never changes the
// result.
type Map []Entry

func (v Map) fold(d *xxhash.Digest) {
	var combined uint64
	for _, e := range v {
		entry := xxhash.New()
		writeTag(entry, tagMapEntry)
		e.Key.fold(entry)
		e.Val.fold(entry)
		combined ^= entry.Sum64()
	}
	writeTag(d, tagMap)
	writeUint64(d, uint64(len(v)))
	writeUint64(d, combined)
}

type none struct{}

func (none) fold(d *xxhash.Digest) {
	writeTag(d, tagNone)
}

// None is the absent optional value. Its contribution is fixed and
// distinct from any present value, including an empty container.
var None Value = none{}

type some struct {
	value Value
}

func (v some) fold(d *xxhash.Digest) {
	writeTag(d, tagSome)
	v.value.fold(d)
}

// Some wraps a present optional value.
func Some(v Value) Value {
	return some{value: v}
}

// Record is a named record node. Two records fold identically iff their
// names and field sequences match, so structurally equal records are
// interchangeable, including as mapping keys.
type Record struct {
	Name   string
	Fields []Value
}

func (v Record) fold(d *xxhash.Digest) {
	writeTag(d, tagRecord)
	writeUint64(d, uint64(len(v.Name)))
	_, _ = d.WriteString(v.Name)
	writeUint64(d, uint64(len(v.Fields)))
	for _, f := range v.Fields {
		f.fold(d)
	}
}

// NewRecord builds a Record node from a name and its fields in declared
// order.
func NewRecord(name string, fields ...Value) Record {
	return Record{Name: name, Fields: fields}
}

// Hash folds the value tree into a 64-bit fingerprint. It is a pure
// function of its input and safe for unsynchronized concurrent use.
func Hash(v Value) uint64 {
	d := xxhash.New()
	v.fold(d)
	return d.Sum64()
}

// HexHash folds the value tree and formats the fingerprint as a
// fixed-width lowercase hex string.
func HexHash(v Value) string {
	return fmt.Sprintf("%016x", Hash(v))
}
