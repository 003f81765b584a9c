package gc

import "unsafe"

// Addr is a word-aligned machine address: a data pointer, an outline
// pointer, or a stack frame pointer. The null address is the zero
// value, matching the "machine zero" null reference of the data
// model.
type Addr uintptr

// wordSize is the size in bytes of a machine word. Every object field,
// outline entry, and frame slot is one word.
const wordSize = 8

// Null is the reference value compiled code uses for an absent
// reference.
const Null Addr = 0

// Add returns the address `words` words after a. A negative count
// moves backward.
func (a Addr) Add(words int64) Addr {
	return Addr(int64(a) + words*wordSize)
}

// Sub returns the address `words` words before a.
func (a Addr) Sub(words int64) Addr {
	return Addr(int64(a) - words*wordSize)
}

func (a Addr) add(words int64) Addr { return a.Add(words) }
func (a Addr) sub(words int64) Addr { return a.Sub(words) }

// ReadWord reads the word stored at a. Exported for
// internal/compilerstub and internal/abi, which build and inspect
// frames and objects on the caller's behalf the way generated code
// would.
func ReadWord(a Addr) uint64 {
	return readWord(a)
}

// WriteWord stores v at a.
func WriteWord(a Addr, v uint64) {
	writeWord(a, v)
}

func readWord(a Addr) uint64 {
	return *(*uint64)(unsafe.Pointer(uintptr(a)))
}

func writeWord(a Addr, v uint64) {
	*(*uint64)(unsafe.Pointer(uintptr(a))) = v
}

func addrToWord(a Addr) uint64 {
	return uint64(uintptr(a))
}

func wordToAddr(v uint64) Addr {
	return Addr(uintptr(v))
}

// AddrToWord and WordToAddr are the exported forms of the
// address/word conversions, for building and reading raw reference
// slots from outside the package.
func AddrToWord(a Addr) uint64 { return addrToWord(a) }
func WordToAddr(v uint64) Addr { return wordToAddr(v) }

// FromBytes returns the address of a byte slice's backing array. The
// caller is responsible for keeping the slice reachable for as long
// as the address is in use — exactly the guarantee OutlineArena and
// the frame builder provide for outlines and frames.
func FromBytes(b []byte) Addr { return Addr(bytesAddr(b)) }

// FromWords returns the address of a uint64 slice's backing array,
// under the same reachability obligation as FromBytes.
func FromWords(w []uint64) Addr {
	if len(w) == 0 {
		panic("gc: FromWords: empty slice has no address")
	}
	return Addr(uintptr(unsafe.Pointer(&w[0])))
}

// copyWords copies sizeBytes bytes from src to dst. Both must be
// word-aligned and sizeBytes must be a word multiple; the caller
// (cleanup) guarantees this from the object-size computation.
func copyWords(dst, src Addr, sizeBytes int64) {
	d := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(dst))), sizeBytes)
	s := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(src))), sizeBytes)
	copy(d, s)
}

// bytesAddr returns the address of a byte slice's backing array. The
// caller is responsible for keeping the slice reachable for as long
// as the address is in use.
func bytesAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}
