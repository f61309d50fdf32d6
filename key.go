package auxv

import "fmt"

// Key identifies the meaning of an auxiliary vector entry. The integer
// assignments are fixed by the kernel ABI; see linux/auxvec.h and the
// architecture supplements of the System V ABI.
type Key uintptr

const (
	// Null marks the end of the vector. Its value word is undefined
	// (commonly zero) and the entry is never yielded by iteration.
	Null Key = 0
	// Ignore carries no meaning.
	Ignore Key = 1
	// ExecFD is the file descriptor the program was loaded from.
	ExecFD Key = 2
	// ProgramHeaders points at the program header table.
	ProgramHeaders Key = 3
	// ProgramHeaderSize is the size of one program header entry in bytes.
	ProgramHeaderSize Key = 4
	// ProgramHeaderCount is the number of program headers.
	ProgramHeaderCount Key = 5
	// PageSize is the system page size in bytes.
	PageSize Key = 6
	// InterpreterBase points at the base of the interpreter (dynamic linker).
	InterpreterBase Key = 7
	// Flags holds loader flags.
	Flags Key = 8
	// Entrypoint is the address the interpreter transfers control to.
	Entrypoint Key = 9
	// NotELF is non-zero when the program is in a format other than ELF.
	NotELF Key = 10
	// UID is the real user id at exec time.
	UID Key = 11
	// EUID is the effective user id at exec time.
	EUID Key = 12
	// GID is the real group id at exec time.
	GID Key = 13
	// EGID is the effective group id at exec time.
	EGID Key = 14
	// Platform points at a string naming the target platform.
	Platform Key = 15
	// HardwareCap is an architecture-dependent capability bitmask.
	HardwareCap Key = 16
	// ClockTick is the frequency of times(2).
	ClockTick Key = 17
	// FPUControlWord is the FPU control word in use.
	FPUControlWord Key = 18
	// DataCacheBlockSize is the data cache block size in bytes.
	DataCacheBlockSize Key = 19
	// InstructionCacheBlockSize is the instruction cache block size in bytes.
	InstructionCacheBlockSize Key = 20
	// UnifiedCacheBlockSize is the unified cache block size in bytes.
	UnifiedCacheBlockSize Key = 21
	// IgnorePPC is a PowerPC quirk the kernel uses to steer vector layout.
	IgnorePPC Key = 22
	// Secure is non-zero when exec was setuid or similarly privileged.
	Secure Key = 23
	// BasePlatform points at a string naming the real platform.
	BasePlatform Key = 24
	// Random points at 16 bytes of kernel-supplied randomness.
	Random Key = 25
	// HardwareCap2 extends HardwareCap.
	HardwareCap2 Key = 26
	// RSeqFeatureSize is the rseq supported feature size.
	RSeqFeatureSize Key = 27
	// RSeqAlign is the rseq allocation alignment.
	RSeqAlign Key = 28
	// HardwareCap3 extends HardwareCap.
	HardwareCap3 Key = 29
	// HardwareCap4 extends HardwareCap.
	HardwareCap4 Key = 30
	// ExecFilename points at the NUL-terminated filename of the executable.
	ExecFilename Key = 31
	// SysInfo points at the global system call page.
	SysInfo Key = 32
	// SysInfoEHdr points at the ELF header of the vDSO.
	SysInfoEHdr Key = 33

	// Cache shapes: bits 0-3 hold associativity, bits 4-7 log2 of the line
	// size; the remaining bits hold the cache size.
	L1ICacheShape Key = 34
	L1DCacheShape Key = 35
	L2CacheShape  Key = 36
	L3CacheShape  Key = 37

	// Cache sizes and geometries, with more room than the shape keys.
	// Geometry packs line size in the low 16 bits and associativity in the
	// next 16.
	L1ICacheSize     Key = 40
	L1ICacheGeometry Key = 41
	L1DCacheSize     Key = 42
	L1DCacheGeometry Key = 43
	L2CacheSize      Key = 44
	L2CacheGeometry  Key = 45
	L3CacheSize      Key = 46
	L3CacheGeometry  Key = 47

	// MinSignalStackSize is the stack space needed for signal delivery.
	MinSignalStackSize Key = 51
)

// ValueKind declares how an entry's value word is to be interpreted.
// Values of KindAddress point into the process address space; following
// such a pointer is a separate, explicit step (see ReadString and
// ReadRandom), never something decoding does on its own.
type ValueKind int

const (
	KindUnknown ValueKind = iota // key not in the enumeration
	KindInteger                  // plain integer: sizes, counts, ids, frequencies
	KindAddress                  // pointer into the process address space
	KindFlags                    // bitmask
	KindBoolean                  // zero or non-zero
	KindIgnored                  // value carries no meaning
)

func (k ValueKind) String() string {
	return [...]string{"unknown", "integer", "address", "flags", "boolean", "ignored"}[k]
}

type keyInfo struct {
	name string
	kind ValueKind
}

var keys = map[Key]keyInfo{
	Null:                      {"AT_NULL", KindIgnored},
	Ignore:                    {"AT_IGNORE", KindIgnored},
	ExecFD:                    {"AT_EXECFD", KindInteger},
	ProgramHeaders:            {"AT_PHDR", KindAddress},
	ProgramHeaderSize:         {"AT_PHENT", KindInteger},
	ProgramHeaderCount:        {"AT_PHNUM", KindInteger},
	PageSize:                  {"AT_PAGESZ", KindInteger},
	InterpreterBase:           {"AT_BASE", KindAddress},
	Flags:                     {"AT_FLAGS", KindFlags},
	Entrypoint:                {"AT_ENTRY", KindAddress},
	NotELF:                    {"AT_NOTELF", KindBoolean},
	UID:                       {"AT_UID", KindInteger},
	EUID:                      {"AT_EUID", KindInteger},
	GID:                       {"AT_GID", KindInteger},
	EGID:                      {"AT_EGID", KindInteger},
	Platform:                  {"AT_PLATFORM", KindAddress},
	HardwareCap:               {"AT_HWCAP", KindFlags},
	ClockTick:                 {"AT_CLKTCK", KindInteger},
	FPUControlWord:            {"AT_FPUCW", KindInteger},
	DataCacheBlockSize:        {"AT_DCACHEBSIZE", KindInteger},
	InstructionCacheBlockSize: {"AT_ICACHEBSIZE", KindInteger},
	UnifiedCacheBlockSize:     {"AT_UCACHEBSIZE", KindInteger},
	IgnorePPC:                 {"AT_IGNOREPPC", KindIgnored},
	Secure:                    {"AT_SECURE", KindBoolean},
	BasePlatform:              {"AT_BASE_PLATFORM", KindAddress},
	Random:                    {"AT_RANDOM", KindAddress},
	HardwareCap2:              {"AT_HWCAP2", KindFlags},
	RSeqFeatureSize:           {"AT_RSEQ_FEATURE_SIZE", KindInteger},
	RSeqAlign:                 {"AT_RSEQ_ALIGN", KindInteger},
	HardwareCap3:              {"AT_HWCAP3", KindFlags},
	HardwareCap4:              {"AT_HWCAP4", KindFlags},
	ExecFilename:              {"AT_EXECFN", KindAddress},
	SysInfo:                   {"AT_SYSINFO", KindAddress},
	SysInfoEHdr:               {"AT_SYSINFO_EHDR", KindAddress},
	L1ICacheShape:             {"AT_L1I_CACHESHAPE", KindFlags},
	L1DCacheShape:             {"AT_L1D_CACHESHAPE", KindFlags},
	L2CacheShape:              {"AT_L2_CACHESHAPE", KindFlags},
	L3CacheShape:              {"AT_L3_CACHESHAPE", KindFlags},
	L1ICacheSize:              {"AT_L1I_CACHESIZE", KindInteger},
	L1ICacheGeometry:          {"AT_L1I_CACHEGEOMETRY", KindFlags},
	L1DCacheSize:              {"AT_L1D_CACHESIZE", KindInteger},
	L1DCacheGeometry:          {"AT_L1D_CACHEGEOMETRY", KindFlags},
	L2CacheSize:               {"AT_L2_CACHESIZE", KindInteger},
	L2CacheGeometry:           {"AT_L2_CACHEGEOMETRY", KindFlags},
	L3CacheSize:               {"AT_L3_CACHESIZE", KindInteger},
	L3CacheGeometry:           {"AT_L3_CACHEGEOMETRY", KindFlags},
	MinSignalStackSize:        {"AT_MINSIGSTKSZ", KindInteger},
}

// Known reports whether k is part of the documented enumeration. Unknown
// keys still decode and iterate normally; kernels add keys over time and
// an unrecognized key is data, not an error.
func (k Key) Known() bool {
	_, ok := keys[k]
	return ok
}

// Kind returns the declared interpretation of the key's value word, or
// KindUnknown for keys outside the enumeration.
func (k Key) Kind() ValueKind {
	return keys[k].kind
}

// String returns the canonical AT_* spelling of the key. Keys outside the
// enumeration keep their raw number: AT_???(0x2a).
func (k Key) String() string {
	if info, ok := keys[k]; ok {
		return info.name
	}
	return fmt.Sprintf("AT_???(%#x)", uintptr(k))
}
