package auxv

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	// (AT_PAGESZ, 4096), (AT_FLAGS, 0), terminator.
	buf := []uintptr{uintptr(PageSize), 4096, uintptr(Flags), 0, 0, 0}
	v := At(unsafe.Pointer(&buf[0]))

	got, err := v.Entries()
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, PageSize, got[0].Key)
	assert.Equal(t, uintptr(4096), got[0].Value)
	assert.Equal(t, KindInteger, got[0].Key.Kind())
	assert.Equal(t, Flags, got[1].Key)
	assert.Equal(t, uintptr(0), got[1].Value)

	val, ok := v.Lookup(PageSize)
	assert.True(t, ok)
	assert.Equal(t, uintptr(4096), val)

	_, ok = v.Lookup(Random)
	assert.False(t, ok)

	runtime.KeepAlive(buf)
}

func TestIterationIdempotent(t *testing.T) {
	buf := []uintptr{uintptr(PageSize), 4096, uintptr(UID), 1000, uintptr(Secure), 0, 0, 0}
	v := At(unsafe.Pointer(&buf[0]))

	first, err := v.Entries()
	require.NoError(t, err)
	second, err := v.Entries()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Abandoning an iteration must not affect the next one.
	for range v.All() {
		break
	}
	require.NoError(t, v.Err())
	third, err := v.Entries()
	require.NoError(t, err)
	assert.Equal(t, first, third)

	runtime.KeepAlive(buf)
}

func TestTerminatorExcluded(t *testing.T) {
	buf := []uintptr{uintptr(PageSize), 4096, 0, 0}
	v := At(unsafe.Pointer(&buf[0]))
	for e := range v.All() {
		assert.NotEqual(t, Null, e.Key)
	}
	require.NoError(t, v.Err())

	empty := []uintptr{0, 0}
	got, err := At(unsafe.Pointer(&empty[0])).Entries()
	require.NoError(t, err)
	assert.Empty(t, got)

	runtime.KeepAlive(buf)
	runtime.KeepAlive(empty)
}

func TestUnknownKeyTolerated(t *testing.T) {
	buf := []uintptr{
		uintptr(PageSize), 4096,
		0x5005, 7, // not in the enumeration
		uintptr(Secure), 1,
		0, 0,
	}
	v := At(unsafe.Pointer(&buf[0]))

	got, err := v.Entries()
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.False(t, got[1].Key.Known())
	assert.Equal(t, Key(0x5005), got[1].Key)
	assert.Equal(t, uintptr(7), got[1].Value)
	assert.Equal(t, KindUnknown, got[1].Key.Kind())

	// Decoding continued past the unknown entry.
	assert.Equal(t, Secure, got[2].Key)

	runtime.KeepAlive(buf)
}

func TestScanLimit(t *testing.T) {
	// No terminator anywhere inside the scan bound.
	buf := make([]uintptr, 2*(maxEntries+1))
	for i := range buf {
		buf[i] = 1
	}
	v := At(unsafe.Pointer(&buf[0]))

	_, err := v.Entries()
	var scanErr *ScanLimitError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, "auxv", scanErr.Region)
	assert.Equal(t, uintptr(maxEntries)*entrySize, scanErr.Scanned)

	n := 0
	for range v.All() {
		n++
	}
	assert.Equal(t, maxEntries, n)
	assert.Error(t, v.Err())

	runtime.KeepAlive(buf)
}

func TestMutateRoundTrip(t *testing.T) {
	buf := []uintptr{
		uintptr(PageSize), 4096,
		uintptr(Secure), 1,
		uintptr(ClockTick), 100,
		0, 0,
	}
	v := At(unsafe.Pointer(&buf[0]))

	before, err := v.Entries()
	require.NoError(t, err)
	require.Len(t, before, 3)

	require.NoError(t, v.SetValue(before[1], 0))

	after, err := v.Entries()
	require.NoError(t, err)
	require.Len(t, after, 3)

	assert.Equal(t, Secure, after[1].Key)
	assert.Equal(t, uintptr(0), after[1].Value)

	// Every other entry is untouched.
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])

	runtime.KeepAlive(buf)
}

func TestMutateRejectsForeignHandle(t *testing.T) {
	buf1 := []uintptr{uintptr(PageSize), 4096, 0, 0}
	buf2 := []uintptr{uintptr(PageSize), 8192, 0, 0}
	v1 := At(unsafe.Pointer(&buf1[0]))
	v2 := At(unsafe.Pointer(&buf2[0]))

	foreign, err := v2.Entries()
	require.NoError(t, err)

	err = v1.SetValue(foreign[0], 1)
	var target *MutationTargetError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, foreign[0].addr, target.Addr)

	// The zero Entry carries no address at all.
	err = v1.SetValue(Entry{}, 1)
	require.ErrorAs(t, err, &target)

	// A hand-built handle for the terminator slot is out of bounds too.
	err = v1.SetValue(Entry{addr: v1.end}, 1)
	require.ErrorAs(t, err, &target)

	// v1 itself is unchanged.
	val, ok := v1.Lookup(PageSize)
	require.True(t, ok)
	assert.Equal(t, uintptr(4096), val)

	runtime.KeepAlive(buf1)
	runtime.KeepAlive(buf2)
}
