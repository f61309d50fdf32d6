package auxv

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadString(t *testing.T) {
	buf := append([]byte("x86_64"), 0)
	s, err := ReadString(uintptr(unsafe.Pointer(&buf[0])))
	require.NoError(t, err)
	assert.Equal(t, "x86_64", s)

	empty := []byte{0}
	s, err = ReadString(uintptr(unsafe.Pointer(&empty[0])))
	require.NoError(t, err)
	assert.Equal(t, "", s)

	runtime.KeepAlive(buf)
	runtime.KeepAlive(empty)
}

func TestReadStringUnterminated(t *testing.T) {
	buf := make([]byte, maxString)
	for i := range buf {
		buf[i] = 'a'
	}
	_, err := ReadString(uintptr(unsafe.Pointer(&buf[0])))

	var scanErr *ScanLimitError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, "string", scanErr.Region)

	runtime.KeepAlive(buf)
}

func TestReadRandom(t *testing.T) {
	var buf [randomLen]byte
	for i := range buf {
		buf[i] = byte(i * 3)
	}
	got := ReadRandom(uintptr(unsafe.Pointer(&buf[0])))
	assert.Equal(t, buf, got)

	runtime.KeepAlive(&buf)
}
