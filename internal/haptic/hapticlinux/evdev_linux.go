//go:build linux

package hapticlinux

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	evFF     = 0x15
	ffRumble = 0x50
	ffMax    = 0x7f

	ptrSize = 4 << (^uintptr(0) >> 63)

	iocWrite = 1
	iocRead  = 2
)

// ffEffect mirrors struct ff_effect from linux/input.h. The union is sized
// for ff_periodic_effect, its largest member.
type ffEffect struct {
	Type            uint16
	ID              int16
	Direction       uint16
	TriggerButton   uint16
	TriggerInterval uint16
	ReplayLength    uint16
	ReplayDelay     uint16
	_               [2]byte
	U               [24 + ptrSize]byte
}

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<30 | size<<16 | typ<<8 | nr
}

var (
	eviocsff    = ioc(iocWrite, 'E', 0x80, unsafe.Sizeof(ffEffect{}))
	eviocrmff   = ioc(iocWrite, 'E', 0x81, unsafe.Sizeof(int32(0)))
	eviocgbitFF = ioc(iocRead, 'E', 0x20+evFF, (ffMax+1)/8)
)

// rumbleEffect builds an FF_RUMBLE upload request.
func rumbleEffect(strong, weak uint16, lengthMS uint16) ffEffect {
	e := ffEffect{Type: ffRumble, ID: -1, ReplayLength: lengthMS}
	binary.NativeEndian.PutUint16(e.U[0:], strong)
	binary.NativeEndian.PutUint16(e.U[2:], weak)
	return e
}

// playEvent encodes a struct input_event that starts effect id once.
func playEvent(id int16) []byte {
	b := make([]byte, 2*ptrSize+8)
	off := 2 * ptrSize // struct timeval is ignored by the kernel on write
	binary.NativeEndian.PutUint16(b[off:], evFF)
	binary.NativeEndian.PutUint16(b[off+2:], uint16(id))
	binary.NativeEndian.PutUint32(b[off+4:], 1)
	return b
}

// device is the subset of an evdev node the pulser needs.
type device interface {
	supportsRumble() bool
	uploadEffect(e *ffEffect) error
	removeEffect(id int16) error
	write(b []byte) error
	close() error
}

type evdevDevice struct {
	fd int
}

func openEvdev(path string) (*evdevDevice, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	return &evdevDevice{fd: fd}, nil
}

func (d *evdevDevice) supportsRumble() bool {
	var bits [(ffMax + 1) / 8]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), eviocgbitFF, uintptr(unsafe.Pointer(&bits[0])))
	if errno != 0 {
		return false
	}
	return bits[ffRumble/8]&(1<<(ffRumble%8)) != 0
}

func (d *evdevDevice) uploadEffect(e *ffEffect) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), eviocsff, uintptr(unsafe.Pointer(e)))
	if errno != 0 {
		return errno
	}
	return nil
}

func (d *evdevDevice) removeEffect(id int16) error {
	return unix.IoctlSetInt(d.fd, uint(eviocrmff), int(id))
}

func (d *evdevDevice) write(b []byte) error {
	n, err := unix.Write(d.fd, b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return fmt.Errorf("short write of input event: %w", io.ErrShortWrite)
	}
	return nil
}

func (d *evdevDevice) close() error {
	return unix.Close(d.fd)
}
