//go:build unix

package backend

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// pollTimeoutMs bounds how long a read blocks before rechecking stop.
const pollTimeoutMs = 100

// readInput reads from in, polling terminal file descriptors so that a
// closed stop channel ends the read promptly.
func readInput(in io.Reader, buf []byte, stop <-chan struct{}) (int, error) {
	f, ok := in.(*os.File)
	if !ok {
		return in.Read(buf)
	}

	fd := int(f.Fd())
	for {
		select {
		case <-stop:
			return 0, nil
		default:
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, pollTimeoutMs)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, err
		}
		if n == 0 {
			continue
		}

		rn, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, err
		}
		if rn == 0 {
			return 0, io.EOF
		}
		return rn, nil
	}
}

// watchResize calls onResize for every SIGWINCH until stop is closed.
func watchResize(stop <-chan struct{}, onResize func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-stop:
				return
			case <-sigCh:
				onResize()
			}
		}
	}()
}
