//go:build !unix

package backend

import "io"

func readInput(in io.Reader, buf []byte, _ <-chan struct{}) (int, error) {
	return in.Read(buf)
}

func watchResize(<-chan struct{}, func()) {}
