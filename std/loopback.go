// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package std

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	kcp "github.com/xtaci/kcp-go/v5"
)

const (
	bufSize      = 4096
	dataShards   = 10
	parityShards = 3
)

// tune applies the fast3 profile with large windows.
func tune(conn *kcp.UDPSession) {
	conn.SetStreamMode(true)
	conn.SetWindowSize(1024, 1024)
	conn.SetNoDelay(1, 10, 2, 1)
}

// sessionCrypt keys method from pass the way SelectBlockCrypt does, but
// reports a short pass or an unknown method instead of falling back.
func sessionCrypt(method string, pass []byte) (kcp.BlockCrypt, error) {
	n, err := KeySize(method)
	if err != nil {
		return nil, err
	}
	if len(pass) > n {
		pass = pass[:n]
	}
	block, err := NewBlock(method, pass)
	if err != nil {
		return nil, err
	}
	return NewBlockCrypt(block), nil
}

// Loopback keys both ends of a KCP session on 127.0.0.1 with method and
// pass, sends payload through it and waits for the echo. It returns the round
// trip time.
func Loopback(method string, pass, payload []byte, timeout time.Duration) (time.Duration, error) {
	serverCrypt, err := sessionCrypt(method, pass)
	if err != nil {
		return 0, errors.Wrap(err, "loopback")
	}
	clientCrypt, err := sessionCrypt(method, pass)
	if err != nil {
		return 0, errors.Wrap(err, "loopback")
	}
	return loopback(serverCrypt, clientCrypt, payload, timeout)
}

func loopback(serverCrypt, clientCrypt kcp.BlockCrypt, payload []byte, timeout time.Duration) (time.Duration, error) {
	if serverCrypt == nil || clientCrypt == nil {
		return 0, errors.New("loopback: session is not encrypted")
	}

	l, err := kcp.ListenWithOptions("127.0.0.1:0", serverCrypt, dataShards, parityShards)
	if err != nil {
		return 0, errors.Wrap(err, "loopback: listen")
	}
	srv := &echoServer{l: l}
	done := make(chan struct{})
	go func() {
		srv.serve()
		close(done)
	}()
	defer func() {
		l.Close()
		<-done
	}()

	conn, err := kcp.DialWithOptions(l.Addr().String(), clientCrypt, dataShards, parityShards)
	if err != nil {
		return 0, errors.Wrap(err, "loopback: dial")
	}
	defer conn.Close()
	tune(conn)
	conn.SetDeadline(time.Now().Add(timeout))

	start := time.Now()
	werr := make(chan error, 1)
	go func() {
		_, err := conn.Write(payload)
		werr <- err
	}()

	got := make([]byte, len(payload))
	if _, err := io.ReadFull(conn, got); err != nil {
		return 0, errors.Wrap(err, "loopback: read echo")
	}
	if err := <-werr; err != nil {
		return 0, errors.Wrap(err, "loopback: write")
	}
	if !bytes.Equal(got, payload) {
		return 0, errors.New("loopback: echo differs from payload")
	}
	return time.Since(start), nil
}

// echoServer writes back what every accepted session reads.
type echoServer struct {
	l     *kcp.Listener
	conns []*kcp.UDPSession
	wg    sync.WaitGroup
}

// serve accepts sessions until the listener is closed, then closes them all
// and waits for their copy loops to exit.
func (s *echoServer) serve() {
	defer s.wg.Wait()
	defer func() {
		for _, conn := range s.conns {
			conn.Close()
		}
	}()

	for {
		conn, err := s.l.AcceptKCP()
		if err != nil {
			return
		}
		tune(conn)
		s.conns = append(s.conns, conn)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			buf := make([]byte, bufSize)
			io.CopyBuffer(conn, conn, buf)
		}()
	}
}
