package lsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// maxMessageSize bounds a single payload.
const maxMessageSize = 64 << 20

var (
	errMissingContentLength = errors.New("missing Content-Length header")
	errUnsupportedCharset   = errors.New("unsupported charset, only utf-8 is accepted")
)

// conn is the stdio transport: Content-Length framed JSON payloads.
// Reads happen on the server loop only; writes may come from anywhere.
type conn struct {
	in *bufio.Reader

	mu  sync.Mutex
	out *bufio.Writer
}

func newConn(in io.Reader, out io.Writer) *conn {
	return &conn{in: bufio.NewReader(in), out: bufio.NewWriter(out)}
}

func (c *conn) read() ([]byte, error) {
	return readMessage(c.in)
}

// write frames payload and flushes it immediately.
func (c *conn) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := writeMessage(c.out, payload); err != nil {
		return err
	}
	return c.out.Flush()
}

type header struct {
	length      int
	contentType string
}

// readHeader consumes the header block up to the blank line.
func readHeader(r *bufio.Reader) (header, error) {
	h := header{length: -1}
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return h, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return h, nil
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "content-length":
			n, err := strconv.Atoi(value)
			if err != nil {
				return h, fmt.Errorf("invalid Content-Length %q: %w", value, err)
			}
			if n < 0 || n > maxMessageSize {
				return h, fmt.Errorf("Content-Length %d out of range", n)
			}
			h.length = n
		case "content-type":
			h.contentType = value
		}
	}
}

// checkCharset accepts a missing charset (utf-8 is the default) and the
// "utf8" spelling some old clients send.
func checkCharset(contentType string) error {
	for _, param := range strings.Split(contentType, ";")[1:] {
		key, val, _ := strings.Cut(strings.TrimSpace(param), "=")
		if !strings.EqualFold(key, "charset") {
			continue
		}
		switch strings.ToLower(strings.Trim(val, `"`)) {
		case "utf-8", "utf8":
			return nil
		default:
			return fmt.Errorf("%w: %s", errUnsupportedCharset, val)
		}
	}
	return nil
}

func readMessage(r *bufio.Reader) ([]byte, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if h.length < 0 {
		return nil, errMissingContentLength
	}
	if err := checkCharset(h.contentType); err != nil {
		return nil, err
	}
	payload := make([]byte, h.length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func writeMessage(w io.Writer, payload []byte) error {
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(payload)); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}
