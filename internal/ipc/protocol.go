package ipc

import (
	"fmt"
	"io"

	"nitpick/internal/arena"
)

// Delimiter terminates the request payload and the response stream.
const Delimiter byte = 0x00

// WriteRequest encodes one request frame onto w: the cwd line, one line per
// recognized option in fixed order, a blank line, the payload streamed through
// copyBuf, and the trailing delimiter. The header is assembled into scratch
// before the first byte goes out and is never touched afterwards.
//
// Both buffers come from the session arena; a header that does not fit in
// scratch fails with arena.ErrExhausted rather than truncating the frame.
func WriteRequest(w io.Writer, req *Request, payload io.Reader, scratch, copyBuf []byte) error {
	header, err := appendHeader(scratch[:0], req)
	if err != nil {
		return err
	}
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write request header: %w", err)
	}

	copyBuf = copyBuf[:cap(copyBuf)]
	for {
		n, rerr := payload.Read(copyBuf)
		if n > 0 {
			if _, werr := w.Write(copyBuf[:n]); werr != nil {
				return fmt.Errorf("write payload: %w", werr)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("read payload: %w", rerr)
		}
	}

	if _, err := w.Write([]byte{Delimiter}); err != nil {
		return fmt.Errorf("write request delimiter: %w", err)
	}
	return nil
}

// ReadResponse copies the response stream from r to out using buf, stopping
// at the delimiter or a clean end-of-stream. The delimiter itself is stripped;
// everything else is forwarded verbatim.
func ReadResponse(r io.Reader, out io.Writer, buf []byte) error {
	buf = buf[:cap(buf)]
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			done := chunk[n-1] == Delimiter
			if done {
				chunk = chunk[:n-1]
			}
			if len(chunk) > 0 {
				if _, werr := out.Write(chunk); werr != nil {
					return fmt.Errorf("write response: %w", werr)
				}
			}
			if done {
				return nil
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("read response: %w", rerr)
		}
	}
}

func appendHeader(dst []byte, req *Request) ([]byte, error) {
	dst, err := appendLine(dst, "cwd", req.Cwd)
	if err != nil {
		return nil, err
	}
	for _, opt := range optionOrder {
		if dst, err = appendLine(dst, opt.name, opt.value(req)); err != nil {
			return nil, err
		}
	}
	if len(dst)+1 > cap(dst) {
		return nil, headerOverflow(len(dst) + 1)
	}
	return append(dst, '\n'), nil
}

func appendLine(dst []byte, name, value string) ([]byte, error) {
	need := len(dst) + len(name) + 1 + len(value) + 1
	if need > cap(dst) {
		return nil, headerOverflow(need)
	}
	dst = append(dst, name...)
	dst = append(dst, '=')
	dst = append(dst, value...)
	return append(dst, '\n'), nil
}

func headerOverflow(need int) error {
	return fmt.Errorf("encode request header: %d bytes needed: %w", need, arena.ErrExhausted)
}
