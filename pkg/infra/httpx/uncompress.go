package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fasthttp"
)

// AcceptEncoding lists the codings DecodeBody understands.
const AcceptEncoding = "gzip, br, zstd, deflate"

type decoder func(io.Reader) (io.ReadCloser, error)

var decoders = map[string]decoder{
	"gzip": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	"br": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(r)), nil
	},
	"zstd": func(r io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	},
}

// DecodeBody undoes the Content-Encoding of a model server response. Codings
// are removed in reverse order of application.
func DecodeBody(resp *fasthttp.Response, body []byte) ([]byte, error) {
	header := string(resp.Header.Peek(fasthttp.HeaderContentEncoding))
	if header == "" {
		return body, nil
	}
	codings := strings.Split(header, ",")
	for i := len(codings) - 1; i >= 0; i-- {
		coding := strings.ToLower(strings.TrimSpace(codings[i]))
		var err error
		switch coding {
		case "", "identity":
			continue
		case "deflate":
			body, err = inflate(body)
		default:
			dec, ok := decoders[coding]
			if !ok {
				return nil, fmt.Errorf("unsupported content-encoding: %q", coding)
			}
			body, err = readAll(dec, body)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s body: %w", coding, err)
		}
	}
	return body, nil
}

func readAll(dec decoder, body []byte) ([]byte, error) {
	r, err := dec(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	return out, err
}

// inflate accepts both zlib-wrapped and raw deflate streams.
func inflate(body []byte) ([]byte, error) {
	if out, err := readAll(func(r io.Reader) (io.ReadCloser, error) { return zlib.NewReader(r) }, body); err == nil {
		return out, nil
	}
	return readAll(func(r io.Reader) (io.ReadCloser, error) { return flate.NewReader(r), nil }, body)
}
