package stackstr

import (
	"errors"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

var errUnwrapped = errors.New("stackstr: Buffer was not created by Wrap")

// Hash returns the xxhash of the content of s. Use it, or the String form,
// to key maps: a Fixed compared with == also compares the stale bytes past
// its end.
func Hash[S Storage](s S) uint64 {
	return xxhash.Sum64(s.Bytes())
}

// MarshalText implements encoding.TextMarshaler, which also covers JSON and
// YAML.
func (f Fixed[A]) MarshalText() ([]byte, error) {
	return append([]byte(nil), f.Bytes()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Text longer than the
// capacity follows the overflow policy.
func (f *Fixed[A]) UnmarshalText(text []byte) error {
	return Assign(f, text)
}

// EncodeMsgpack implements msgpack.CustomEncoder as a bin value.
func (f Fixed[A]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(f.Bytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder. Both bin and str values are
// accepted.
func (f *Fixed[A]) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return Assign(f, b)
}

// LogValue implements slog.LogValuer.
func (f Fixed[A]) LogValue() slog.Value {
	return logValue(&f)
}

// MarshalText implements encoding.TextMarshaler.
func (b *Buffer) MarshalText() ([]byte, error) {
	return append([]byte(nil), b.Bytes()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, writing into the
// wrapped memory.
func (b *Buffer) UnmarshalText(text []byte) error {
	if len(b.buf) == 0 {
		return errUnwrapped
	}
	return Assign(b, text)
}

// EncodeMsgpack implements msgpack.CustomEncoder as a bin value.
func (b *Buffer) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(b.Bytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (b *Buffer) DecodeMsgpack(dec *msgpack.Decoder) error {
	if len(b.buf) == 0 {
		return errUnwrapped
	}
	p, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return Assign(b, p)
}

// LogValue implements slog.LogValuer.
func (b *Buffer) LogValue() slog.Value {
	return logValue(b)
}

func logValue[S Storage](s S) slog.Value {
	return slog.GroupValue(
		slog.String("content", string(Escape(nil, s))),
		slog.Int("len", s.Len()),
		slog.Int("cap", s.Capacity()),
	)
}
