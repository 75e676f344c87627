//go:build rp2040 || rp2350

package fmtx

import "io"

// DefaultOutput is used by Print/Printf on MCU builds. It discards until the
// platform bootstrap points it at a real sink (a UART writer, a TextQueue).
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// Public API: signatures match fmt. The formatter is a deliberately small
// subset so MCU builds avoid pulling in fmt and reflect: it knows
// %s %d %x %X %t %v %%, a '-' flag, and a width for %s and %d.

func Sprintf(format string, a ...any) string {
	var b []byte
	b = appendFormat(b, format, a...)
	return string(b)
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return w.Write(appendFormat(nil, format, a...))
}

func Printf(format string, a ...any) (int, error) {
	return Fprintf(DefaultOutput, format, a...)
}

func Sprint(a ...any) string {
	var b []byte
	for i, v := range a {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendAny(b, v)
	}
	return string(b)
}

func Fprint(w io.Writer, a ...any) (int, error) { return w.Write([]byte(Sprint(a...))) }
func Print(a ...any) (int, error)               { return Fprint(DefaultOutput, a...) }

func appendFormat(b []byte, format string, args ...any) []byte {
	ai := 0
	for i := 0; i < len(format); {
		c := format[i]
		if c != '%' {
			b = append(b, c)
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			b = append(b, '%')
			i++
			continue
		}
		left := false
		if i < len(format) && format[i] == '-' {
			left = true
			i++
		}
		width := 0
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			width = width*10 + int(format[i]-'0')
			i++
		}
		if i >= len(format) || ai >= len(args) {
			return b
		}
		verb := format[i]
		arg := args[ai]
		ai++
		i++

		var field []byte
		switch verb {
		case 's':
			switch v := arg.(type) {
			case string:
				field = append(field, v...)
			case []byte:
				field = append(field, v...)
			default:
				field = appendAny(field, v)
			}
		case 'd':
			field = appendAny(field, arg)
		case 'x', 'X':
			field = appendHex(field, arg, verb == 'X')
		case 't':
			if v, ok := arg.(bool); ok && v {
				field = append(field, "true"...)
			} else {
				field = append(field, "false"...)
			}
		case 'v':
			field = appendAny(field, arg)
		default:
			b = append(b, '%', verb)
			continue
		}

		pad := width - len(field)
		if pad > 0 && !left {
			for ; pad > 0; pad-- {
				b = append(b, ' ')
			}
		}
		b = append(b, field...)
		if pad > 0 && left {
			for ; pad > 0; pad-- {
				b = append(b, ' ')
			}
		}
	}
	return b
}

func appendAny(b []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(b, x...)
	case []byte:
		return append(b, x...)
	case bool:
		if x {
			return append(b, "true"...)
		}
		return append(b, "false"...)
	case int:
		return appendInt(b, int64(x))
	case int8:
		return appendInt(b, int64(x))
	case int16:
		return appendInt(b, int64(x))
	case int32:
		return appendInt(b, int64(x))
	case int64:
		return appendInt(b, x)
	case uint:
		return appendUint(b, uint64(x), 10, false)
	case uint8:
		return appendUint(b, uint64(x), 10, false)
	case uint16:
		return appendUint(b, uint64(x), 10, false)
	case uint32:
		return appendUint(b, uint64(x), 10, false)
	case uint64:
		return appendUint(b, x, 10, false)
	default:
		return append(b, "<unk>"...)
	}
}

func appendHex(b []byte, v any, upper bool) []byte {
	var u uint64
	switch x := v.(type) {
	case int:
		u = uint64(x)
	case int8:
		u = uint64(uint8(x))
	case int16:
		u = uint64(uint16(x))
	case int32:
		u = uint64(uint32(x))
	case int64:
		u = uint64(x)
	case uint:
		u = uint64(x)
	case uint8:
		u = uint64(x)
	case uint16:
		u = uint64(x)
	case uint32:
		u = uint64(x)
	case uint64:
		u = x
	default:
		return append(b, "<unk>"...)
	}
	return appendUint(b, u, 16, upper)
}

func appendInt(b []byte, v int64) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	return appendUint(b, uint64(v), 10, false)
}

func appendUint(b []byte, v uint64, base uint64, upper bool) []byte {
	digits := "0123456789abcdef"
	if upper {
		digits = "0123456789ABCDEF"
	}
	var tmp [20]byte
	p := len(tmp)
	for {
		p--
		tmp[p] = digits[v%base]
		v /= base
		if v == 0 {
			break
		}
	}
	return append(b, tmp[p:]...)
}
