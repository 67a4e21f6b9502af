package classfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func writeUtf8(buf *bytes.Buffer, s string) {
	buf.WriteByte(byte(ConstantUtf8))
	binary.Write(buf, binary.BigEndian, uint16(len(s)))
	buf.WriteString(s)
}

func writeClassRef(buf *bytes.Buffer, nameIndex uint16) {
	buf.WriteByte(byte(ConstantClass))
	binary.Write(buf, binary.BigEndian, nameIndex)
}

// testClass builds a class file whose pool mixes decoded and skipped
// constants:
//
//	#1 Utf8 name, #2 Class #1, #3 Long (two slots), #5 Utf8 super,
//	#6 Class #5, #7 Methodref, #8 Integer
func testClass(name, super string, flags AccessFlags) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(Magic))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(52))
	binary.Write(&buf, binary.BigEndian, uint16(9))

	writeUtf8(&buf, name)
	writeClassRef(&buf, 1)
	buf.WriteByte(byte(ConstantLong))
	binary.Write(&buf, binary.BigEndian, uint64(42))
	writeUtf8(&buf, super)
	writeClassRef(&buf, 5)
	buf.WriteByte(byte(ConstantMethodref))
	binary.Write(&buf, binary.BigEndian, uint32(0x00020006))
	buf.WriteByte(byte(ConstantInteger))
	binary.Write(&buf, binary.BigEndian, uint32(7))

	binary.Write(&buf, binary.BigEndian, uint16(flags))
	binary.Write(&buf, binary.BigEndian, uint16(2))
	binary.Write(&buf, binary.BigEndian, uint16(6))
	// Interface count and the rest are never read.
	binary.Write(&buf, binary.BigEndian, uint16(0))
	return buf.Bytes()
}

func TestParseHeader(t *testing.T) {
	data := testClass("java/awt/Frame$1", "java/lang/Object", AccPublic|AccFinal)

	h, err := ParseHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	t.Run("version", func(t *testing.T) {
		if h.MajorVersion != 52 || h.MinorVersion != 0 {
			t.Errorf("version = %d.%d, want 52.0", h.MajorVersion, h.MinorVersion)
		}
	})

	t.Run("class name", func(t *testing.T) {
		if got := h.ClassName(); got != "java/awt/Frame$1" {
			t.Errorf("ClassName() = %q, want %q", got, "java/awt/Frame$1")
		}
		if got := h.SourceName(); got != "java.awt.Frame$1" {
			t.Errorf("SourceName() = %q, want %q", got, "java.awt.Frame$1")
		}
	})

	t.Run("super class after wide constant", func(t *testing.T) {
		if got := h.SuperClassName(); got != "java/lang/Object" {
			t.Errorf("SuperClassName() = %q, want %q", got, "java/lang/Object")
		}
	})

	t.Run("access flags", func(t *testing.T) {
		if !h.AccessFlags.IsPublic() || !h.AccessFlags.IsFinal() {
			t.Errorf("AccessFlags = %#x, want public final", uint16(h.AccessFlags))
		}
		if h.IsInterface() || h.IsModule() {
			t.Error("class reported as interface or module")
		}
	})
}

func TestParseHeader_Errors(t *testing.T) {
	valid := testClass("Foo", "java/lang/Object", AccPublic)

	tests := []struct {
		name    string
		data    []byte
		wantBad bool
	}{
		{"empty", nil, false},
		{"bad magic", []byte{0xDE, 0xAD, 0xBE, 0xEF, 0, 0, 0, 52}, true},
		{"truncated pool", valid[:14], false},
		{"truncated class info", valid[:len(valid)-5], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("ParseHeader() error = nil, want error")
			}
			if got := errors.Is(err, ErrBadMagic); got != tt.wantBad {
				t.Errorf("errors.Is(err, ErrBadMagic) = %v, want %v", got, tt.wantBad)
			}
		})
	}
}

func TestDecodeModifiedUtf8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("Frame"), "Frame"},
		{"two byte", []byte{0xC3, 0xA9}, "é"},
		{"encoded nul", []byte{0xC0, 0x80}, "\x00"},
		{"three byte", []byte{0xE2, 0x82, 0xAC}, "€"},
		{"surrogate pair", []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}, "😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeModifiedUtf8(tt.in); got != tt.want {
				t.Errorf("decodeModifiedUtf8() = %q, want %q", got, tt.want)
			}
		})
	}
}
