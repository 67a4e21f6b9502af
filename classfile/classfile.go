// Package classfile reads the header of JVM class files: version, constant
// pool, access flags and the names of the class and its superclass.
// Members and attributes are not decoded.
package classfile

import "strings"

// Header is the part of a class file before the interface table.
type Header struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
}

// ClassName returns the internal name of the class, e.g. java/awt/Frame$1.
func (h *Header) ClassName() string {
	return h.ConstantPool.GetClassName(h.ThisClass)
}

// SourceName returns the dotted name of the class, e.g. java.awt.Frame$1.
func (h *Header) SourceName() string {
	return InternalToSourceName(h.ClassName())
}

func (h *Header) SuperClassName() string {
	if h.SuperClass == 0 {
		return ""
	}
	return h.ConstantPool.GetClassName(h.SuperClass)
}

func (h *Header) IsInterface() bool {
	return h.AccessFlags.IsInterface() && !h.AccessFlags.IsAnnotation()
}

func (h *Header) IsModule() bool {
	return h.AccessFlags.IsModule()
}

// ConstantPool holds the Utf8 and Class constants of a class file. Other
// constants are kept as nil slots so that indices stay valid.
type ConstantPool []any

type classRef struct {
	nameIndex uint16
}

func (cp ConstantPool) GetUtf8(index uint16) string {
	if index == 0 || int(index) > len(cp) {
		return ""
	}
	if s, ok := cp[index-1].(string); ok {
		return s
	}
	return ""
}

func (cp ConstantPool) GetClassName(index uint16) string {
	if index == 0 || int(index) > len(cp) {
		return ""
	}
	if ref, ok := cp[index-1].(classRef); ok {
		return cp.GetUtf8(ref.nameIndex)
	}
	return ""
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}
