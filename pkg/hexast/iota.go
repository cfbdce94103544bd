package hexast

import (
	"fmt"
	"strings"
)

// Kind enumerates the closed set of iota variants.
type Kind int

const (
	KindNumber Kind = iota
	KindVector
	KindNull
	KindUnknown
	KindPattern
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "NumberConstant"
	case KindVector:
		return "Vector"
	case KindNull:
		return "Null"
	case KindUnknown:
		return "Unknown"
	case KindPattern:
		return "UnknownPattern"
	case KindList:
		return "List"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Iota is a single typed value of the casting notation. The set of
// implementations is closed: NumberConstant, Vector, Null, Unknown,
// UnknownPattern and List.
type Iota interface {
	Kind() Kind
	isIota()
}

// NumberConstant keeps the literal exactly as written in the source.
type NumberConstant struct {
	Text string
}

type Vector struct {
	X, Y, Z NumberConstant
}

type Null struct{}

// Unknown holds a bareword that matched no other literal form.
type Unknown struct {
	Text string
}

// UnknownPattern is a pattern known only by its angle signature: the starting
// direction and the turns that follow it.
type UnknownPattern struct {
	Direction Direction
	Turns     string
}

type List struct {
	Elements []Iota
}

func (NumberConstant) Kind() Kind { return KindNumber }
func (Vector) Kind() Kind         { return KindVector }
func (Null) Kind() Kind           { return KindNull }
func (Unknown) Kind() Kind        { return KindUnknown }
func (UnknownPattern) Kind() Kind { return KindPattern }
func (List) Kind() Kind           { return KindList }

func (NumberConstant) isIota() {}
func (Vector) isIota()         {}
func (Null) isIota()           {}
func (Unknown) isIota()        {}
func (UnknownPattern) isIota() {}
func (List) isIota()           {}

// Format renders an iota in its display form, e.g.
// `Vector(NumberConstant("1"), NumberConstant("2"), NumberConstant("3"))`.
func Format(i Iota) string {
	var sb strings.Builder
	writeFormat(i, &sb)
	return sb.String()
}

func writeFormat(i Iota, sb *strings.Builder) {
	switch v := i.(type) {
	case NumberConstant:
		fmt.Fprintf(sb, "NumberConstant(%q)", v.Text)
	case Vector:
		sb.WriteString("Vector(")
		writeFormat(v.X, sb)
		sb.WriteString(", ")
		writeFormat(v.Y, sb)
		sb.WriteString(", ")
		writeFormat(v.Z, sb)
		sb.WriteString(")")
	case Null:
		sb.WriteString("Null()")
	case Unknown:
		fmt.Fprintf(sb, "Unknown(%q)", v.Text)
	case UnknownPattern:
		fmt.Fprintf(sb, "UnknownPattern(%s, %q)", v.Direction, v.Turns)
	case List:
		sb.WriteString("List[")
		for n, element := range v.Elements {
			if n > 0 {
				sb.WriteString(", ")
			}
			writeFormat(element, sb)
		}
		sb.WriteString("]")
	default:
		fmt.Fprintf(sb, "%v", i)
	}
}

func (n NumberConstant) String() string { return Format(n) }
func (v Vector) String() string         { return Format(v) }
func (n Null) String() string           { return Format(n) }
func (u Unknown) String() string        { return Format(u) }
func (p UnknownPattern) String() string { return Format(p) }
func (l List) String() string           { return Format(l) }
