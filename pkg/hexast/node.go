package hexast

import (
	"github.com/hexbug/hexdecode/pkg/common"
)

// ToNode converts an iota into the display tree used by the writers.
func ToNode(i Iota) *common.Node {
	switch v := i.(type) {
	case NumberConstant:
		return leaf(common.NameNumber, map[string]string{common.OptionValue: v.Text})
	case Vector:
		node := leaf(common.NameVector, map[string]string{})
		node.Children = []*common.Node{ToNode(v.X), ToNode(v.Y), ToNode(v.Z)}
		return node
	case Null:
		return leaf(common.NameNull, map[string]string{})
	case Unknown:
		return leaf(common.NameUnknown, map[string]string{common.OptionValue: v.Text})
	case UnknownPattern:
		return leaf(common.NamePattern, map[string]string{
			common.OptionDirection: v.Direction.String(),
			common.OptionTurns:     v.Turns,
		})
	case List:
		node := leaf(common.NameList, map[string]string{})
		for _, element := range v.Elements {
			node.Children = append(node.Children, ToNode(element))
		}
		return node
	}
	return nil
}

// UnitNode wraps a sequence of top-level iotas in a unit node.
func UnitNode(iotas []Iota, src string) *common.Node {
	unit := common.NewUnit(src)
	for _, i := range iotas {
		unit.Children = append(unit.Children, ToNode(i))
	}
	return unit
}

func leaf(name string, options map[string]string) *common.Node {
	return &common.Node{
		Name:     name,
		Options:  options,
		Children: []*common.Node{},
	}
}
