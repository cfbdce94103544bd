package hexdecode

import (
	"fmt"
	"strings"

	"github.com/hexbug/hexdecode/pkg/hexast"
)

// toAST converts the parse tree into iotas, in source order.
func toAST(tree *grammarStart) ([]hexast.Iota, error) {
	return toIotas(tree.Iotas)
}

func toIotas(nodes []*grammarIota) ([]hexast.Iota, error) {
	iotas := make([]hexast.Iota, 0, len(nodes))
	for _, node := range nodes {
		// Absent slots are dropped; a literal NULL is not absent.
		if node == nil {
			continue
		}
		i, err := toIota(node)
		if err != nil {
			return nil, err
		}
		iotas = append(iotas, i)
	}
	return iotas, nil
}

func toIota(node *grammarIota) (hexast.Iota, error) {
	switch {
	case node.List != nil:
		elements, err := toIotas(node.List.Elements)
		if err != nil {
			return nil, err
		}
		return hexast.List{Elements: elements}, nil
	case node.Vector != nil:
		return hexast.Vector{
			X: hexast.NumberConstant{Text: node.Vector.X},
			Y: hexast.NumberConstant{Text: node.Vector.Y},
			Z: hexast.NumberConstant{Text: node.Vector.Z},
		}, nil
	case node.Pattern != nil:
		return toPattern(node.Pattern)
	case node.Null:
		return hexast.Null{}, nil
	case node.Number != nil:
		return hexast.NumberConstant{Text: *node.Number}, nil
	case node.Unknown != nil:
		return hexast.Unknown{Text: *node.Unknown}, nil
	}
	return nil, fmt.Errorf("empty iota node")
}

func toPattern(node *grammarPattern) (hexast.Iota, error) {
	direction, err := hexast.FromShorthand(node.Direction)
	if err != nil {
		return nil, err
	}
	turns := ""
	if node.Turns != nil {
		turns = strings.ToLower(*node.Turns)
		if !hexast.ValidTurns(turns) {
			return nil, fmt.Errorf("invalid turn sequence %q", *node.Turns)
		}
	}
	return hexast.UnknownPattern{Direction: direction, Turns: turns}, nil
}
