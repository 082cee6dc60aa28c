package ui

import (
	"fmt"
	"io"

	"github.com/newkub/templates/internal/fileset"
)

// PrintTree draws nodes with box-drawing connectors, directories marked
// with a trailing slash.
func PrintTree(w io.Writer, nodes []*fileset.Node, prefix string) {
	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── "
		if isLast {
			connector = "└── "
		}

		label := node.Name
		if node.Type == fileset.KindDirectory {
			label = Heading.Render(node.Name + "/")
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, label)

		if len(node.Children) > 0 {
			childPrefix := prefix + "│   "
			if isLast {
				childPrefix = prefix + "    "
			}
			PrintTree(w, node.Children, childPrefix)
		}
	}
}
