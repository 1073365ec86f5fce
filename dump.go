package patmat

import (
	tp "github.com/xlab/treeprint"
)

// Dump renders a pattern tree for debugging, one line per node:
//
//	.
//	└── ds
//	    ├── lit(10)
//	    ├── ooo*
//	    │   └── id[patmat.Subrange]
//	    └── lit(50)
func Dump(p Pattern) string {
	printer := tp.New()
	dumpInto(printer, p)
	return printer.String()
}

func dumpInto(br tp.Tree, p Pattern) {
	kids := p.children()
	if len(kids) == 0 {
		br.AddNode(p.label())
		return
	}
	b := br.AddBranch(p.label())
	for _, k := range kids {
		dumpInto(b, k)
	}
}
