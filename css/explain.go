package css

import (
	"objkit/utils/debug"
)

// Explain writes selector structure to tw: combinations with their operands
// and compound selectors with every part in the order it was added.
func (b *Builder) Explain(tw *debug.TreeWriter, depth int) {
	if len(b.parts) > 0 || b.left == nil {
		compound := *b
		compound.combined = ""
		tw.Line(depth, "compound %q", compound.String())
		for _, p := range b.parts {
			tw.Field(depth+1, p.cat.String(), p.value)
		}
		if b.left == nil {
			return
		}
	}
	tw.Line(depth, "combination %q", b.combinator)
	b.left.Explain(tw, depth+1)
	b.right.Explain(tw, depth+1)
}
