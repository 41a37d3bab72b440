package css_test

import (
	"testing"

	"objkit/css"
	"objkit/utils/debug"
)

func TestBuilder_Explain(t *testing.T) {
	b := css.Combine(
		css.Element("div").ID("a").Class("x").Class("y"),
		"+",
		css.Combine(css.Element("ul"), ">", css.Element("li").PseudoClass("first-child")),
	)

	tw := debug.NewTreeWriter()
	b.Explain(tw, 0)

	want := `combination "+"
  compound "div#a.x.y"
    element: "div"
    id: "a"
    class: "x"
    class: "y"
  combination ">"
    compound "ul"
      element: "ul"
    compound "li:first-child"
      element: "li"
      pseudo-class: "first-child"
`
	if got := tw.String(); got != want {
		t.Errorf("Explain() =\n%s\nwant\n%s", got, want)
	}
}

func TestBuilder_ExplainAttributeOverride(t *testing.T) {
	tw := debug.NewTreeWriter()
	css.Attr("lang").Attr("title").Explain(tw, 1)

	// both calls are listed, stringified form has the last one only
	want := "  compound \"[title]\"\n    attribute: \"lang\"\n    attribute: \"title\"\n"
	if got := tw.String(); got != want {
		t.Errorf("Explain() = %q, want %q", got, want)
	}
}
