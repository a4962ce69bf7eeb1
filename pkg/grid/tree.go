package grid

import "strings"

// Node is a generic element in the rendered UI tree. HTML holds trusted,
// already-sanitised markup and is mutually exclusive with Text.
type Node struct {
	Tag      string            `json:"tag"`
	Classes  []string          `json:"classes,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	HTML     string            `json:"html,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// IconRefAttr carries the icon reference on icon nodes so client code can
// resolve the asset.
const IconRefAttr = "data-icon"

// Tree lowers the grid into its generic node form.
func (g Grid) Tree() *Node {
	row := element("div", g.RowClass)
	row.Children = make([]*Node, 0, len(g.Blocks))
	for _, block := range g.Blocks {
		row.Children = append(row.Children, block.Tree())
	}

	container := element("div", g.ContainerClass)
	container.Children = []*Node{row}

	section := element("section", g.SectionClass)
	section.Children = []*Node{container}
	return section
}

// Tree lowers a single block into its generic node form.
func (b Block) Tree() *Node {
	icon := element("svg", b.Icon.Class)
	icon.Attrs = map[string]string{
		"role":      b.Icon.Role,
		IconRefAttr: string(b.Icon.Ref),
	}

	iconWrapper := element("div", b.IconWrapperClass)
	iconWrapper.Children = []*Node{icon}

	title := element(b.Heading.Tag(), "")
	title.Text = b.Heading.Text
	if b.Heading.ID != "" {
		title.Attrs = map[string]string{"id": b.Heading.ID}
	}

	paragraph := element("p", "")
	paragraph.HTML = string(b.Description)

	body := element("div", b.BodyClass)
	body.Children = []*Node{title, paragraph}

	item := element("div", b.Class)
	item.Attrs = map[string]string{"data-key": b.Key}
	item.Children = []*Node{iconWrapper, body}
	return item
}

// Find returns every node in the tree, depth first, for which match returns
// true.
func (n *Node) Find(match func(*Node) bool) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	if match(n) {
		out = append(out, n)
	}
	for _, child := range n.Children {
		out = append(out, child.Find(match)...)
	}
	return out
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

func element(tag, classes string) *Node {
	return &Node{Tag: tag, Classes: strings.Fields(classes)}
}
