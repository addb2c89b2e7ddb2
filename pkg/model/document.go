package model

// Document is the ordered node sequence produced by one compile call.
type Document struct {
	Nodes []WidgetNode `json:"nodes" yaml:"nodes"`
}

// Len reports the number of nodes.
func (d Document) Len() int {
	return len(d.Nodes)
}

// Empty reports whether the document holds no nodes.
func (d Document) Empty() bool {
	return len(d.Nodes) == 0
}

// ByKind returns the nodes of the given kind in document order.
func (d Document) ByKind(kind string) []WidgetNode {
	var out []WidgetNode
	for _, node := range d.Nodes {
		if node.Kind == kind {
			out = append(out, node)
		}
	}
	return out
}

// Kinds lists the distinct kinds present, in order of first appearance.
func (d Document) Kinds() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, node := range d.Nodes {
		if _, ok := seen[node.Kind]; ok {
			continue
		}
		seen[node.Kind] = struct{}{}
		out = append(out, node.Kind)
	}
	return out
}

// Clone returns a deep copy so callers can hand out documents without sharing
// backing arrays.
func (d Document) Clone() Document {
	if d.Nodes == nil {
		return Document{}
	}
	nodes := make([]WidgetNode, len(d.Nodes))
	for i, node := range d.Nodes {
		nodes[i] = node.Clone()
	}
	return Document{Nodes: nodes}
}
