package encode

type EncodeOption func(*encState)

// Depth bounds how many adaptor levels below the starting node are
// expanded inline. Zero encodes the node alone.
func Depth(n int) EncodeOption {
	return func(es *encState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.color = c.Color }
}

// ShowAll lifts the compact window on sub-section lists.
func ShowAll(v bool) EncodeOption {
	return func(es *encState) { es.showAll = v }
}

func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// Descriptions includes definition descriptions beneath node headers.
func Descriptions(v bool) EncodeOption {
	return func(es *encState) { es.descriptions = v }
}
