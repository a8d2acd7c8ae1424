package metainfo

import "fmt"

// Kind discriminates the closed set of definition variants.
type Kind int

const (
	SectionKind Kind = iota
	SubSectionKind
	QuantityKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		SectionKind:    "Section",
		SubSectionKind: "SubSection",
		QuantityKind:   "Quantity",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Section":    SectionKind,
		"SubSection": SubSectionKind,
		"Quantity":   QuantityKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{SectionKind, SubSectionKind, QuantityKind}
}
