package graph

//go:generate go run github.com/raito-io/enumer -type=GroupKind -trimprefix=Kind

type GroupKind int

const (
	KindUnsupported GroupKind = iota
	KindUnified
	KindDistribution
)

// Kind classifies a directory group. Graph has no single recipient-type
// field; unified (M365) groups carry the "Unified" group type, classic
// distribution lists are mail-enabled without being security groups.
// Anything else cannot be enumerated by this tool.
func (g *Group) Kind() GroupKind {
	for _, t := range g.GroupTypes {
		if t == "Unified" {
			return KindUnified
		}
	}

	if g.MailEnabled && !g.SecurityEnabled {
		return KindDistribution
	}

	return KindUnsupported
}
