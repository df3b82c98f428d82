package mutation

// Hierarchy ranks mutation types by severity. Higher ranks win when a
// single scalar value is demanded; list-valued resolution keeps every
// record and uses the ranking only to order output deterministically.
type Hierarchy map[string]int

// DefaultHierarchy follows MAF variant classifications: truncating events
// above missense and in-frame events, those above silent and non-coding
// events, and wildtype at the bottom.
var DefaultHierarchy = Hierarchy{
	"Nonsense_Mutation":      3,
	"Frame_Shift_Del":        3,
	"Frame_Shift_Ins":        3,
	"Splice_Site":            3,
	"Nonstop_Mutation":       3,
	"Translation_Start_Site": 3,

	"Missense_Mutation": 2,
	"In_Frame_Del":      2,
	"In_Frame_Ins":      2,

	"Silent":          1,
	"Intron":          1,
	"RNA":             1,
	"3'UTR":           1,
	"5'UTR":           1,
	"3'Flank":         1,
	"5'Flank":         1,
	"IGR":             1,
	"Targeted_Region": 1,

	"Wildtype":     0,
	WildtypeTumor:  0,
	WildtypeNormal: 0,
}

// Rank returns the severity rank of a mutation type. Types the hierarchy
// does not list rank with missense, so an unrecognized call is never
// outranked by a silent one.
func (h Hierarchy) Rank(mutationType string) int {
	if r, ok := h[mutationType]; ok {
		return r
	}

	return 2
}
