package types

// ProcessFLAG identifies one of the four processes of the ideal Diesel cycle
type ProcessFLAG uint8

const (
	P_None ProcessFLAG = iota
	P_Compression
	P_HeatAddition
	P_Expansion
	P_HeatRejection
)

var processNames = []string{
	"None",
	"1-2 Compression (Isentropic)",
	"2-3 Heat Addition (Constant P)",
	"3-4 Expansion (Isentropic)",
	"4-1 Heat Rejection (Constant V)",
}

// Processes lists the cycle processes in traversal order
var Processes = []ProcessFLAG{P_Compression, P_HeatAddition, P_Expansion, P_HeatRejection}

func (pf ProcessFLAG) String() string {
	if int(pf) >= len(processNames) {
		return processNames[0]
	}
	return processNames[pf]
}

// Short returns the state transition label, e.g. "1-2"
func (pf ProcessFLAG) Short() string {
	switch pf {
	case P_Compression:
		return "1-2"
	case P_HeatAddition:
		return "2-3"
	case P_Expansion:
		return "3-4"
	case P_HeatRejection:
		return "4-1"
	}
	return ""
}
