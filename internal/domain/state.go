package domain

// StateCode identifies the work jurisdiction for state withholding. Besides the
// 50 states and DC it has two pseudo codes: NONE (federal only) and CUSTOM
// (a user supplied flat percentage).
type StateCode string

const (
	StateAL StateCode = "AL"
	StateAK StateCode = "AK"
	StateAZ StateCode = "AZ"
	StateAR StateCode = "AR"
	StateCA StateCode = "CA"
	StateCO StateCode = "CO"
	StateCT StateCode = "CT"
	StateDE StateCode = "DE"
	StateDC StateCode = "DC"
	StateFL StateCode = "FL"
	StateGA StateCode = "GA"
	StateHI StateCode = "HI"
	StateID StateCode = "ID"
	StateIL StateCode = "IL"
	StateIN StateCode = "IN"
	StateIA StateCode = "IA"
	StateKS StateCode = "KS"
	StateKY StateCode = "KY"
	StateLA StateCode = "LA"
	StateME StateCode = "ME"
	StateMD StateCode = "MD"
	StateMA StateCode = "MA"
	StateMI StateCode = "MI"
	StateMN StateCode = "MN"
	StateMS StateCode = "MS"
	StateMO StateCode = "MO"
	StateMT StateCode = "MT"
	StateNE StateCode = "NE"
	StateNV StateCode = "NV"
	StateNH StateCode = "NH"
	StateNJ StateCode = "NJ"
	StateNM StateCode = "NM"
	StateNY StateCode = "NY"
	StateNC StateCode = "NC"
	StateND StateCode = "ND"
	StateOH StateCode = "OH"
	StateOK StateCode = "OK"
	StateOR StateCode = "OR"
	StatePA StateCode = "PA"
	StateRI StateCode = "RI"
	StateSC StateCode = "SC"
	StateSD StateCode = "SD"
	StateTN StateCode = "TN"
	StateTX StateCode = "TX"
	StateUT StateCode = "UT"
	StateVT StateCode = "VT"
	StateVA StateCode = "VA"
	StateWA StateCode = "WA"
	StateWV StateCode = "WV"
	StateWI StateCode = "WI"
	StateWY StateCode = "WY"

	StateNone   StateCode = "NONE"
	StateCustom StateCode = "CUSTOM"
)

var stateNames = map[StateCode]string{
	StateAL: "Alabama", StateAK: "Alaska", StateAZ: "Arizona", StateAR: "Arkansas",
	StateCA: "California", StateCO: "Colorado", StateCT: "Connecticut", StateDE: "Delaware",
	StateDC: "Dist. of Columbia", StateFL: "Florida", StateGA: "Georgia", StateHI: "Hawaii",
	StateID: "Idaho", StateIL: "Illinois", StateIN: "Indiana", StateIA: "Iowa",
	StateKS: "Kansas", StateKY: "Kentucky", StateLA: "Louisiana", StateME: "Maine",
	StateMD: "Maryland", StateMA: "Massachusetts", StateMI: "Michigan", StateMN: "Minnesota",
	StateMS: "Mississippi", StateMO: "Missouri", StateMT: "Montana", StateNE: "Nebraska",
	StateNV: "Nevada", StateNH: "New Hampshire", StateNJ: "New Jersey", StateNM: "New Mexico",
	StateNY: "New York", StateNC: "North Carolina", StateND: "North Dakota", StateOH: "Ohio",
	StateOK: "Oklahoma", StateOR: "Oregon", StatePA: "Pennsylvania", StateRI: "Rhode Island",
	StateSC: "South Carolina", StateSD: "South Dakota", StateTN: "Tennessee", StateTX: "Texas",
	StateUT: "Utah", StateVT: "Vermont", StateVA: "Virginia", StateWA: "Washington",
	StateWV: "West Virginia", StateWI: "Wisconsin", StateWY: "Wyoming",
	StateNone:   "Federal Only (No State)",
	StateCustom: "Custom Flat Rate",
}

// Jurisdictions returns the 51 real jurisdictions (states plus DC) in display order.
func Jurisdictions() []StateCode {
	return []StateCode{
		StateAL, StateAK, StateAZ, StateAR, StateCA, StateCO, StateCT, StateDE, StateDC,
		StateFL, StateGA, StateHI, StateID, StateIL, StateIN, StateIA, StateKS, StateKY,
		StateLA, StateME, StateMD, StateMA, StateMI, StateMN, StateMS, StateMO, StateMT,
		StateNE, StateNV, StateNH, StateNJ, StateNM, StateNY, StateNC, StateND, StateOH,
		StateOK, StateOR, StatePA, StateRI, StateSC, StateSD, StateTN, StateTX, StateUT,
		StateVT, StateVA, StateWA, StateWV, StateWI, StateWY,
	}
}

// AllStateCodes returns every selectable code, pseudo codes last.
func AllStateCodes() []StateCode {
	return append(Jurisdictions(), StateNone, StateCustom)
}

// Valid reports whether sc is one of the selectable codes.
func (sc StateCode) Valid() bool {
	_, ok := stateNames[sc]
	return ok
}

// IsJurisdiction reports whether sc names a real state or DC.
func (sc StateCode) IsJurisdiction() bool {
	return sc.Valid() && sc != StateNone && sc != StateCustom
}

// Label returns e.g. "Georgia (GA)".
func (sc StateCode) Label() string {
	name, ok := stateNames[sc]
	if !ok {
		return string(sc)
	}
	if !sc.IsJurisdiction() {
		return name
	}
	return name + " (" + string(sc) + ")"
}
