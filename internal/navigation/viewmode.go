package navigation

// ViewMode identifies one selectable operating mode of the application.
//
// Don't persist these values and don't use int arithmetic to change modes:
// the ordinal is an internal detail. The durable representation is the
// serialization id carried by each Category.
type ViewMode int

const (
	ModeNone ViewMode = iota - 1
	ModeStandard
	ModeScientific
	ModeProgrammer
	ModeDate
	ModeVolume
	ModeLength
	ModeWeight
	ModeTemperature
	ModeEnergy
	ModeArea
	ModeSpeed
	ModeTime
	ModePower
	ModeData
	ModePressure
	ModeAngle
	ModeCurrency
	ModeGraphing
)

var viewModeNames = map[ViewMode]string{
	ModeNone:        "None",
	ModeStandard:    "Standard",
	ModeScientific:  "Scientific",
	ModeProgrammer:  "Programmer",
	ModeDate:        "Date",
	ModeVolume:      "Volume",
	ModeLength:      "Length",
	ModeWeight:      "Weight",
	ModeTemperature: "Temperature",
	ModeEnergy:      "Energy",
	ModeArea:        "Area",
	ModeSpeed:       "Speed",
	ModeTime:        "Time",
	ModePower:       "Power",
	ModeData:        "Data",
	ModePressure:    "Pressure",
	ModeAngle:       "Angle",
	ModeCurrency:    "Currency",
	ModeGraphing:    "Graphing",
}

// String returns the enum name, which doubles as the automation id for UI
// testing. It is not the user-facing name; see Category.FriendlyName.
func (m ViewMode) String() string {
	if name, ok := viewModeNames[m]; ok {
		return name
	}
	return "None"
}

// CategoryGroupType identifies which navigation menu group a mode belongs to.
type CategoryGroupType int

const (
	GroupNone CategoryGroupType = iota - 1
	GroupCalculator
	GroupConverter
)

func (g CategoryGroupType) String() string {
	switch g {
	case GroupCalculator:
		return "Calculator"
	case GroupConverter:
		return "Converter"
	default:
		return "None"
	}
}

// VirtualKey identifies the keyboard accelerator assigned to a mode.
// Only calculator-group modes carry accelerators.
type VirtualKey int

const (
	KeyNone VirtualKey = iota
	KeyNumber1
	KeyNumber2
	KeyNumber3
	KeyNumber4
	KeyNumber5
	KeyNumber6
	KeyNumber7
	KeyNumber8
	KeyNumber9
)

func (k VirtualKey) String() string {
	if k >= KeyNumber1 && k <= KeyNumber9 {
		return "Number" + string(rune('0'+int(k)))
	}
	return "None"
}

// KeyForDigit maps a digit 1-9 to its virtual key, KeyNone otherwise.
func KeyForDigit(digit int) VirtualKey {
	if digit < 1 || digit > 9 {
		return KeyNone
	}
	return VirtualKey(digit)
}
