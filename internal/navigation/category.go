package navigation

// Calculator modes always support negative and positive values.
// Converter modes usually only support positive.
const (
	supportsAll      = true
	supportsNegative = true
	positiveOnly     = false
)

// vvv THESE CONSTANTS SHOULD NEVER CHANGE vvv
// They are persisted by the host to remember the last mode used; changing
// or reusing one silently redirects old saved selections to another mode.
const (
	standardID    = 0
	scientificID  = 1
	programmerID  = 2
	dateID        = 3
	volumeID      = 4
	lengthID      = 5
	weightID      = 6
	temperatureID = 7
	energyID      = 8
	areaID        = 9
	speedID       = 10
	timeID        = 11
	powerID       = 12
	dataID        = 13
	pressureID    = 14
	angleID       = 15
	currencyID    = 16
	graphingID    = 17
)

// ^^^ THESE CONSTANTS SHOULD NEVER CHANGE ^^^

// Category is one immutable manifest record describing a view mode.
//
// Name, glyph, and access-key fields are opaque presentation identifiers;
// the presentation layer resolves them against its resource table.
type Category struct {
	Mode             ViewMode          `json:"mode"`
	SerializationID  int               `json:"serialization_id"`
	FriendlyName     string            `json:"friendly_name"`
	NameResourceKey  string            `json:"name_resource_key"`
	Glyph            string            `json:"glyph"`
	Group            CategoryGroupType `json:"group"`
	AcceleratorKey   VirtualKey        `json:"accelerator_key,omitempty"`
	AccessKey        string            `json:"access_key,omitempty"`
	SupportsNegative bool              `json:"supports_negative"`
	Enabled          bool              `json:"enabled"`
}

// AutomationID returns the identifier exposed to UI automation.
func (c Category) AutomationID() string {
	return c.Mode.String()
}

// AccessKeyResource returns the access key assigned at manifest build time,
// or the resource key the presentation layer should resolve when no explicit
// key was assigned.
func (c Category) AccessKeyResource() string {
	if c.AccessKey != "" {
		return c.AccessKey
	}
	return c.NameResourceKey + "AccessKey"
}

// converterCategories is the fixed tail of the manifest. Converter modes
// never carry accelerators or access keys; only Temperature, Power, and
// Angle accept negative input.
func converterCategories() []Category {
	return []Category{
		{Mode: ModeCurrency, SerializationID: currencyID, FriendlyName: "Currency", NameResourceKey: "CategoryName_Currency", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModeVolume, SerializationID: volumeID, FriendlyName: "Volume", NameResourceKey: "CategoryName_Volume", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModeLength, SerializationID: lengthID, FriendlyName: "Length", NameResourceKey: "CategoryName_Length", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModeWeight, SerializationID: weightID, FriendlyName: "Weight and Mass", NameResourceKey: "CategoryName_Weight", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModeTemperature, SerializationID: temperatureID, FriendlyName: "Temperature", NameResourceKey: "CategoryName_Temperature", Glyph: "", Group: GroupConverter, SupportsNegative: supportsNegative, Enabled: true},
		{Mode: ModeEnergy, SerializationID: energyID, FriendlyName: "Energy", NameResourceKey: "CategoryName_Energy", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModeArea, SerializationID: areaID, FriendlyName: "Area", NameResourceKey: "CategoryName_Area", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModeSpeed, SerializationID: speedID, FriendlyName: "Speed", NameResourceKey: "CategoryName_Speed", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModeTime, SerializationID: timeID, FriendlyName: "Time", NameResourceKey: "CategoryName_Time", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModePower, SerializationID: powerID, FriendlyName: "Power", NameResourceKey: "CategoryName_Power", Glyph: "", Group: GroupConverter, SupportsNegative: supportsNegative, Enabled: true},
		{Mode: ModeData, SerializationID: dataID, FriendlyName: "Data", NameResourceKey: "CategoryName_Data", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModePressure, SerializationID: pressureID, FriendlyName: "Pressure", NameResourceKey: "CategoryName_Pressure", Glyph: "", Group: GroupConverter, SupportsNegative: positiveOnly, Enabled: true},
		{Mode: ModeAngle, SerializationID: angleID, FriendlyName: "Angle", NameResourceKey: "CategoryName_Angle", Glyph: "", Group: GroupConverter, SupportsNegative: supportsNegative, Enabled: true},
	}
}
