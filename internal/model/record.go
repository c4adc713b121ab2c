package model

import "fmt"

// RecordType is the leading character of every ARINC 424 record.
type RecordType byte

// Record types.
const (
	Standard RecordType = 'S'
	Tailored RecordType = 'T'
)

// RunwaySurfaceCode classifies the longest runway's surface.
type RunwaySurfaceCode byte

// Longest runway surface codes.
const (
	HardSurface      RunwaySurfaceCode = 'H'
	SoftSurface      RunwaySurfaceCode = 'S'
	WaterRunway      RunwaySurfaceCode = 'W'
	UndefinedSurface RunwaySurfaceCode = 'U'
)

// PublicMilitaryIndicator classifies airport usage.
type PublicMilitaryIndicator byte

// Public/military indicators.
const (
	Civil    PublicMilitaryIndicator = 'C'
	Military PublicMilitaryIndicator = 'M'
	Private  PublicMilitaryIndicator = 'P'
)

// MagneticTrueIndicator tells whether bearings at the airport are
// magnetic or true.
type MagneticTrueIndicator byte

// Magnetic/true indicators.
const (
	Magnetic MagneticTrueIndicator = 'M'
	True     MagneticTrueIndicator = 'T'
)

// MagneticVariation is the angular difference between true north and
// magnetic north at the airport, in tenths of a degree. TrueStation is
// set for stations oriented to true north (variation must be zero).
type MagneticVariation struct {
	TenthsDegrees uint16
	West          bool
	TrueStation   bool
}

// Altitude is either a flight level or feet above mean sea level.
type Altitude struct {
	FlightLevel bool
	Value       uint32
}

// TimeZone is the airport's offset from UTC per the ARINC zone letters.
type TimeZone struct {
	Hour   int8
	Minute uint8
}

// CycleDate identifies the AIRAC cycle the record was published in.
type CycleDate struct {
	Year  uint8
	Cycle uint8
}

func (c CycleDate) String() string {
	return fmt.Sprintf("%02d%02d", c.Year, c.Cycle)
}

// AirportPrimaryRecord is a fully decoded airport primary record
// (section P, subsection A). Field numbering follows the ARINC 424
// chapter 5 attribute list. Optional fields are pointers, nil when the
// source columns are blank.
type AirportPrimaryRecord struct {
	RecordType              RecordType
	CustomerAreaCode        string
	ICAOIdentifier          string
	ICAOCode                string
	ATADesignator           string
	ContinuationNumber      uint8
	SpeedLimitAltitude      *Altitude
	LongestRunway           uint16
	IFRCapability           bool
	LongestRunwaySurface    RunwaySurfaceCode
	ReferencePointLatitude  Latitude
	ReferencePointLongitude Longitude
	MagneticVariation       MagneticVariation
	Elevation               int32
	SpeedLimit              *uint16
	RecommendedNavaid       string
	TransitionAltitude      *uint32
	TransitionLevel         *uint32
	PublicMilitary          PublicMilitaryIndicator
	TimeZone                *TimeZone
	DaylightIndicator       *bool
	MagneticTrue            *MagneticTrueIndicator
	DatumCode               string
	AirportName             string
	FileRecordNumber        uint32
	CycleDate               CycleDate
}

// Airport is the slim view of a primary record that the optimization
// pipeline works with. Immutable after creation.
type Airport struct {
	ICAO  string
	Name  string
	Coord Coord
}

// AirportFromRecord projects a decoded primary record onto an Airport.
func AirportFromRecord(rec *AirportPrimaryRecord) Airport {
	return Airport{
		ICAO: rec.ICAOIdentifier,
		Name: rec.AirportName,
		Coord: Coord{
			Lat: rec.ReferencePointLatitude.Decimal(),
			Lon: rec.ReferencePointLongitude.Decimal(),
		},
	}
}
