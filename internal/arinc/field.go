package arinc

import (
	"fmt"

	"github.com/maratik123/tsp/internal/model"
)

// Alpha fields may hold any printable character except digits, alphanumeric
// fields any printable character (ARINC 424 §5.1). Both are left justified
// and padded with trailing blanks.

func isAlpha(b []byte) bool {
	for _, c := range b {
		if !(c >= ' ' && c <= '/' || c >= ':' && c <= '~') {
			return false
		}
	}
	return true
}

func isAlphanum(b []byte) bool {
	for _, c := range b {
		if c < ' ' || c > '~' {
			return false
		}
	}
	return true
}

func trimRightSpaces(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == ' ' {
		b = b[:len(b)-1]
	}
	return b
}

func trimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == '0' {
		b = b[1:]
	}
	return b
}

func parseAlpha(b []byte, minLen, maxLen int) (string, error) {
	b = trimRightSpaces(b)
	if len(b) < minLen || len(b) > maxLen {
		return "", fmt.Errorf("length %d outside [%d,%d]", len(b), minLen, maxLen)
	}
	if !isAlpha(b) {
		return "", fmt.Errorf("non-alpha content %q", b)
	}
	return string(b), nil
}

func parseAlphanum(b []byte, minLen, maxLen int) (string, error) {
	b = trimRightSpaces(b)
	if len(b) < minLen || len(b) > maxLen {
		return "", fmt.Errorf("length %d outside [%d,%d]", len(b), minLen, maxLen)
	}
	if !isAlphanum(b) {
		return "", fmt.Errorf("non-alphanumeric content %q", b)
	}
	return string(b), nil
}

// parseUint decodes a fixed-width unsigned decimal field. Numeric fields are
// right justified with leading zeros; an all-zero field decodes to 0.
func parseUint(b []byte, max uint64) (uint64, error) {
	digits := trimLeadingZeros(b)
	var v uint64
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit content %q", b)
		}
		v = v*10 + uint64(c-'0')
		if v > max {
			return 0, fmt.Errorf("value %d exceeds %d", v, max)
		}
	}
	return v, nil
}

func isBlank(b []byte) bool {
	for _, c := range b {
		if c != ' ' {
			return false
		}
	}
	return true
}

// 5.32 Cycle Date
func parseCycleDate(b []byte) (model.CycleDate, error) {
	year, err := parseUint(b[:2], 99)
	if err != nil {
		return model.CycleDate{}, err
	}
	cycle, err := parseUint(b[2:], 99)
	if err != nil {
		return model.CycleDate{}, err
	}
	return model.CycleDate{Year: uint8(year), Cycle: uint8(cycle)}, nil
}

// 5.165 Magnetic/True Indicator
func parseMagneticTrue(c byte) (*model.MagneticTrueIndicator, error) {
	switch c {
	case 'M', 'T':
		ind := model.MagneticTrueIndicator(c)
		return &ind, nil
	case ' ':
		return nil, nil
	}
	return nil, fmt.Errorf("unknown indicator %q", c)
}

// 5.179 Daylight Indicator
func parseDaylight(c byte) (*bool, error) {
	switch c {
	case 'Y':
		v := true
		return &v, nil
	case 'N':
		v := false
		return &v, nil
	case ' ':
		return nil, nil
	}
	return nil, fmt.Errorf("unknown indicator %q", c)
}

// tzHours maps the ARINC zone letter to a whole-hour UTC offset.
var tzHours = map[byte]int8{
	'Z': 0,
	'A': -1, 'B': -2, 'C': -3, 'D': -4, 'E': -5, 'F': -6,
	'G': -7, 'H': -8, 'I': -9, 'K': -10, 'L': -11, 'M': -12,
	'N': 1, 'O': 2, 'P': 3, 'Q': 4, 'R': 5, 'S': 6,
	'T': 7, 'U': 8, 'V': 9, 'W': 10, 'X': 11, 'Y': 12,
}

// 5.178 Time Zone
func parseTimeZone(b []byte) (*model.TimeZone, error) {
	if isBlank(b) {
		return nil, nil
	}
	hour, ok := tzHours[b[0]]
	if !ok {
		return nil, fmt.Errorf("unknown zone letter %q", b[0])
	}
	maxMinute := uint64(59)
	if hour == 12 || hour == -12 {
		maxMinute = 60
	}
	minute, err := parseUint(b[1:3], maxMinute)
	if err != nil {
		return nil, err
	}
	return &model.TimeZone{Hour: hour, Minute: uint8(minute)}, nil
}

// 5.177 Public/Military Indicator
func parsePublicMilitary(c byte) (model.PublicMilitaryIndicator, error) {
	switch c {
	case 'C', 'M', 'P':
		return model.PublicMilitaryIndicator(c), nil
	}
	return 0, fmt.Errorf("unknown indicator %q", c)
}

// 5.53 Transition Altitude / Level
func parseTransitionAltitude(b []byte) (*uint32, error) {
	if isBlank(b) {
		return nil, nil
	}
	v, err := parseUint(b, 99999)
	if err != nil {
		return nil, err
	}
	alt := uint32(v)
	return &alt, nil
}

// 5.23 Recommended Navaid
func parseRecommendedNavaid(b []byte) (string, error) {
	if isBlank(b) {
		return "", nil
	}
	return parseAlphanum(b, 1, 4)
}

// 5.72 Speed Limit
func parseSpeedLimit(b []byte) (*uint16, error) {
	if isBlank(b) {
		return nil, nil
	}
	v, err := parseUint(b, 999)
	if err != nil {
		return nil, err
	}
	limit := uint16(v)
	return &limit, nil
}

// 5.55 Airport Elevation
func parseElevation(b []byte) (int32, error) {
	negative := b[0] == '-'
	if negative {
		b = b[1:]
	}
	v, err := parseUint(b, 99999)
	if err != nil {
		return 0, err
	}
	if negative {
		return -int32(v), nil
	}
	return int32(v), nil
}

// 5.39 Magnetic Variation, tenths of a degree
func parseMagneticVariation(b []byte) (model.MagneticVariation, error) {
	v, err := parseUint(b[1:], 9999)
	if err != nil {
		return model.MagneticVariation{}, err
	}
	switch b[0] {
	case 'E':
		return model.MagneticVariation{TenthsDegrees: uint16(v)}, nil
	case 'W':
		return model.MagneticVariation{TenthsDegrees: uint16(v), West: true}, nil
	case 'T':
		if v != 0 {
			return model.MagneticVariation{}, fmt.Errorf("true station with nonzero variation %d", v)
		}
		return model.MagneticVariation{TrueStation: true}, nil
	}
	return model.MagneticVariation{}, fmt.Errorf("unknown variation type %q", b[0])
}

// 5.36 Airport Reference Point Latitude: hemisphere, 2 digits degrees,
// then minutes, seconds and hundredths of seconds, 2 digits each.
func parseLatitude(b []byte) (model.Latitude, error) {
	var lat model.Latitude
	switch b[0] {
	case 'N', 'S':
		lat.Hemisphere = model.LatitudeHemisphere(b[0])
	default:
		return lat, fmt.Errorf("unknown hemisphere %q", b[0])
	}
	deg, err := parseUint(b[1:3], 90)
	if err != nil {
		return lat, err
	}
	min, err := parseUint(b[3:5], 59)
	if err != nil {
		return lat, err
	}
	sec, err := parseUint(b[5:7], 59)
	if err != nil {
		return lat, err
	}
	frac, err := parseUint(b[7:9], 99)
	if err != nil {
		return lat, err
	}
	// 0°0′0″ is by convention north; 90° admits no minutes or seconds.
	if deg == 0 && min == 0 && sec == 0 && frac == 0 && lat.Hemisphere != model.North {
		return lat, fmt.Errorf("zero latitude must be north")
	}
	if deg == 90 && (min != 0 || sec != 0 || frac != 0) {
		return lat, fmt.Errorf("latitude beyond the pole")
	}
	lat.Degrees = uint8(deg)
	lat.Minutes = uint8(min)
	lat.Seconds = uint8(sec)
	lat.FractionalSeconds = uint8(frac)
	return lat, nil
}

// 5.37 Airport Reference Point Longitude: as latitude but 3 degree digits.
func parseLongitude(b []byte) (model.Longitude, error) {
	var lon model.Longitude
	switch b[0] {
	case 'E', 'W':
		lon.Hemisphere = model.LongitudeHemisphere(b[0])
	default:
		return lon, fmt.Errorf("unknown hemisphere %q", b[0])
	}
	deg, err := parseUint(b[1:4], 180)
	if err != nil {
		return lon, err
	}
	min, err := parseUint(b[4:6], 59)
	if err != nil {
		return lon, err
	}
	sec, err := parseUint(b[6:8], 59)
	if err != nil {
		return lon, err
	}
	frac, err := parseUint(b[8:10], 99)
	if err != nil {
		return lon, err
	}
	// 0°0′0″ is by convention east; the antimeridian is always 180°E exactly.
	if deg == 0 && min == 0 && sec == 0 && frac == 0 && lon.Hemisphere != model.East {
		return lon, fmt.Errorf("zero longitude must be east")
	}
	if deg == 180 && (min != 0 || sec != 0 || frac != 0 || lon.Hemisphere != model.East) {
		return lon, fmt.Errorf("longitude beyond the antimeridian")
	}
	lon.Degrees = uint8(deg)
	lon.Minutes = uint8(min)
	lon.Seconds = uint8(sec)
	lon.FractionalSeconds = uint8(frac)
	return lon, nil
}

// 5.249 Longest Runway Surface Code
func parseSurfaceCode(c byte) (model.RunwaySurfaceCode, error) {
	switch c {
	case 'H', 'S', 'W', 'U':
		return model.RunwaySurfaceCode(c), nil
	}
	return 0, fmt.Errorf("unknown surface code %q", c)
}

// 5.108 IFR Capability
func parseIFRCapability(c byte) (bool, error) {
	switch c {
	case 'Y':
		return true, nil
	case 'N':
		return false, nil
	}
	return false, fmt.Errorf("unknown indicator %q", c)
}

// 5.73 Speed Limit Altitude: blank, feet MSL, or a flight level as
// "FLnnn" or "Fnnnn".
func parseSpeedLimitAltitude(b []byte) (*model.Altitude, error) {
	b = trimRightSpaces(b)
	if len(b) == 0 {
		return nil, nil
	}
	if b[0] != 'F' {
		v, err := parseUint(b, 99999)
		if err != nil {
			return nil, err
		}
		return &model.Altitude{Value: uint32(v)}, nil
	}
	digits := b[1:]
	if len(digits) > 0 && digits[0] == 'L' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("flight level without digits")
	}
	v, err := parseUint(digits, 9999)
	if err != nil {
		return nil, err
	}
	return &model.Altitude{FlightLevel: true, Value: uint32(v)}, nil
}

// 5.16 Continuation Record Number. Primary records carry 0 or 1;
// anything else marks a continuation record.
func parseContinuationNumber(c byte) (uint8, bool) {
	if c == '0' || c == '1' {
		return c - '0', true
	}
	return 0, false
}
