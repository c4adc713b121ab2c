// Package arinc decodes ARINC 424 fixed-width records as found in CIFP
// datasets. Only the airport primary record (section P, subsection A) is
// decoded; every other record type is reported as not applicable.
package arinc

import (
	"fmt"

	"github.com/maratik123/tsp/internal/model"
)

// RecordLen is the fixed length of an ARINC 424 record line, without the
// line terminator.
const RecordLen = 132

// MalformedError reports a line that matched the airport primary record
// discriminator but carried an undecodable field. The caller is expected
// to warn and skip the line.
type MalformedError struct {
	Field string
	Err   error
}

func (e *MalformedError) Error() string {
	return "malformed " + e.Field + " field: " + e.Err.Error()
}

func (e *MalformedError) Unwrap() error { return e.Err }

func malformed(field string, err error) (*model.AirportPrimaryRecord, error) {
	return nil, &MalformedError{Field: field, Err: err}
}

func errICAOCodeMismatch(a, b string) error {
	return fmt.Errorf("mismatched codes %q and %q", a, b)
}

// DecodeLine decodes one record line. It returns (nil, nil) when the line
// is not an airport primary record, a *MalformedError when the line matches
// the discriminator but a field does not decode, and the decoded record
// otherwise. Trailing carriage returns are tolerated.
func DecodeLine(line []byte) (*model.AirportPrimaryRecord, error) {
	for len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	if len(line) != RecordLen {
		return nil, nil
	}

	// Discriminator columns: record type, section, subsection and the
	// primary continuation number. Mismatches mean a different record
	// kind, not an error.
	if line[0] != byte(model.Standard) && line[0] != byte(model.Tailored) {
		return nil, nil
	}
	if line[4] != 'P' || line[5] != ' ' || line[12] != 'A' {
		return nil, nil
	}
	continuation, primary := parseContinuationNumber(line[21])
	if !primary {
		return nil, nil
	}

	rec := &model.AirportPrimaryRecord{
		RecordType:         model.RecordType(line[0]),
		ContinuationNumber: continuation,
	}

	var err error
	if rec.CustomerAreaCode, err = parseAlpha(line[1:4], 0, 3); err != nil {
		return malformed("customer area code", err)
	}
	if rec.ICAOIdentifier, err = parseAlphanum(line[6:10], 1, 4); err != nil {
		return malformed("ICAO identifier", err)
	}
	if rec.ICAOCode, err = parseAlphanum(line[10:12], 0, 2); err != nil {
		return malformed("ICAO code", err)
	}
	if rec.ATADesignator, err = parseAlpha(line[13:16], 0, 3); err != nil {
		return malformed("ATA designator", err)
	}
	// line[16:18] is reserved, line[18:21] must be blank on primaries.
	if !isBlank(line[18:21]) {
		return nil, nil
	}
	if rec.SpeedLimitAltitude, err = parseSpeedLimitAltitude(line[22:27]); err != nil {
		return malformed("speed limit altitude", err)
	}
	longestRunway, err := parseUint(line[27:30], 999)
	if err != nil {
		return malformed("longest runway", err)
	}
	rec.LongestRunway = uint16(longestRunway)
	if rec.IFRCapability, err = parseIFRCapability(line[30]); err != nil {
		return malformed("IFR capability", err)
	}
	if rec.LongestRunwaySurface, err = parseSurfaceCode(line[31]); err != nil {
		return malformed("runway surface code", err)
	}
	if rec.ReferencePointLatitude, err = parseLatitude(line[32:41]); err != nil {
		return malformed("latitude", err)
	}
	if rec.ReferencePointLongitude, err = parseLongitude(line[41:51]); err != nil {
		return malformed("longitude", err)
	}
	if rec.MagneticVariation, err = parseMagneticVariation(line[51:56]); err != nil {
		return malformed("magnetic variation", err)
	}
	if rec.Elevation, err = parseElevation(line[56:61]); err != nil {
		return malformed("elevation", err)
	}
	if rec.SpeedLimit, err = parseSpeedLimit(line[61:64]); err != nil {
		return malformed("speed limit", err)
	}
	if rec.RecommendedNavaid, err = parseRecommendedNavaid(line[64:68]); err != nil {
		return malformed("recommended navaid", err)
	}
	icaoCode2, err := parseAlphanum(line[68:70], 0, 2)
	if err != nil {
		return malformed("ICAO code", err)
	}
	// The ICAO code appears twice; both must agree when both are present.
	switch {
	case rec.ICAOCode == "":
		rec.ICAOCode = icaoCode2
	case icaoCode2 != "" && rec.ICAOCode != icaoCode2:
		return malformed("ICAO code", errICAOCodeMismatch(rec.ICAOCode, icaoCode2))
	}
	if rec.TransitionAltitude, err = parseTransitionAltitude(line[70:75]); err != nil {
		return malformed("transition altitude", err)
	}
	if rec.TransitionLevel, err = parseTransitionAltitude(line[75:80]); err != nil {
		return malformed("transition level", err)
	}
	if rec.PublicMilitary, err = parsePublicMilitary(line[80]); err != nil {
		return malformed("public/military indicator", err)
	}
	if rec.TimeZone, err = parseTimeZone(line[81:84]); err != nil {
		return malformed("time zone", err)
	}
	if rec.DaylightIndicator, err = parseDaylight(line[84]); err != nil {
		return malformed("daylight indicator", err)
	}
	if rec.MagneticTrue, err = parseMagneticTrue(line[85]); err != nil {
		return malformed("magnetic/true indicator", err)
	}
	if rec.DatumCode, err = parseAlpha(line[86:89], 3, 3); err != nil {
		return malformed("datum code", err)
	}
	// line[89:93] is reserved.
	if rec.AirportName, err = parseAlpha(line[93:123], 0, 30); err != nil {
		return malformed("airport name", err)
	}
	fileRecordNumber, err := parseUint(line[123:128], 99999)
	if err != nil {
		return malformed("file record number", err)
	}
	rec.FileRecordNumber = uint32(fileRecordNumber)
	if rec.CycleDate, err = parseCycleDate(line[128:132]); err != nil {
		return malformed("cycle date", err)
	}

	return rec, nil
}
