package transit

type TransportType string

const (
	TransportTypeLightRail    TransportType = "Light Rail"
	TransportTypeHeavyRail                  = "Heavy Rail"
	TransportTypeCommuterRail               = "Commuter Rail"
	TransportTypeBus                        = "Bus"
	TransportTypeFerry                      = "Ferry"
	TransportTypeUnknown                    = "UNKNOWN"
)

var transportTypeForCode = map[int]TransportType{
	0: TransportTypeLightRail,
	1: TransportTypeHeavyRail,
	2: TransportTypeCommuterRail,
	3: TransportTypeBus,
	4: TransportTypeFerry,
}

// TransportTypeFromCode maps an MBTA route type code onto its display name.
func TransportTypeFromCode(code int) TransportType {
	if transportType, ok := transportTypeForCode[code]; ok {
		return transportType
	}

	return TransportTypeUnknown
}

func ValidTypeCode(code int) bool {
	_, ok := transportTypeForCode[code]

	return ok
}
