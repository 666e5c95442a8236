package publisher

// region tags used by the registry
const (
	RegionNortheast        = "Northeast"
	RegionMidAtlantic      = "Mid-Atlantic"
	RegionSoutheast        = "Southeast"
	RegionSouthwest        = "Southwest"
	RegionMidwest          = "Midwest"
	RegionWestCoast        = "West Coast"
	RegionMountainWest     = "Mountain West"
	RegionPacificNorthwest = "Pacific Northwest"
	RegionNational         = "National"
	RegionInternational    = "International"
)

var domesticRegions = []string{
	RegionNortheast, RegionMidAtlantic, RegionSoutheast, RegionSouthwest, RegionMidwest,
	RegionWestCoast, RegionMountainWest, RegionPacificNorthwest, RegionNational,
}

// geographyRegions maps lowercase geography names to region tags, nil means no filtering
var geographyRegions = map[string][]string{
	"us":            domesticRegions,
	"usa":           domesticRegions,
	"united states": domesticRegions,
	"global":        nil,
	"east coast":    {RegionNortheast, RegionMidAtlantic},
	"south":         {RegionSoutheast, RegionSouthwest},

	"northeast":         {RegionNortheast},
	"west coast":        {RegionWestCoast},
	"national":          {RegionNational},
	"midwest":           {RegionMidwest},
	"southeast":         {RegionSoutheast},
	"southwest":         {RegionSouthwest},
	"mid-atlantic":      {RegionMidAtlantic},
	"mountain west":     {RegionMountainWest},
	"pacific northwest": {RegionPacificNorthwest},
	"international":     {RegionInternational},
}
