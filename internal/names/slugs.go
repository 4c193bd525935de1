package names

// Message key suffixes, indexed by the enumerations they name. Order matters:
// each slice position matches the corresponding index value.

var termSlugs = [24]string{
	"minor_cold", "major_cold",
	"start_of_spring", "rain_water",
	"awakening_of_insects", "spring_equinox",
	"pure_brightness", "grain_rain",
	"start_of_summer", "grain_full",
	"grain_in_ear", "summer_solstice",
	"minor_heat", "major_heat",
	"start_of_autumn", "limit_of_heat",
	"white_dew", "autumn_equinox",
	"cold_dew", "frost_descent",
	"start_of_winter", "minor_snow",
	"major_snow", "winter_solstice",
}

var phaseSlugs = [12]string{
	"establish", "remove", "full", "balance", "stable", "initiate",
	"destruction", "danger", "success", "receive", "open", "close",
}

var animalSlugs = [12]string{
	"rat", "ox", "tiger", "rabbit", "dragon", "snake",
	"horse", "goat", "monkey", "rooster", "dog", "pig",
}

// The 30 elemental sounds in cycle order, one per consecutive pillar pair.
var soundSlugs = [30]string{
	"sea_gold", "furnace_fire", "forest_wood", "roadside_earth",
	"sword_gold", "mountain_fire", "stream_water", "rampart_earth",
	"wax_gold", "willow_wood", "spring_water", "roof_earth",
	"thunder_fire", "cypress_wood", "river_water", "sand_gold",
	"hillside_fire", "plain_wood", "wall_earth", "foil_gold",
	"lamp_fire", "sky_river_water", "post_road_earth", "hairpin_gold",
	"mulberry_wood", "creek_water", "sandy_earth", "sky_fire",
	"pomegranate_wood", "ocean_water",
}

var directionSlugs = [4]string{"north", "south", "west", "east"}

var weekdaySlugs = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var ratingSlugs = [3]string{"neutral", "auspicious", "inauspicious"}

var statusSlugs = [3]string{"neutral", "favorable", "unfavorable"}
