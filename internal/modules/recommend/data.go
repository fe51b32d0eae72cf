// README: Curated pools backing the recommended-plans catalogue.
package recommend

var places = []string{
	"Paris",
	"Iceland",
	"Varkala",
	"Montreal",
	"Kyoto",
	"Lisbon",
	"Cape Town",
	"Queenstown",
	"Marrakech",
}

var hotels = []string{
	"Grand Meridian Hotel",
	"The Cliffside Resort",
	"Maple Leaf Boutique Inn",
	"Azure Bay Suites",
	"The Old Quarter Lodge",
	"Lakeview Palace",
	"Saffron Courtyard Hotel",
	"Northern Lights Retreat",
}

var pois = []string{
	"the Grand Bazaar",
	"the Royal Botanical Gardens",
	"the Old Lighthouse",
	"the City Art Museum",
	"the Floating Market",
	"the Observatory Hill",
}

var beaches = []string{
	"Crescent Moon Beach",
	"Black Sand Cove",
	"Palm Grove Shore",
	"Driftwood Bay",
}

var treks = []string{
	"the Sunrise Ridge Trail",
	"the Waterfall Valley Trek",
	"the Coastal Cliff Path",
	"the Cedar Forest Loop",
}

var streets = []string{
	"the Lantern Night Market",
	"the Painters' Quarter",
	"the Old Harbour Promenade",
	"the Spice Merchants' Lane",
}

var monuments = []string{
	"the Ancient Citadel",
	"the Marble Triumphal Arch",
	"the Clocktower Basilica",
	"the Sunken Temple Ruins",
}
