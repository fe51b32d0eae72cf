package pricewatch

var airlines = []string{
	"Meridian Air",
	"Pacific Crest Airlines",
	"Aurora Skyways",
	"TransContinental",
	"Harbour Jet",
	"Altitude Express",
	"Zephyr Airlines",
}

var airports = []string{
	"Frankfurt (FRA)",
	"Dubai (DXB)",
	"Singapore (SIN)",
	"Istanbul (IST)",
	"Reykjavik (KEF)",
	"Doha (DOH)",
}

var hotelNames = []string{
	"Grand Meridian Hotel",
	"The Cliffside Resort",
	"Maple Leaf Boutique Inn",
	"Azure Bay Suites",
	"The Old Quarter Lodge",
	"Lakeview Palace",
}

var roomTypes = []string{"1 Bedroom", "2 Bedroom", "Luxury", "Villa"}

var streetNames = []string{
	"Harbour View Road",
	"Lantern Market Street",
	"Cathedral Square",
	"Riverside Avenue",
	"Old Mill Lane",
}
