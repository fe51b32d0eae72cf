// README: Curated immersive experiences, keyed by place slug.
package experience

import (
	"errors"
	"sort"

	"github.com/samber/lo"
)

var ErrNotFound = errors.New("experience not found")

// Tab is one highlighted experience at a place.
type Tab struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Set is the full curated collection for one place.
type Set struct {
	Place string `json:"place"`
	Tabs  []Tab  `json:"tabs"`
}

var catalogue = map[string][]Tab{
	"paris": {
		{Title: "Eiffel Tower Summit", Content: "Ascend to the summit of the Eiffel Tower and enjoy breathtaking panoramic views of Paris."},
		{Title: "Louvre Museum Tour", Content: "Explore the world's largest art museum and see masterpieces like the Mona Lisa and the Venus de Milo."},
		{Title: "Seine River Cruise", Content: "Enjoy a romantic cruise along the Seine River and admire the city's iconic landmarks from the water."},
	},
	"iceland": {
		{Title: "Northern Lights Chase", Content: "Embark on a thrilling chase to witness the magical Northern Lights dancing in the Icelandic sky."},
		{Title: "Golden Circle Tour", Content: "Discover Iceland's most iconic natural wonders, including the Gullfoss waterfall, Geysir geothermal area, and Þingvellir National Park."},
		{Title: "Blue Lagoon Experience", Content: "Relax and rejuvenate in the geothermal waters of the world-famous Blue Lagoon."},
	},
	"varkala": {
		{Title: "Varkala Beach Cliff Walk", Content: "Take a scenic walk along the stunning cliffs of Varkala Beach and enjoy panoramic views of the Arabian Sea."},
		{Title: "Janardanaswamy Temple Visit", Content: "Visit the ancient Janardanaswamy Temple, a major pilgrimage site dedicated to Lord Vishnu."},
		{Title: "Kappil Lake Backwater Cruise", Content: "Enjoy a serene backwater cruise on Kappil Lake and experience the beauty of Kerala's backwaters."},
	},
	"montreal": {
		{Title: "Old Montreal Walking Tour", Content: "Explore the charming cobblestone streets of Old Montreal and discover its rich history and architecture."},
		{Title: "Mount Royal Park Hike", Content: "Hike to the summit of Mount Royal Park and enjoy panoramic views of the city skyline."},
		{Title: "Notre-Dame Basilica Visit", Content: "Visit the stunning Notre-Dame Basilica, a masterpiece of Gothic Revival architecture."},
	},
}

// Places lists the slugs with curated content, sorted for stable output.
func Places() []string {
	keys := lo.Keys(catalogue)
	sort.Strings(keys)
	return keys
}

// Get returns the curated set for a place slug.
func Get(place string) (*Set, error) {
	tabs, ok := catalogue[place]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return &Set{Place: place, Tabs: out}, nil
}
