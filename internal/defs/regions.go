// internal/defs/regions.go
package defs

// defaultCatalog is the built-in region list used when no catalog file is
// supplied. Centres are spread so the whole list survives the overlap
// filter; sizes are in unit-sphere chord units.
var defaultCatalog = []RegionDefinition{
	// Forests.
	{ID: "amazon-basin", Name: "Amazon Basin", Lat: -4, Lon: -62, SizeRadius: 0.14, Color: "#2d6a4f",
		Description: "The largest rainforest on the planet, a dense green ocean of canopy and river."},
	{ID: "congo-rainforest", Name: "Congo Rainforest", Lat: -1, Lon: 22, SizeRadius: 0.12, Color: "#1b4332",
		Description: "Humid lowland jungle along the Congo river, second only to the Amazon."},
	{ID: "black-forest", Name: "Black Forest", Lat: 48, Lon: 8, SizeRadius: 0.1, Color: "#2e7d32",
		Description: "Old fir and spruce highlands, dark enough to earn the name."},
	{ID: "siberian-taiga", Name: "Siberian Taiga", Lat: 61, Lon: 100, SizeRadius: 0.12, Color: "#387850",
		Description: "Endless boreal conifers stretching across the cold heart of a continent."},
	{ID: "pacific-rainforest", Name: "Pacific Rainforest", Lat: 47, Lon: -122, SizeRadius: 0.1, Color: "#40a06a",
		Description: "Temperate rainforest of moss-draped cedars fed by ocean fog."},
	{ID: "borneo-jungle", Name: "Borneo Jungle", Lat: 1, Lon: 114, SizeRadius: 0.1, Color: "#52b788",
		Description: "Equatorial island jungle, home to some of the oldest rainforest on Earth."},

	// Deserts.
	{ID: "sahara-erg", Name: "Sahara Erg", Lat: 24, Lon: 10, SizeRadius: 0.14, Color: "#e9c46a",
		Description: "Seas of wind-built dunes under a sky with no memory of rain."},
	{ID: "gobi-steppe", Name: "Gobi Steppe", Lat: 43, Lon: 104, SizeRadius: 0.1, Color: "#f4a261",
		Description: "Cold gravel desert swept by dust storms off the Mongolian plateau."},
	{ID: "red-centre", Name: "Red Centre", Lat: -24, Lon: 134, SizeRadius: 0.1, Color: "#e76f51",
		Description: "Iron-red outback flats around ancient weathered monoliths."},
	{ID: "atacama-coast", Name: "Atacama Coast", Lat: -23, Lon: -69, SizeRadius: 0.1, Color: "#c9852b",
		Description: "The driest place on the planet, where decades pass between showers."},
	{ID: "mojave-flats", Name: "Mojave Flats", Lat: 35, Lon: -116, SizeRadius: 0.1, Color: "#d2b48c",
		Description: "Joshua trees and salt pans between brittle desert ranges."},
	{ID: "empty-quarter", Name: "Empty Quarter", Lat: 20, Lon: 50, SizeRadius: 0.12, Color: "#ffb703",
		Description: "The Rub' al Khali: the largest unbroken sand desert anywhere."},

	// Snow.
	{ID: "greenland-icecap", Name: "Greenland Icecap", Lat: 72, Lon: -40, SizeRadius: 0.12, Color: "#f1faee",
		Description: "A two-mile-thick ice sheet holding a tenth of the world's fresh water."},
	{ID: "antarctic-shelf", Name: "Antarctic Shelf", Lat: -78, Lon: 0, SizeRadius: 0.16, Color: "#e8f4f8",
		Description: "Floating ice plains at the bottom of the world."},
	{ID: "himalayan-heights", Name: "Himalayan Heights", Lat: 33, Lon: 86, SizeRadius: 0.1, Color: "#eef2f7",
		Description: "The high roof of the continent, snowbound the whole year round."},
	{ID: "alaskan-range", Name: "Alaskan Range", Lat: 63, Lon: -150, SizeRadius: 0.1, Color: "#f8f9fa",
		Description: "Glaciated peaks crowned by the tallest mountain in North America."},
	{ID: "patagonian-ice", Name: "Patagonian Ice", Lat: -49, Lon: -73, SizeRadius: 0.1, Color: "#dee2e6",
		Description: "Storm-fed icefields spilling glaciers into cold green lakes."},

	// Water.
	{ID: "coral-triangle", Name: "Coral Triangle", Lat: -8, Lon: 128, SizeRadius: 0.1, Color: "#48cae4",
		Description: "The most species-rich stretch of reef in any ocean."},
	{ID: "caribbean-shallows", Name: "Caribbean Shallows", Lat: 16, Lon: -75, SizeRadius: 0.1, Color: "#a8dadc",
		Description: "Warm turquoise banks scattered between volcanic islands."},
	{ID: "great-barrier", Name: "Great Barrier Reef", Lat: -18, Lon: 147, SizeRadius: 0.1, Color: "#90e0ef",
		Description: "A living structure long enough to be seen from orbit."},
	{ID: "maldive-atolls", Name: "Maldive Atolls", Lat: 4, Lon: 73, SizeRadius: 0.1, Color: "#ade8f4",
		Description: "A thousand coral rings barely clearing the tide line."},
	{ID: "polynesian-deep", Name: "Polynesian Deep", Lat: -15, Lon: -140, SizeRadius: 0.12, Color: "#89c2d9",
		Description: "Open Pacific blue, the emptiest water on the globe."},

	// Beaches. The reserved pure-yellow marker drives their classification.
	{ID: "copacabana-sands", Name: "Copacabana Sands", Lat: -23, Lon: -43, SizeRadius: 0.1, Color: "#ffff00",
		Description: "A crescent of white sand between granite hills and the Atlantic."},
	{ID: "waikiki-shore", Name: "Waikiki Shore", Lat: 21, Lon: -158, SizeRadius: 0.1, Color: "#ffff00",
		Description: "Volcanic-island beach where surfing was given to the world."},
}
