package match

// synonyms maps a token to interchangeable spellings and names. Entries
// are listed in both directions; Expand does not compute the closure.
var synonyms = map[string][]string{
	"bbq":      {"barbecue", "barbeque", "grill"},
	"barbecue": {"bbq", "barbeque", "grill"},
	"barbeque": {"bbq", "barbecue", "grill"},
	"grill":    {"bbq", "barbecue", "barbeque"},

	"sofa":  {"couch"},
	"couch": {"sofa"},

	"vacuum": {"hoover"},
	"hoover": {"vacuum"},

	"trimmer":  {"strimmer"},
	"strimmer": {"trimmer"},

	"washer": {"pressure", "power"},
}

// taskHints maps a task-ish token to the equipment people usually rent
// for it. Seeded from the common jobs the marketplace sees: mounting a
// TV, painting, carpentry, pressure washing, yard work, sewing.
var taskHints = map[string][]string{
	"paint":   {"ladder", "sprayer", "roller", "tarp", "brush"},
	"ceiling": {"ladder", "roller", "sprayer"},
	"primer":  {"roller", "brush", "sprayer"},

	"tv":      {"drill", "stud", "finder", "level", "driver", "bracket"},
	"mount":   {"drill", "stud", "finder", "level", "driver"},
	"masonry": {"drill", "hammer"},
	"shelf":   {"drill", "level", "saw"},

	"wood":      {"saw", "jigsaw", "drill", "sander", "clamp"},
	"carpentry": {"saw", "drill", "sander", "clamp"},
	"plywood":   {"saw", "jigsaw", "clamp"},
	"furniture": {"saw", "drill", "sander", "clamp"},
	"deck":      {"saw", "drill", "sander"},
	"refinish":  {"sander"},

	"driveway": {"pressure", "washer", "hose"},
	"patio":    {"pressure", "washer", "hose"},
	"wash":     {"pressure", "washer", "hose"},
	"mildew":   {"pressure", "washer"},

	"hedge":  {"trimmer", "ladder"},
	"hedges": {"trimmer", "ladder"},
	"prune":  {"trimmer", "shears", "ladder"},
	"garden": {"trimmer", "shears", "wheelbarrow"},
	"yard":   {"trimmer", "mower", "wheelbarrow"},

	"gutter": {"ladder"},
	"roof":   {"ladder"},

	"sew":         {"sewing", "machine", "iron", "steamer"},
	"hem":         {"sewing", "machine", "iron"},
	"costume":     {"sewing", "machine"},
	"fabric":      {"sewing", "machine", "iron"},
	"alterations": {"sewing", "machine"},
}
