package service

// continentByCountry is the embedded country reference table used for
// region inference. Keys are normalized (lowercase, no punctuation).
var continentByCountry = map[string]string{
	"afghanistan":            "AS",
	"albania":                "EU",
	"algeria":                "AF",
	"andorra":                "EU",
	"angola":                 "AF",
	"antarctica":             "AN",
	"antigua and barbuda":    "NA",
	"argentina":              "SA",
	"armenia":                "AS",
	"australia":              "OC",
	"austria":                "EU",
	"azerbaijan":             "AS",
	"bahamas":                "NA",
	"bahrain":                "AS",
	"bangladesh":             "AS",
	"barbados":               "NA",
	"belarus":                "EU",
	"belgium":                "EU",
	"belize":                 "NA",
	"benin":                  "AF",
	"bermuda":                "NA",
	"bhutan":                 "AS",
	"bolivia":                "SA",
	"bosnia and herzegovina": "EU",
	"botswana":               "AF",
	"brazil":                 "SA",
	"brunei":                 "AS",
	"bulgaria":               "EU",
	"burkina faso":           "AF",
	"burundi":                "AF",
	"cambodia":               "AS",
	"cameroon":               "AF",
	"canada":                 "NA",
	"cape verde":             "AF",
	"cayman islands":         "NA",
	"central african republic": "AF",
	"chad":                   "AF",
	"chile":                  "SA",
	"china":                  "AS",
	"colombia":               "SA",
	"comoros":                "AF",
	"congo":                  "AF",
	"costa rica":             "NA",
	"croatia":                "EU",
	"cuba":                   "NA",
	"cyprus":                 "AS",
	"czechia":                "EU",
	"denmark":                "EU",
	"djibouti":               "AF",
	"dominica":               "NA",
	"dominican republic":     "NA",
	"ecuador":                "SA",
	"egypt":                  "AF",
	"el salvador":            "NA",
	"equatorial guinea":      "AF",
	"eritrea":                "AF",
	"estonia":                "EU",
	"eswatini":               "AF",
	"ethiopia":               "AF",
	"fiji":                   "OC",
	"finland":                "EU",
	"france":                 "EU",
	"gabon":                  "AF",
	"gambia":                 "AF",
	"georgia":                "AS",
	"germany":                "EU",
	"ghana":                  "AF",
	"greece":                 "EU",
	"greenland":              "NA",
	"grenada":                "NA",
	"guatemala":              "NA",
	"guinea":                 "AF",
	"guinea-bissau":          "AF",
	"guyana":                 "SA",
	"haiti":                  "NA",
	"honduras":               "NA",
	"hong kong":              "AS",
	"hungary":                "EU",
	"iceland":                "EU",
	"india":                  "AS",
	"indonesia":              "AS",
	"iran":                   "AS",
	"iraq":                   "AS",
	"ireland":                "EU",
	"israel":                 "AS",
	"italy":                  "EU",
	"ivory coast":            "AF",
	"jamaica":                "NA",
	"japan":                  "AS",
	"jordan":                 "AS",
	"kazakhstan":             "AS",
	"kenya":                  "AF",
	"kiribati":               "OC",
	"kuwait":                 "AS",
	"kyrgyzstan":             "AS",
	"laos":                   "AS",
	"latvia":                 "EU",
	"lebanon":                "AS",
	"lesotho":                "AF",
	"liberia":                "AF",
	"libya":                  "AF",
	"liechtenstein":          "EU",
	"lithuania":              "EU",
	"luxembourg":             "EU",
	"macau":                  "AS",
	"madagascar":             "AF",
	"malawi":                 "AF",
	"malaysia":               "AS",
	"maldives":               "AS",
	"mali":                   "AF",
	"malta":                  "EU",
	"marshall islands":       "OC",
	"mauritania":             "AF",
	"mauritius":              "AF",
	"mexico":                 "NA",
	"micronesia":             "OC",
	"moldova":                "EU",
	"monaco":                 "EU",
	"mongolia":               "AS",
	"montenegro":             "EU",
	"morocco":                "AF",
	"mozambique":             "AF",
	"myanmar":                "AS",
	"namibia":                "AF",
	"nauru":                  "OC",
	"nepal":                  "AS",
	"netherlands":            "EU",
	"new zealand":            "OC",
	"nicaragua":              "NA",
	"niger":                  "AF",
	"nigeria":                "AF",
	"north korea":            "AS",
	"north macedonia":        "EU",
	"norway":                 "EU",
	"oman":                   "AS",
	"pakistan":               "AS",
	"palau":                  "OC",
	"palestine":              "AS",
	"panama":                 "NA",
	"papua new guinea":       "OC",
	"paraguay":               "SA",
	"peru":                   "SA",
	"philippines":            "AS",
	"poland":                 "EU",
	"portugal":               "EU",
	"puerto rico":            "NA",
	"qatar":                  "AS",
	"romania":                "EU",
	"russia":                 "EU",
	"rwanda":                 "AF",
	"saint kitts and nevis":  "NA",
	"saint lucia":            "NA",
	"saint vincent and the grenadines": "NA",
	"samoa":                  "OC",
	"san marino":             "EU",
	"sao tome and principe":  "AF",
	"saudi arabia":           "AS",
	"senegal":                "AF",
	"serbia":                 "EU",
	"seychelles":             "AF",
	"sierra leone":           "AF",
	"singapore":              "AS",
	"slovakia":               "EU",
	"slovenia":               "EU",
	"solomon islands":        "OC",
	"somalia":                "AF",
	"south africa":           "AF",
	"south korea":            "AS",
	"south sudan":            "AF",
	"spain":                  "EU",
	"sri lanka":              "AS",
	"sudan":                  "AF",
	"suriname":               "SA",
	"sweden":                 "EU",
	"switzerland":            "EU",
	"syria":                  "AS",
	"taiwan":                 "AS",
	"tajikistan":             "AS",
	"tanzania":               "AF",
	"thailand":               "AS",
	"timor-leste":            "AS",
	"togo":                   "AF",
	"tonga":                  "OC",
	"trinidad and tobago":    "NA",
	"tunisia":                "AF",
	"turkey":                 "AS",
	"turkmenistan":           "AS",
	"tuvalu":                 "OC",
	"uganda":                 "AF",
	"ukraine":                "EU",
	"united arab emirates":   "AS",
	"united kingdom":         "EU",
	"united states":          "NA",
	"uruguay":                "SA",
	"uzbekistan":             "AS",
	"vanuatu":                "OC",
	"vatican city":           "EU",
	"venezuela":              "SA",
	"vietnam":                "AS",
	"yemen":                  "AS",
	"zambia":                 "AF",
	"zimbabwe":               "AF",
}

// countryAliases maps common alternate spellings and abbreviations to the
// canonical reference keys above
var countryAliases = map[string]string{
	"usa":                          "united states",
	"us":                           "united states",
	"united states of america":     "united states",
	"america":                      "united states",
	"uk":                           "united kingdom",
	"great britain":                "united kingdom",
	"england":                      "united kingdom",
	"scotland":                     "united kingdom",
	"wales":                        "united kingdom",
	"northern ireland":             "united kingdom",
	"uae":                          "united arab emirates",
	"republic of korea":            "south korea",
	"korea":                        "south korea",
	"korea south":                  "south korea",
	"korea north":                  "north korea",
	"russian federation":           "russia",
	"czech republic":               "czechia",
	"burma":                        "myanmar",
	"cote d'ivoire":                "ivory coast",
	"swaziland":                    "eswatini",
	"macedonia":                    "north macedonia",
	"holland":                      "netherlands",
	"the netherlands":              "netherlands",
	"prc":                          "china",
	"people's republic of china":   "china",
	"republic of china":            "taiwan",
	"viet nam":                     "vietnam",
	"east timor":                   "timor-leste",
	"democratic republic of the congo": "congo",
	"drc":                          "congo",
	"turkiye":                      "turkey",
	"brasil":                       "brazil",
	"deutschland":                  "germany",
}

// countryNames lists the reference keys for fuzzy matching
var countryNames []string

func init() {
	countryNames = make([]string, 0, len(continentByCountry))
	for name := range continentByCountry {
		countryNames = append(countryNames, name)
	}
}
